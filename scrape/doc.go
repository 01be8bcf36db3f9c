// Package scrape collects European train route records.
//
// The per-operator scrapers are placeholder implementations that return
// fixed sample meshes; the fetch plumbing (page cache, user agent, polite
// delay) is real and ready for an actual parser.
package scrape
