// Package process turns raw scraped route records into the web dataset
// document: unique stations plus the directed origin -> connections index.
package process
