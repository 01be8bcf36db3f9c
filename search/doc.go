// Package search provides the case-insensitive substring filter feeding
// the station suggestion list.
package search
