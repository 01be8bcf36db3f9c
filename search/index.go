package search

import (
	"strings"

	"eurorail/trainmap/station"
)

// MinQueryLength is the shortest query that produces suggestions. Anything
// shorter hides the suggestion panel rather than showing "no results".
const MinQueryLength = 2

// Index filters stations by name substring, preserving dataset order.
type Index struct {
	stations []station.Station
}

// NewIndex builds a search index over the dataset's station list.
func NewIndex(stations []station.Station) *Index {
	return &Index{stations: stations}
}

// Query returns the stations whose name contains q as a case-insensitive
// substring, in original dataset order. Queries shorter than MinQueryLength
// yield nil. No fuzzy matching, ranking, or debouncing.
func (ix *Index) Query(q string) []station.Station {
	if len([]rune(q)) < MinQueryLength {
		return nil
	}
	needle := strings.ToLower(q)
	var matches []station.Station
	for _, s := range ix.stations {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			matches = append(matches, s)
		}
	}
	return matches
}
