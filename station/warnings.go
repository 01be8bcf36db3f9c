package station

import (
	"fmt"
	"log"
	"strings"
)

// Warning type constants for dataset audits
const (
	WarningUnknownOrigin      = "unknown_origin"
	WarningUnknownDestination = "unknown_destination"
	WarningDuplicateStation   = "duplicate_station"
	WarningSelfConnection     = "self_connection"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects audit warnings and outputs consolidated summaries
// instead of one log line per record.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example station name
func (w *WarningAggregator) Add(warningType, example string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, example)
	}
}

// Count returns the number of occurrences recorded for a warning type.
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// Empty reports whether no warnings were recorded.
func (w *WarningAggregator) Empty() bool { return len(w.warnings) == 0 }

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(source string) {
	if len(w.warnings) == 0 {
		return
	}

	for warningType, info := range w.warnings {
		log.Printf("%s", w.formatWarningMessage(warningType, source, info))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, source string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningUnknownOrigin:
		description = "connection origins not present in the station list"
		action = "Keeping connections; selection will not recenter on them"
	case WarningUnknownDestination:
		description = "connection destinations not present in the station list"
		action = "Keeping connections; lines use the denormalized coordinates"
	case WarningDuplicateStation:
		description = "duplicate station names"
		action = "Markers are keyed by name, last write wins"
	case WarningSelfConnection:
		description = "connections from a station to itself"
		action = "Keeping records; drawn lines will have zero length"
	default:
		description = "unknown issue"
		action = "Keeping records unchanged"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Dataset %s has %s (%d occurrences). %s. Examples: %s",
		source, description, info.count, action, examplesStr)
}
