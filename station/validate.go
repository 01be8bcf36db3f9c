package station

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the structural shape of the dataset: every station and
// connection record must carry a name and in-range coordinates. Returns an
// error on the first malformed record.
func (d *Dataset) Validate() error {
	v := validator.New()
	for i, s := range d.Stations {
		if err := v.Struct(s); err != nil {
			return fmt.Errorf("station %d (%q): %w", i, s.Name, err)
		}
	}
	for origin, conns := range d.Connections {
		for i, c := range conns {
			if err := v.Struct(c); err != nil {
				return fmt.Errorf("connection %d of %q: %w", i, origin, err)
			}
		}
	}
	return nil
}

// Audit checks referential integrity between the connection index and the
// station list. The source data does not enforce it, so findings are
// aggregated warnings rather than errors: the dataset stays usable and the
// caller decides whether to log them.
func (d *Dataset) Audit() *WarningAggregator {
	agg := NewWarningAggregator()

	names := make(map[string]int, len(d.Stations))
	for _, s := range d.Stations {
		names[s.Name]++
	}
	for _, s := range d.Stations {
		if names[s.Name] > 1 {
			agg.Add(WarningDuplicateStation, s.Name)
			names[s.Name] = 1 // report each duplicate name once
		}
	}

	for origin, conns := range d.Connections {
		if _, ok := names[origin]; !ok {
			agg.Add(WarningUnknownOrigin, origin)
		}
		for _, c := range conns {
			if _, ok := names[c.Name]; !ok {
				agg.Add(WarningUnknownDestination, c.Name)
			}
			if c.Name == origin {
				agg.Add(WarningSelfConnection, origin)
			}
		}
	}

	return agg
}
