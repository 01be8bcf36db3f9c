package session

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"eurorail/trainmap/render"
	"eurorail/trainmap/search"
	"eurorail/trainmap/station"
)

// ErrStationNotFound is returned when a selected station has no entry in
// the station list. The visual state still degrades gracefully: the name
// is displayed, the no-connections message renders and the viewport is
// left untouched.
var ErrStationNotFound = errors.New("station not found")

// Options carries the fixed viewport parameters for a session.
type Options struct {
	FocusZoom    int
	FitPaddingPx int
}

// Session owns one user's visual selection state over an immutable
// dataset: the selected station, the drawn line overlays and the
// suggestion panel. Multiple independent sessions can share a dataset
// in one process.
type Session struct {
	id      string
	dataset *station.Dataset
	index   *search.Index

	markers     render.MarkerLayer
	lines       render.LineLayer
	suggestions render.SuggestionView
	list        render.ConnectionListView

	opts Options

	selected    string
	drawn       []render.Line
	connections []station.Connection
}

// New creates a session over the dataset and populates the marker layer
// with one marker per station.
func New(ds *station.Dataset, markers render.MarkerLayer, lines render.LineLayer, suggestions render.SuggestionView, list render.ConnectionListView, opts Options) *Session {
	s := &Session{
		id:          uuid.NewString(),
		dataset:     ds,
		index:       search.NewIndex(ds.Stations),
		markers:     markers,
		lines:       lines,
		suggestions: suggestions,
		list:        list,
		opts:        opts,
	}
	for _, st := range ds.Stations {
		markers.AddMarker(st)
	}
	log.Printf("session %s: %d stations, %d routes", s.id, len(ds.Stations), ds.RouteCount())
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Selected returns the currently selected station name, or "" when idle.
func (s *Session) Selected() string { return s.selected }

// Suggest runs a search query and updates the suggestion panel. Queries
// below the minimum length hide the panel instead of showing "no results".
func (s *Session) Suggest(q string) []station.Station {
	matches := s.index.Query(q)
	if len([]rune(q)) < search.MinQueryLength {
		s.suggestions.Hide()
		return nil
	}
	s.suggestions.ShowSuggestions(matches)
	return matches
}

// DismissSuggestions hides the suggestion panel, e.g. on a click outside
// the search field.
func (s *Session) DismissSuggestions() {
	s.suggestions.Hide()
}

// SelectStation transitions the session to Selected(name):
// prior visual state is reset, the station's connection list renders and
// one colored line per connection is drawn. The reset is idempotent, so
// consecutive selections never leave residual lines. Selecting a name
// absent from the station list returns ErrStationNotFound but still
// leaves the session in a consistent state.
func (s *Session) SelectStation(name string) error {
	s.reset()

	s.selected = name
	s.suggestions.Hide()
	s.list.ShowSelected(name)

	origin, known := s.dataset.StationByName(name)
	if known {
		s.lines.SetView(pointOf(origin.Latitude, origin.Longitude), s.opts.FocusZoom)
		s.markers.SetSelected(name)
	}

	s.connections = s.dataset.ConnectionsFrom(name)
	if len(s.connections) == 0 {
		s.list.ShowNoConnections()
	} else {
		s.list.ShowConnections(s.connections)
		// Without origin coordinates there is no line to draw.
		if known {
			for _, c := range s.connections {
				line := s.lines.DrawLine(
					pointOf(origin.Latitude, origin.Longitude),
					pointOf(c.Latitude, c.Longitude),
					render.OperatorColor(c.Operator),
				)
				s.drawn = append(s.drawn, line)
			}
		}
	}

	if !known {
		log.Printf("session %s: selected unknown station %q", s.id, name)
		return ErrStationNotFound
	}
	return nil
}

// FocusConnection re-draws the i-th connection line of the current
// selection and fits the viewport to contain both endpoints with the
// fixed padding margins. This is the click action attached to each
// connection list entry.
func (s *Session) FocusConnection(i int) error {
	if s.selected == "" || i < 0 || i >= len(s.drawn) {
		return ErrStationNotFound
	}
	origin, ok := s.dataset.StationByName(s.selected)
	if !ok {
		return ErrStationNotFound
	}

	c := s.connections[i]
	from := pointOf(origin.Latitude, origin.Longitude)
	to := pointOf(c.Latitude, c.Longitude)

	s.lines.RemoveLines([]render.Line{s.drawn[i]})
	s.drawn[i] = s.lines.DrawLine(from, to, render.OperatorColor(c.Operator))
	s.lines.FitBounds(from, to, s.opts.FitPaddingPx)
	return nil
}

// Stats returns the sidebar statistics: station count and total route
// count (the sum of per-origin connection-list lengths).
func (s *Session) Stats() (stations, routes int) {
	return len(s.dataset.Stations), s.dataset.RouteCount()
}

// reset clears all drawn lines and the selected marker state. Safe to
// call when nothing is selected.
func (s *Session) reset() {
	s.lines.RemoveLines(s.drawn)
	s.drawn = nil
	s.connections = nil
	s.markers.ClearSelected()
	s.selected = ""
}

func pointOf(lat, lon float64) render.Point {
	return render.Point{Latitude: lat, Longitude: lon}
}
