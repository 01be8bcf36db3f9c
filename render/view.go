package render

import "eurorail/trainmap/station"

// MapView is a headless map state: the marker table, drawn line overlays
// and viewport that the page-side widget mirrors. It implements
// MarkerLayer and LineLayer, which makes the selection logic testable
// without a rendering surface.
type MapView struct {
	markers  map[string]station.Station
	order    []string
	selected string

	lines []Line

	center Point
	zoom   int

	fitted    *Bounds
	paddingPx int
}

// NewMapView creates a map view at the given initial center and zoom.
func NewMapView(center Point, zoom int) *MapView {
	return &MapView{
		markers: map[string]station.Station{},
		center:  center,
		zoom:    zoom,
	}
}

// AddMarker places a marker keyed by station name. Re-adding a name
// overwrites the previous marker (last write wins).
func (v *MapView) AddMarker(s station.Station) {
	if _, ok := v.markers[s.Name]; !ok {
		v.order = append(v.order, s.Name)
	}
	v.markers[s.Name] = s
}

// Marker returns the marker for a station name.
func (v *MapView) Marker(name string) (station.Station, bool) {
	s, ok := v.markers[name]
	return s, ok
}

// MarkerCount returns the number of placed markers.
func (v *MapView) MarkerCount() int { return len(v.markers) }

// SetSelected applies the selected visual state to the named marker, if
// one exists.
func (v *MapView) SetSelected(name string) {
	if _, ok := v.markers[name]; ok {
		v.selected = name
	}
}

// ClearSelected removes the selected visual state. Safe to call when
// nothing is selected.
func (v *MapView) ClearSelected() { v.selected = "" }

// Selected returns the name of the visually selected marker, or "".
func (v *MapView) Selected() string { return v.selected }

// DrawLine adds a line overlay and returns it so the caller can remove
// that specific overlay later.
func (v *MapView) DrawLine(from, to Point, color string) Line {
	line := Line{From: from, To: to, Color: color}
	v.lines = append(v.lines, line)
	return line
}

// RemoveLines removes the given overlays. Overlays not present are
// ignored, so the reset is idempotent.
func (v *MapView) RemoveLines(lines []Line) {
	if len(lines) == 0 {
		return
	}
	remaining := v.lines[:0]
	for _, have := range v.lines {
		drop := false
		for _, rm := range lines {
			if have == rm {
				drop = true
				break
			}
		}
		if !drop {
			remaining = append(remaining, have)
		}
	}
	v.lines = remaining
}

// Lines returns the currently drawn overlays.
func (v *MapView) Lines() []Line { return v.lines }

// SetView recenters the viewport.
func (v *MapView) SetView(center Point, zoom int) {
	v.center = center
	v.zoom = zoom
	v.fitted = nil
}

// Center returns the current viewport center.
func (v *MapView) Center() Point { return v.center }

// Zoom returns the current viewport zoom level.
func (v *MapView) Zoom() int { return v.zoom }

// FitBounds adjusts the viewport to contain both points with fixed
// padding margins.
func (v *MapView) FitBounds(a, b Point, paddingPx int) {
	bounds := BoundsOf(a, b)
	v.fitted = &bounds
	v.paddingPx = paddingPx
	v.center = bounds.Center()
}

// FittedBounds returns the bounds of the last FitBounds call, or nil if
// the viewport was recentered since.
func (v *MapView) FittedBounds() *Bounds { return v.fitted }
