package render

import "eurorail/trainmap/station"

// Point is a geographic coordinate.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Line is a drawn overlay between two points with a display color.
type Line struct {
	From  Point  `json:"from"`
	To    Point  `json:"to"`
	Color string `json:"color"`
}

// Bounds is the smallest box containing two points.
type Bounds struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// MarkerLayer places one marker per station and tracks which marker is
// visually selected. Markers are keyed by station name; on a name
// collision the last write wins.
type MarkerLayer interface {
	AddMarker(s station.Station)
	SetSelected(name string)
	ClearSelected()
}

// LineLayer draws and removes line overlays and controls the viewport.
type LineLayer interface {
	DrawLine(from, to Point, color string) Line
	RemoveLines(lines []Line)
	SetView(center Point, zoom int)
	FitBounds(a, b Point, paddingPx int)
}

// SuggestionView displays or hides the search suggestion panel.
type SuggestionView interface {
	ShowSuggestions(stations []station.Station)
	Hide()
}

// ConnectionListView renders the connection list for the selected station.
type ConnectionListView interface {
	ShowSelected(name string)
	ShowConnections(conns []station.Connection)
	ShowNoConnections()
}
