package station

// Station represents a train station placed on the map.
// Name is unique and used as the primary key throughout.
type Station struct {
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Connection is a directed edge from an origin station to a destination,
// carrying a denormalized copy of the destination's coordinates plus
// route metadata.
type Connection struct {
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Operator  string  `json:"operator"`
	Country   string  `json:"country"`
}

// ConnectionIndex maps an origin station name to its ordered connection list.
// Edges are directed; a reverse edge exists only if separately listed.
type ConnectionIndex map[string][]Connection

// Dataset is the whole document consumed from the data file contract.
// It is loaded once per session and never mutated afterwards.
type Dataset struct {
	Stations    []Station       `json:"stations"`
	Connections ConnectionIndex `json:"connections"`
}

// StationByName looks up a station by its name. A miss is an empty
// result, not an error.
func (d *Dataset) StationByName(name string) (Station, bool) {
	for _, s := range d.Stations {
		if s.Name == name {
			return s, true
		}
	}
	return Station{}, false
}

// ConnectionsFrom returns the connection list for an origin station.
// A missing key yields an empty list.
func (d *Dataset) ConnectionsFrom(name string) []Connection {
	return d.Connections[name]
}

// RouteCount is the total number of routes: the sum over all origins of
// their connection-list lengths.
func (d *Dataset) RouteCount() int {
	n := 0
	for _, conns := range d.Connections {
		n += len(conns)
	}
	return n
}
