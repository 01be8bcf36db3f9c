package process

import (
	"encoding/json"
	"log"
	"os"

	"eurorail/trainmap/scrape"
	"eurorail/trainmap/station"
)

// Processor turns raw route records into the web dataset document.
type Processor struct {
	routes []scrape.Route
}

// NewProcessor creates a processor over the given route records.
func NewProcessor(routes []scrape.Route) *Processor {
	return &Processor{routes: routes}
}

// NewProcessorFromFile loads route records from a routes file. A missing
// file yields an empty processor, matching the permissive pipeline: the
// output document is then empty but well-formed.
func NewProcessorFromFile(routesFile string) *Processor {
	routes, err := scrape.LoadRoutes(routesFile)
	if err != nil {
		log.Printf("input file %s not found or unreadable: %v", routesFile, err)
		return &Processor{}
	}
	return &Processor{routes: routes}
}

// ExtractStations returns the unique stations appearing in the routes,
// origins and destinations alike. First occurrence wins; input order is
// preserved.
func (p *Processor) ExtractStations() []station.Station {
	seen := map[string]struct{}{}
	var stations []station.Station

	add := func(name string, lat, lon float64) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		stations = append(stations, station.Station{Name: name, Latitude: lat, Longitude: lon})
	}

	for _, r := range p.routes {
		add(r.Origin, r.OriginLat, r.OriginLon)
		add(r.Destination, r.DestinationLat, r.DestinationLon)
	}

	log.Printf("extracted %d unique stations", len(stations))
	return stations
}

// BuildConnections builds the directed origin -> connection-list index.
// Connection order follows route input order.
func (p *Processor) BuildConnections() station.ConnectionIndex {
	connections := station.ConnectionIndex{}

	for _, r := range p.routes {
		connections[r.Origin] = append(connections[r.Origin], station.Connection{
			Name:      r.Destination,
			Latitude:  r.DestinationLat,
			Longitude: r.DestinationLon,
			Operator:  r.Operator,
			Country:   r.Country,
		})
	}

	log.Printf("built connections for %d stations", len(connections))
	return connections
}

// Dataset combines extracted stations and connections into the document
// consumed by the map page.
func (p *Processor) Dataset() *station.Dataset {
	return &station.Dataset{
		Stations:    p.ExtractStations(),
		Connections: p.BuildConnections(),
	}
}

// WriteWebData processes the routes and writes the web dataset document.
func (p *Processor) WriteWebData(path string) (*station.Dataset, error) {
	ds := p.Dataset()
	data, err := json.Marshal(ds)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, err
	}
	log.Printf("processed data saved to %s", path)
	return ds, nil
}
