package scrape

import "log"

type hub struct {
	name     string
	lat, lon float64
	country  string
}

// meshRoutes connects every station to every other station of the same
// operator (no self connections).
func meshRoutes(stations []hub, operator, country string) []Route {
	var routes []Route
	for i, origin := range stations {
		for j, dest := range stations {
			if i == j {
				continue
			}
			routes = append(routes, Route{
				Origin:         origin.name,
				OriginLat:      origin.lat,
				OriginLon:      origin.lon,
				Destination:    dest.name,
				DestinationLat: dest.lat,
				DestinationLon: dest.lon,
				Operator:       operator,
				Country:        country,
			})
		}
	}
	return routes
}

// ScrapeDeutscheBahn returns German railway routes.
// Placeholder implementation: a real one would parse the DB website.
func (s *Scraper) ScrapeDeutscheBahn() []Route {
	log.Printf("scraping German railway routes")

	mainStations := []hub{
		{"Berlin Hauptbahnhof", 52.5250, 13.3690, "Germany"},
		{"München Hauptbahnhof", 48.1402, 11.5600, "Germany"},
		{"Frankfurt Hauptbahnhof", 50.1071, 8.6636, "Germany"},
		{"Hamburg Hauptbahnhof", 53.5533, 10.0064, "Germany"},
		{"Köln Hauptbahnhof", 50.9432, 6.9587, "Germany"},
	}

	return meshRoutes(mainStations, "Deutsche Bahn", "Germany")
}

// ScrapeSNCF returns French railway routes.
// Placeholder implementation: a real one would parse the SNCF website.
func (s *Scraper) ScrapeSNCF() []Route {
	log.Printf("scraping French railway routes")

	mainStations := []hub{
		{"Paris Gare du Nord", 48.8809, 2.3553, "France"},
		{"Lyon Part-Dieu", 45.7601, 4.8591, "France"},
		{"Marseille Saint-Charles", 43.3036, 5.3831, "France"},
		{"Bordeaux Saint-Jean", 44.8263, -0.5553, "France"},
		{"Lille Europe", 50.6392, 3.0728, "France"},
	}

	return meshRoutes(mainStations, "SNCF", "France")
}

// ScrapeTrenitalia returns Italian railway routes.
// Placeholder implementation: a real one would parse the Trenitalia website.
func (s *Scraper) ScrapeTrenitalia() []Route {
	log.Printf("scraping Italian railway routes")

	mainStations := []hub{
		{"Roma Termini", 41.9010, 12.5011, "Italy"},
		{"Milano Centrale", 45.4862, 9.2050, "Italy"},
		{"Firenze Santa Maria Novella", 43.7764, 11.2481, "Italy"},
		{"Venezia Santa Lucia", 45.4416, 12.3254, "Italy"},
		{"Napoli Centrale", 40.8518, 14.2720, "Italy"},
	}

	return meshRoutes(mainStations, "Trenitalia", "Italy")
}

// InternationalRoutes creates connections between major international hubs.
// Not every pair is connected; the (i+j)%3 rule thins the mesh into a
// somewhat realistic network.
func (s *Scraper) InternationalRoutes() []Route {
	log.Printf("creating international railway connections")

	hubs := []hub{
		{"Paris Gare du Nord", 48.8809, 2.3553, "France"},
		{"Brussels Midi", 50.8357, 4.3356, "Belgium"},
		{"Amsterdam Centraal", 52.3789, 4.9003, "Netherlands"},
		{"London St Pancras", 51.5322, -0.1271, "United Kingdom"},
		{"Frankfurt Hauptbahnhof", 50.1071, 8.6636, "Germany"},
		{"Zürich Hauptbahnhof", 47.3783, 8.5403, "Switzerland"},
		{"Wien Hauptbahnhof", 48.1855, 16.3798, "Austria"},
	}

	var routes []Route
	for i, origin := range hubs {
		for j, dest := range hubs {
			if i == j || (i+j)%3 == 0 {
				continue
			}
			routes = append(routes, Route{
				Origin:         origin.name,
				OriginLat:      origin.lat,
				OriginLon:      origin.lon,
				Destination:    dest.name,
				DestinationLat: dest.lat,
				DestinationLon: dest.lon,
				Operator:       "International",
				Country:        origin.country + "-" + dest.country,
			})
		}
	}
	return routes
}
