package station

// Placeholder returns the fixed fallback dataset used when the data file
// cannot be fetched. 10 stations, 5 origins with 2-3 connections each,
// so the demo stays usable offline.
func Placeholder() *Dataset {
	stations := []Station{
		{Name: "Paris Gare du Nord", Latitude: 48.8809, Longitude: 2.3553},
		{Name: "London St Pancras", Latitude: 51.5322, Longitude: -0.1271},
		{Name: "Brussels Midi", Latitude: 50.8357, Longitude: 4.3356},
		{Name: "Amsterdam Centraal", Latitude: 52.3789, Longitude: 4.9003},
		{Name: "Berlin Hauptbahnhof", Latitude: 52.5250, Longitude: 13.3690},
		{Name: "Frankfurt Hauptbahnhof", Latitude: 50.1071, Longitude: 8.6636},
		{Name: "München Hauptbahnhof", Latitude: 48.1402, Longitude: 11.5600},
		{Name: "Zürich Hauptbahnhof", Latitude: 47.3783, Longitude: 8.5403},
		{Name: "Milano Centrale", Latitude: 45.4862, Longitude: 9.2050},
		{Name: "Roma Termini", Latitude: 41.9010, Longitude: 12.5011},
	}

	connections := ConnectionIndex{
		"Paris Gare du Nord": {
			{Name: "London St Pancras", Latitude: 51.5322, Longitude: -0.1271, Operator: "International", Country: "France-United Kingdom"},
			{Name: "Brussels Midi", Latitude: 50.8357, Longitude: 4.3356, Operator: "International", Country: "France-Belgium"},
			{Name: "Amsterdam Centraal", Latitude: 52.3789, Longitude: 4.9003, Operator: "International", Country: "France-Netherlands"},
		},
		"Berlin Hauptbahnhof": {
			{Name: "Frankfurt Hauptbahnhof", Latitude: 50.1071, Longitude: 8.6636, Operator: "Deutsche Bahn", Country: "Germany"},
			{Name: "München Hauptbahnhof", Latitude: 48.1402, Longitude: 11.5600, Operator: "Deutsche Bahn", Country: "Germany"},
		},
		"Frankfurt Hauptbahnhof": {
			{Name: "Paris Gare du Nord", Latitude: 48.8809, Longitude: 2.3553, Operator: "International", Country: "Germany-France"},
			{Name: "Zürich Hauptbahnhof", Latitude: 47.3783, Longitude: 8.5403, Operator: "International", Country: "Germany-Switzerland"},
			{Name: "München Hauptbahnhof", Latitude: 48.1402, Longitude: 11.5600, Operator: "Deutsche Bahn", Country: "Germany"},
		},
		"Zürich Hauptbahnhof": {
			{Name: "Milano Centrale", Latitude: 45.4862, Longitude: 9.2050, Operator: "International", Country: "Switzerland-Italy"},
			{Name: "Frankfurt Hauptbahnhof", Latitude: 50.1071, Longitude: 8.6636, Operator: "International", Country: "Switzerland-Germany"},
		},
		"Milano Centrale": {
			{Name: "Roma Termini", Latitude: 41.9010, Longitude: 12.5011, Operator: "Trenitalia", Country: "Italy"},
			{Name: "Zürich Hauptbahnhof", Latitude: 47.3783, Longitude: 8.5403, Operator: "International", Country: "Italy-Switzerland"},
		},
	}

	return &Dataset{Stations: stations, Connections: connections}
}
