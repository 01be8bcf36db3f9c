package station

import "testing"

func TestPlaceholder_Shape(t *testing.T) {
	ds := Placeholder()

	if len(ds.Stations) != 10 {
		t.Errorf("expected 10 placeholder stations, got %d", len(ds.Stations))
	}
	if len(ds.Connections) != 5 {
		t.Errorf("expected 5 origins, got %d", len(ds.Connections))
	}

	for origin, conns := range ds.Connections {
		if len(conns) < 2 || len(conns) > 3 {
			t.Errorf("origin %s has %d connections, want 2-3", origin, len(conns))
		}
	}
}

func TestPlaceholder_ParisConnections(t *testing.T) {
	ds := Placeholder()

	conns := ds.ConnectionsFrom("Paris Gare du Nord")
	if len(conns) != 3 {
		t.Fatalf("Paris Gare du Nord should have 3 connections, got %d", len(conns))
	}

	want := []string{"London St Pancras", "Brussels Midi", "Amsterdam Centraal"}
	for i, name := range want {
		if conns[i].Name != name {
			t.Errorf("connection %d is %s, want %s", i, conns[i].Name, name)
		}
		if conns[i].Operator != "International" {
			t.Errorf("connection %d operator is %s, want International", i, conns[i].Operator)
		}
	}
}

func TestPlaceholder_RomaTerminiIsDestinationOnly(t *testing.T) {
	ds := Placeholder()

	if _, ok := ds.StationByName("Roma Termini"); !ok {
		t.Fatal("Roma Termini should be in the station list")
	}
	if len(ds.ConnectionsFrom("Roma Termini")) != 0 {
		t.Error("Roma Termini should have no outgoing connections")
	}

	appearsAsDestination := false
	for _, conns := range ds.Connections {
		for _, c := range conns {
			if c.Name == "Roma Termini" {
				appearsAsDestination = true
			}
		}
	}
	if !appearsAsDestination {
		t.Error("Roma Termini should appear as a destination")
	}
}

func TestPlaceholder_ReferentialIntegrity(t *testing.T) {
	ds := Placeholder()

	if err := ds.Validate(); err != nil {
		t.Fatalf("placeholder dataset should validate: %v", err)
	}
	if agg := ds.Audit(); !agg.Empty() {
		t.Error("placeholder dataset should pass the referential integrity audit")
	}
}

func TestDataset_RouteCount(t *testing.T) {
	tests := []struct {
		name        string
		connections ConnectionIndex
		want        int
	}{
		{
			name:        "empty index",
			connections: ConnectionIndex{},
			want:        0,
		},
		{
			name: "sum over origins",
			connections: ConnectionIndex{
				"A": {{Name: "B"}, {Name: "C"}, {Name: "D"}},
				"B": {{Name: "A"}, {Name: "C"}},
			},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Dataset{Connections: tt.connections}
			if got := ds.RouteCount(); got != tt.want {
				t.Errorf("RouteCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDataset_StationByName(t *testing.T) {
	ds := Placeholder()

	s, ok := ds.StationByName("Paris Gare du Nord")
	if !ok {
		t.Fatal("Paris Gare du Nord should be found")
	}
	if s.Latitude != 48.8809 || s.Longitude != 2.3553 {
		t.Errorf("unexpected coordinates: %f, %f", s.Latitude, s.Longitude)
	}

	if _, ok := ds.StationByName("Atlantis Central"); ok {
		t.Error("unknown station should not be found")
	}
}
