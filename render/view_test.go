package render

import (
	"testing"

	"eurorail/trainmap/station"
)

func TestMapView_Markers(t *testing.T) {
	v := NewMapView(Point{Latitude: 50, Longitude: 9}, 5)

	v.AddMarker(station.Station{Name: "A", Latitude: 1, Longitude: 2})
	v.AddMarker(station.Station{Name: "B", Latitude: 3, Longitude: 4})

	if v.MarkerCount() != 2 {
		t.Errorf("MarkerCount() = %d, want 2", v.MarkerCount())
	}

	s, ok := v.Marker("A")
	if !ok || s.Latitude != 1 || s.Longitude != 2 {
		t.Errorf("Marker(A) = %+v, %v", s, ok)
	}

	// Same key again: last write wins
	v.AddMarker(station.Station{Name: "A", Latitude: 9, Longitude: 9})
	if v.MarkerCount() != 2 {
		t.Errorf("MarkerCount() after collision = %d, want 2", v.MarkerCount())
	}
	s, _ = v.Marker("A")
	if s.Latitude != 9 {
		t.Errorf("collision should overwrite, got latitude %f", s.Latitude)
	}
}

func TestMapView_Selection(t *testing.T) {
	v := NewMapView(Point{}, 5)
	v.AddMarker(station.Station{Name: "A"})

	// Clearing with nothing selected is safe
	v.ClearSelected()

	v.SetSelected("A")
	if v.Selected() != "A" {
		t.Errorf("Selected() = %s, want A", v.Selected())
	}

	// Selecting a marker that does not exist changes nothing
	v.SetSelected("nope")
	if v.Selected() != "A" {
		t.Errorf("Selected() = %s, want A after selecting unknown marker", v.Selected())
	}

	v.ClearSelected()
	if v.Selected() != "" {
		t.Errorf("Selected() = %s, want empty after clear", v.Selected())
	}
}

func TestMapView_Lines(t *testing.T) {
	v := NewMapView(Point{}, 5)

	l1 := v.DrawLine(Point{Latitude: 1}, Point{Latitude: 2}, "#ff9900")
	l2 := v.DrawLine(Point{Latitude: 3}, Point{Latitude: 4}, "#ec0016")

	if len(v.Lines()) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(v.Lines()))
	}

	v.RemoveLines([]Line{l1})
	if len(v.Lines()) != 1 || v.Lines()[0] != l2 {
		t.Errorf("expected only second line to remain, got %v", v.Lines())
	}

	// Removing an already removed line is a no-op
	v.RemoveLines([]Line{l1})
	if len(v.Lines()) != 1 {
		t.Errorf("idempotent removal violated, got %d lines", len(v.Lines()))
	}

	v.RemoveLines(nil)
	if len(v.Lines()) != 1 {
		t.Errorf("removing nothing should change nothing, got %d lines", len(v.Lines()))
	}
}

func TestMapView_Viewport(t *testing.T) {
	v := NewMapView(Point{Latitude: 50, Longitude: 9}, 5)

	v.SetView(Point{Latitude: 48.8809, Longitude: 2.3553}, 7)
	if v.Zoom() != 7 {
		t.Errorf("Zoom() = %d, want 7", v.Zoom())
	}
	if v.Center().Latitude != 48.8809 {
		t.Errorf("Center().Latitude = %f", v.Center().Latitude)
	}
	if v.FittedBounds() != nil {
		t.Error("SetView should clear fitted bounds")
	}

	a := Point{Latitude: 48.8809, Longitude: 2.3553}
	b := Point{Latitude: 51.5322, Longitude: -0.1271}
	v.FitBounds(a, b, 50)

	bounds := v.FittedBounds()
	if bounds == nil {
		t.Fatal("FitBounds should record bounds")
	}
	if !bounds.Contains(a) || !bounds.Contains(b) {
		t.Error("fitted bounds should contain both endpoints")
	}
	if v.paddingPx != 50 {
		t.Errorf("padding = %d, want 50", v.paddingPx)
	}
}

func TestOperatorColor(t *testing.T) {
	tests := []struct {
		operator string
		want     string
	}{
		{"International", "#ff9900"},
		{"Deutsche Bahn", "#ec0016"},
		{"SNCF", "#0088ce"},
		{"Trenitalia", "#00a651"},
		{"Regiojet", DefaultLineColor},
		{"", DefaultLineColor},
	}

	for _, tt := range tests {
		t.Run(tt.operator, func(t *testing.T) {
			if got := OperatorColor(tt.operator); got != tt.want {
				t.Errorf("OperatorColor(%q) = %s, want %s", tt.operator, got, tt.want)
			}
		})
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(Point{Latitude: 51, Longitude: -1}, Point{Latitude: 48, Longitude: 2})

	if b.MinLat != 48 || b.MaxLat != 51 || b.MinLon != -1 || b.MaxLon != 2 {
		t.Errorf("unexpected bounds %+v", b)
	}

	c := b.Center()
	if c.Latitude != 49.5 || c.Longitude != 0.5 {
		t.Errorf("unexpected center %+v", c)
	}
}

func TestHaversineKM(t *testing.T) {
	paris := Point{Latitude: 48.8809, Longitude: 2.3553}
	london := Point{Latitude: 51.5322, Longitude: -0.1271}

	d := HaversineKM(paris, london)
	if d < 330 || d > 360 {
		t.Errorf("Paris-London distance = %f km, want ~344", d)
	}

	if got := HaversineKM(paris, paris); got != 0 {
		t.Errorf("zero distance expected, got %f", got)
	}
}
