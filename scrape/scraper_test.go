package scrape

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestScrapers_MeshCounts(t *testing.T) {
	s := NewScraper("")

	tests := []struct {
		name     string
		routes   []Route
		operator string
		want     int
	}{
		{"Deutsche Bahn", s.ScrapeDeutscheBahn(), "Deutsche Bahn", 20},
		{"SNCF", s.ScrapeSNCF(), "SNCF", 20},
		{"Trenitalia", s.ScrapeTrenitalia(), "Trenitalia", 20},
		{"International", s.InternationalRoutes(), "International", 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.routes) != tt.want {
				t.Errorf("got %d routes, want %d", len(tt.routes), tt.want)
			}
			for _, r := range tt.routes {
				if r.Operator != tt.operator {
					t.Errorf("route %s->%s has operator %s", r.Origin, r.Destination, r.Operator)
				}
				if r.Origin == r.Destination {
					t.Errorf("self connection %s->%s", r.Origin, r.Destination)
				}
			}
		})
	}
}

func TestInternationalRoutes_CountryPairs(t *testing.T) {
	s := NewScraper("")

	for _, r := range s.InternationalRoutes() {
		if r.Country == "" || r.Country == r.Origin {
			t.Errorf("route %s->%s has country %q", r.Origin, r.Destination, r.Country)
		}
	}

	// The thinned mesh keeps Paris -> London
	found := false
	for _, r := range s.InternationalRoutes() {
		if r.Origin == "Paris Gare du Nord" && r.Destination == "London St Pancras" {
			found = true
			if r.Country != "France-United Kingdom" {
				t.Errorf("country = %s, want France-United Kingdom", r.Country)
			}
		}
	}
	if !found {
		t.Error("Paris -> London route missing from international mesh")
	}
}

func TestScrapeAll(t *testing.T) {
	routesFile := filepath.Join(t.TempDir(), "train_routes.json")

	s := NewScraper("")
	routes, err := s.ScrapeAll(routesFile)
	if err != nil {
		t.Fatalf("ScrapeAll() error: %v", err)
	}

	if len(routes) != 88 {
		t.Errorf("total routes = %d, want 88 (20+20+20+28)", len(routes))
	}

	loaded, err := LoadRoutes(routesFile)
	if err != nil {
		t.Fatalf("LoadRoutes() error: %v", err)
	}
	if len(loaded) != len(routes) {
		t.Errorf("round trip lost routes: %d != %d", len(loaded), len(routes))
	}
}

func TestGetPage_Cache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html>timetable</html>"))
	}))
	defer srv.Close()

	cacheFile := filepath.Join(t.TempDir(), "railway_cache.json")
	s := NewScraper(cacheFile)
	s.fetchDelay = 0

	page, err := s.GetPage(srv.URL)
	if err != nil {
		t.Fatalf("GetPage() error: %v", err)
	}
	if page != "<html>timetable</html>" {
		t.Errorf("unexpected page content %q", page)
	}

	// Second fetch is served from the cache
	if _, err := s.GetPage(srv.URL); err != nil {
		t.Fatalf("cached GetPage() error: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times, want 1", hits.Load())
	}

	// A fresh scraper reads the persisted cache
	s2 := NewScraper(cacheFile)
	s2.fetchDelay = 0
	if _, err := s2.GetPage(srv.URL); err != nil {
		t.Fatalf("persisted cache GetPage() error: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times after cache reload, want 1", hits.Load())
	}
}

func TestGetPage_NonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	s := NewScraper("")
	s.fetchDelay = 0
	if _, err := s.GetPage(srv.URL); err == nil {
		t.Error("non-OK status should return an error")
	}
}

func TestNewScraper_CorruptCache(t *testing.T) {
	cacheFile := filepath.Join(t.TempDir(), "railway_cache.json")
	if err := os.WriteFile(cacheFile, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewScraper(cacheFile)
	if len(s.cache) != 0 {
		t.Error("corrupt cache should be discarded")
	}
}
