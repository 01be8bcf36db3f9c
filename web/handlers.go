package web

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"eurorail/trainmap/config"
	"eurorail/trainmap/render"
	"eurorail/trainmap/search"
	"eurorail/trainmap/station"
)

// DatasetHandler serves the loaded dataset to the map page.
type DatasetHandler struct {
	dataset *station.Dataset
	source  string
	index   *search.Index
}

// NewDatasetHandler creates a handler over an immutable dataset. source
// is the label reported by the loader ("remote" or "placeholder").
func NewDatasetHandler(ds *station.Dataset, source string) *DatasetHandler {
	return &DatasetHandler{
		dataset: ds,
		source:  source,
		index:   search.NewIndex(ds.Stations),
	}
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// GetData handles GET /api/data and returns the full dataset document,
// the same shape as the static data file contract.
func (h *DatasetHandler) GetData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.dataset)
}

// GetStations handles GET /api/stations.
func (h *DatasetHandler) GetStations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"stations": h.dataset.Stations,
		"count":    len(h.dataset.Stations),
	})
}

// GetSearch handles GET /api/search?q=. Queries below the minimum length
// yield an empty suggestion set.
func (h *DatasetHandler) GetSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	matches := h.index.Query(q)
	if matches == nil {
		matches = []station.Station{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":    q,
		"stations": matches,
	})
}

// connectionEntry is one connection list entry with its line color.
type connectionEntry struct {
	station.Connection
	Color string `json:"color"`
}

// GetConnections handles GET /api/stations/{name}/connections. An origin
// with no connections is an empty list; a name absent from the station
// list entirely is a 404.
func (h *DatasetHandler) GetConnections(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	// Station names contain spaces; chi hands the segment back escaped.
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	origin, known := h.dataset.StationByName(name)
	if !known {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "station not found"})
		return
	}

	conns := h.dataset.ConnectionsFrom(name)
	entries := make([]connectionEntry, 0, len(conns))
	for _, c := range conns {
		entries = append(entries, connectionEntry{Connection: c, Color: render.OperatorColor(c.Operator)})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"station":     origin,
		"connections": entries,
		"count":       len(entries),
	})
}

// GetMap handles GET /api/map: the fixed viewport parameters the page
// initializes its map widget with.
func (h *DatasetHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	m := config.Config.Map
	writeJSON(w, http.StatusOK, map[string]any{
		"center":       render.Point{Latitude: m.CenterLatitude, Longitude: m.CenterLongitude},
		"defaultZoom":  m.DefaultZoom,
		"focusZoom":    m.FocusZoom,
		"fitPaddingPx": m.FitPaddingPx,
		"attribution":  render.TileAttribution,
	})
}

// GetColors handles GET /api/colors: the operator -> line color palette,
// merged with any overrides from the config file.
func (h *DatasetHandler) GetColors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"operators": render.OperatorColors(config.Config.Colors.Operators),
		"default":   render.DefaultLineColor,
	})
}

// GetStats handles GET /api/stats: the two sidebar statistics plus the
// dataset source label for operators.
func (h *DatasetHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"stations":    len(h.dataset.Stations),
		"routes":      h.dataset.RouteCount(),
		"source":      h.source,
		"attribution": render.TileAttribution,
	})
}
