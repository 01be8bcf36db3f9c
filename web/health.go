package web

import "net/http"

type healthResponse struct {
	Status     string `json:"status"`
	Stations   int    `json:"stations"`
	DataSource string `json:"data_source"`
}

// GetHealth handles GET /health.
func (h *DatasetHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Stations:   len(h.dataset.Stations),
		DataSource: h.source,
	})
}
