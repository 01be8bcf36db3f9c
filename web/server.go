package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"eurorail/trainmap/config"
)

var server *http.Server

// NewRouter wires the API routes, CORS and optional static file serving.
func NewRouter(h *DatasetHandler, staticDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", h.GetHealth)
	r.Get("/api/data", h.GetData)
	r.Get("/api/stations", h.GetStations)
	r.Get("/api/search", h.GetSearch)
	r.Get("/api/stations/{name}/connections", h.GetConnections)
	r.Get("/api/map", h.GetMap)
	r.Get("/api/colors", h.GetColors)
	r.Get("/api/stats", h.GetStats)

	// The page fetches the dataset via the relative path ./data/web_data.json,
	// so the static dir must contain data/ alongside the markup.
	if staticDir != "" {
		fs := http.FileServer(http.Dir(staticDir))
		r.Handle("/*", fs)
	}

	return r
}

// StartServer starts the HTTP server on the configured port. PORT and
// STATIC_DIR environment variables override the config file.
func StartServer(h *DatasetHandler) {
	staticDir := config.Config.Server.StaticDir
	if env := os.Getenv("STATIC_DIR"); env != "" {
		staticDir = env
	}

	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}

	server = &http.Server{
		Addr:              addr,
		Handler:           NewRouter(h, staticDir),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM and shuts the
// server down with a deadline.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
