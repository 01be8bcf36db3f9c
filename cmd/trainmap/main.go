package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"eurorail/trainmap/config"
	"eurorail/trainmap/internal"
	"eurorail/trainmap/process"
	"eurorail/trainmap/scrape"
	"eurorail/trainmap/station"
	"eurorail/trainmap/web"
)

func main() {
	mode := flag.String("mode", "serve", "scrape|process|serve|oneshot")
	dataURL := flag.String("dataURL", "", "dataset URL (overrides config)")
	routesFile := flag.String("routesFile", "", "scraped routes file (overrides config)")
	webDataFile := flag.String("webDataFile", "", "processed web data file (overrides config)")
	noCache := flag.Bool("noCache", false, "disable the scraper page cache")
	flag.Parse()

	internal.InitLogging()

	_ = godotenv.Load()
	if err := config.LoadAppConfig(); err != nil {
		log.Printf("no config file loaded, using defaults: %v", err)
		config.Config = config.Default()
	}

	if *dataURL != "" {
		config.Config.Data.URL = *dataURL
	}
	if *routesFile != "" {
		config.Config.Data.RoutesFile = *routesFile
	}
	if *webDataFile != "" {
		config.Config.Data.WebDataFile = *webDataFile
	}

	switch *mode {
	case "scrape":
		runScrape(*noCache)
	case "process":
		runProcess()
	case "serve":
		runServe()
	case "oneshot":
		runScrape(*noCache)
		runProcess()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func runScrape(noCache bool) {
	cfg := config.Config.Data
	ensureDir(cfg.RoutesFile)

	cacheFile := cfg.CacheFile
	if noCache {
		cacheFile = ""
	}

	scraper := scrape.NewScraper(cacheFile)
	routes, err := scraper.ScrapeAll(cfg.RoutesFile)
	if err != nil {
		log.Fatalf("scrape failed: %v", err)
	}
	fmt.Printf("Total routes: %d\n", len(routes))
	fmt.Printf("Routes saved to %s\n", cfg.RoutesFile)
}

func runProcess() {
	cfg := config.Config.Data
	ensureDir(cfg.WebDataFile)

	processor := process.NewProcessorFromFile(cfg.RoutesFile)
	ds, err := processor.WriteWebData(cfg.WebDataFile)
	if err != nil {
		log.Fatalf("process failed: %v", err)
	}
	if err := ds.Validate(); err != nil {
		log.Printf("dataset shape warning: %v", err)
	}
	ds.Audit().LogAll(cfg.RoutesFile)

	stats := processor.Statistics()
	fmt.Printf("Total routes: %d\n", stats.TotalRoutes)
	fmt.Printf("Unique stations: %d\n", stats.UniqueStations)
	fmt.Println("Top connected stations:")
	for _, oc := range stats.TopConnectedOrigins {
		fmt.Printf("  %s: %d connections\n", oc.Station, oc.Count)
	}
}

func runServe() {
	cfg := config.Config.Data
	loader := station.NewLoader(time.Duration(cfg.TimeoutMS) * time.Millisecond)
	ds, source := loader.LoadOrPlaceholder(context.Background(), cfg.URL)
	ds.Audit().LogAll(source)

	handler := web.NewDatasetHandler(ds, source)
	web.StartServer(handler)
	web.HandleGracefulShutdown()
}

func ensureDir(path string) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("cannot create %s: %v", dir, err)
		}
	}
}
