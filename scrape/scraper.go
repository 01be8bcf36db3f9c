package scrape

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// Route is one scraped record: a directed edge between two stations with
// coordinates for both endpoints and route metadata.
type Route struct {
	Origin         string  `json:"origin"`
	OriginLat      float64 `json:"origin_lat"`
	OriginLon      float64 `json:"origin_lon"`
	Destination    string  `json:"destination"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLon float64 `json:"destination_lon"`
	Operator       string  `json:"operator"`
	Country        string  `json:"country"`
}

// Scraper collects European railway route data. The per-operator scrapers
// are placeholder implementations returning fixed sample meshes; only the
// page fetch plumbing talks to the network.
type Scraper struct {
	httpClient *http.Client
	userAgent  string
	fetchDelay time.Duration

	useCache  bool
	cacheFile string
	cache     map[string]string
}

// NewScraper creates a scraper. When cacheFile is non-empty, fetched pages
// are cached there between runs; a corrupted cache is discarded with a
// warning and rebuilt.
func NewScraper(cacheFile string) *Scraper {
	s := &Scraper{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		fetchDelay: 2 * time.Second,
		useCache:   cacheFile != "",
		cacheFile:  cacheFile,
		cache:      map[string]string{},
	}
	if s.useCache {
		s.loadCache()
	}
	return s
}

func (s *Scraper) loadCache() {
	data, err := os.ReadFile(s.cacheFile)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &s.cache); err != nil {
		log.Printf("cache file corrupted, creating new cache")
		s.cache = map[string]string{}
	}
}

func (s *Scraper) saveCache() error {
	data, err := json.Marshal(s.cache)
	if err != nil {
		return err
	}
	return os.WriteFile(s.cacheFile, data, 0644)
}

// GetPage fetches a page with caching and a polite delay between requests.
func (s *Scraper) GetPage(url string) (string, error) {
	if s.useCache {
		if page, ok := s.cache[url]; ok {
			return page, nil
		}
	}

	log.Printf("fetching %s", url)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", url, err)
	}

	// Be respectful to the scraped servers
	time.Sleep(s.fetchDelay)

	if s.useCache {
		s.cache[url] = string(body)
		if err := s.saveCache(); err != nil {
			log.Printf("failed to save cache: %v", err)
		}
	}

	return string(body), nil
}

// ScrapeAll collects routes from all supported railway operators and
// writes the combined list to routesFile.
func (s *Scraper) ScrapeAll(routesFile string) ([]Route, error) {
	var routes []Route
	routes = append(routes, s.ScrapeDeutscheBahn()...)
	routes = append(routes, s.ScrapeSNCF()...)
	routes = append(routes, s.ScrapeTrenitalia()...)
	routes = append(routes, s.InternationalRoutes()...)

	data, err := json.MarshalIndent(routes, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(routesFile, data, 0644); err != nil {
		return nil, err
	}

	log.Printf("scraped %d train routes in total", len(routes))
	return routes, nil
}

// LoadRoutes reads a previously written routes file.
func LoadRoutes(routesFile string) ([]Route, error) {
	data, err := os.ReadFile(routesFile)
	if err != nil {
		return nil, err
	}
	var routes []Route
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", routesFile, err)
	}
	return routes, nil
}
