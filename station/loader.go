package station

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

// Loader fetches the dataset document over HTTP.
type Loader struct {
	httpClient *http.Client
}

// NewLoader creates a loader with the given request timeout.
// A zero timeout means no timeout.
func NewLoader(timeout time.Duration) *Loader {
	return &Loader{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Load fetches and decodes the dataset from url.
// A failed request or non-2xx status yields a *NetworkError, a body that
// is not a valid dataset document yields a *ParseError.
func (l *Loader) Load(ctx context.Context, url string) (*Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	var ds Dataset
	if err := json.Unmarshal(body, &ds); err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}
	if ds.Connections == nil {
		ds.Connections = ConnectionIndex{}
	}
	return &ds, nil
}

// LoadOrPlaceholder loads the dataset from url, substituting the fixed
// placeholder dataset on any failure. The substitution is logged but not
// surfaced to the user; the returned source is "remote" or "placeholder".
// No retry and no caching beyond the single in-memory load.
func (l *Loader) LoadOrPlaceholder(ctx context.Context, url string) (*Dataset, string) {
	if url == "" {
		log.Printf("no data URL configured, using placeholder dataset")
		return Placeholder(), SourcePlaceholder
	}
	ds, err := l.Load(ctx, url)
	if err != nil {
		log.Printf("dataset load failed, falling back to placeholder: %v", err)
		return Placeholder(), SourcePlaceholder
	}
	return ds, SourceRemote
}

// Dataset source labels reported by LoadOrPlaceholder.
const (
	SourceRemote      = "remote"
	SourcePlaceholder = "placeholder"
)
