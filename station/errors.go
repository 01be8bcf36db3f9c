package station

import "fmt"

// NetworkError indicates the data file could not be fetched: the request
// failed outright or the response status was not successful.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError indicates the response body was not a valid dataset document.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse dataset from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
