package catalogsource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// HTTP fetches the catalog from a static file server.
type HTTP struct {
	baseURL  string
	client   *http.Client
	maxBytes int64
}

// NewHTTP returns an HTTP source rooted at baseURL. A nil client uses
// http.DefaultClient; request deadlines come from the Fetch context.
func NewHTTP(baseURL string, client *http.Client, maxBytes int64) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   client,
		maxBytes: maxBytes,
	}
}

func (s *HTTP) Kind() string { return KindHTTP }

// URL returns the address fetched for path.
func (s *HTTP) URL(path string) (string, error) {
	u, err := url.JoinPath(s.baseURL, path)
	if err != nil {
		return "", fmt.Errorf("build catalog url: %w", err)
	}
	return u, nil
}

// Fetch GETs <baseURL>/<path>. Any non-2xx status is an error.
func (s *HTTP) Fetch(ctx context.Context, path string) ([]byte, error) {
	u, err := s.URL(path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, u)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch catalog: unexpected status %s", resp.Status)
	}

	data, err := readLimited(resp.Body, s.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	return data, nil
}
