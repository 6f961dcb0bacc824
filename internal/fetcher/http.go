package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/xuri/excelize/v2"
)

// HTTPFetcher downloads the published workbook over HTTP. Download
// failures propagate unmodified; there is no retry or partial-file
// recovery.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// NewHTTPFetcher creates a fetcher for the given URL with optional proxy support.
func NewHTTPFetcher(rawURL, proxyURL string) *HTTPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPFetcher{
		URL: rawURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *HTTPFetcher) Name() string { return "http" }

// Fetch downloads and decodes the workbook.
func (f *HTTPFetcher) Fetch(ctx context.Context) (*excelize.File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download quotes: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download quotes: status %d", resp.StatusCode)
	}

	doc, err := excelize.OpenReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode workbook: %w", err)
	}
	return doc, nil
}
