package transport

import (
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/bairdj/afl-crowds/internal/logger"
)

var httpClient *http.Client

// GetHTTPClient returns the shared HTTP client used for all source fetches
func GetHTTPClient() *http.Client {
	if httpClient != nil {
		return httpClient
	}
	httpClient = &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
		},
		Timeout: 30 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			return nil
		},
	}
	return httpClient
}

// Get fetches the given URL and returns the decoded response body.
// Any non-200 status is an error, the caller should treat it as fatal
// for the current run.
func Get(url string) ([]byte, error) {
	client := GetHTTPClient()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Some of the statistics sites reject obviously non-browser agents
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,text/plain;q=0.8,*/*;q=0.7")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	req.Header.Set("Accept-Language", "en-AU,en;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request for %s returned error status %d", url, resp.StatusCode)
	}

	// handle compression (Content-Encoding)
	var reader io.ReadCloser = resp.Body
	contentEncoding := resp.Header.Get("Content-Encoding")
	switch contentEncoding {
	case "gzip":
		reader, err = NewGzipReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
	case "deflate":
		reader, err = NewDeflateReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create deflate reader: %w", err)
		}
		defer reader.Close()
	case "br":
		reader, err = NewBrotliReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create brotli reader: %w", err)
		}
		defer reader.Close()
	default:
		if contentEncoding != "" {
			logger.Warn("Unknown content encoding:", contentEncoding)
		}
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}

// NewGzipReader creates a gzip reader from the provided io.ReadCloser
func NewGzipReader(r io.ReadCloser) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// NewDeflateReader creates a deflate reader from the provided io.ReadCloser
func NewDeflateReader(r io.ReadCloser) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}

// NewBrotliReader creates a brotli reader from the provided io.ReadCloser
func NewBrotliReader(r io.ReadCloser) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}
