/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bennypowers.dev/tokenwind/internal/version"
)

const (
	// DefaultTimeout bounds a single remote source request.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize caps the body of a remote source at 10 MB.
	DefaultMaxSize int64 = 10 << 20
)

// tokenMediaTypes is sent as Accept. Token files are JSON or YAML.
const tokenMediaTypes = "application/json, application/yaml;q=0.9, */*;q=0.1"

// ErrTooLarge is returned when a remote source exceeds the size limit.
var ErrTooLarge = errors.New("exceeds maximum size")

// StatusError is returned for any response other than 200 OK.
type StatusError struct {
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

// IsRemote reports whether a token source is an http(s) URL.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "https://") || strings.HasPrefix(source, "http://")
}

// Fetcher fetches remote token sources.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetchOption configures an HTTPFetcher.
type FetchOption func(*HTTPFetcher)

// WithMaxSize sets the largest body the fetcher accepts.
func WithMaxSize(n int64) FetchOption {
	return func(f *HTTPFetcher) { f.maxSize = n }
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) FetchOption {
	return func(f *HTTPFetcher) { f.client.Timeout = d }
}

// WithClient replaces the underlying http.Client.
func WithClient(c *http.Client) FetchOption {
	return func(f *HTTPFetcher) { f.client = c }
}

// HTTPFetcher is the Fetcher used by the CLI.
type HTTPFetcher struct {
	client  *http.Client
	maxSize int64
}

// NewHTTPFetcher returns a fetcher limited to DefaultMaxSize and DefaultTimeout
// unless opts say otherwise.
func NewHTTPFetcher(opts ...FetchOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:  &http.Client{Timeout: DefaultTimeout},
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("bad source URL %s: %w", url, err)
	}
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", tokenMediaTypes)

	resp, err := f.client.Do(req)
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded) || isTimeout(err):
		return nil, fmt.Errorf("GET %s: timeout: %w", url, err)
	default:
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Status: resp.Status, Code: resp.StatusCode}
	}
	return readLimited(resp.Body, url, f.maxSize)
}

// readLimited reads at most limit bytes of body, failing with ErrTooLarge
// when there is more.
func readLimited(body io.Reader, url string, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("GET %s: reading body: %w", url, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("GET %s: body %w of %d bytes", url, ErrTooLarge, limit)
	}
	return data, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
