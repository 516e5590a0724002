package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

// maxBodyBytes bounds a single content document.
const maxBodyBytes = 8 << 20

// Response is the transport-level outcome of a fetch.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a success status.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher retrieves the raw bytes behind a content path such as
// /content/pages/home.json. A missing resource is a non-OK Response, not an error.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (*Response, error)
}

// HTTPFetcher reads content from a static host.
type HTTPFetcher struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch issues GET baseURL+path.
func (f *HTTPFetcher) Fetch(ctx context.Context, path string) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return &Response{StatusCode: resp.StatusCode}, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("read %s: body exceeds %d bytes", path, maxBodyBytes)
	}
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// Close releases idle connections.
func (f *HTTPFetcher) Close() {
	f.httpClient.CloseIdleConnections()
}

// DirFetcher reads content straight from the published site tree.
type DirFetcher struct {
	fsys fs.FS
}

func NewDirFetcher(fsys fs.FS) *DirFetcher {
	return &DirFetcher{fsys: fsys}
}

// Fetch maps /content/pages/home.json to content/pages/home.json inside the FS.
func (f *DirFetcher) Fetch(ctx context.Context, path string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(path, "/")
	if !fs.ValidPath(name) || name == "." {
		return &Response{StatusCode: http.StatusNotFound}, nil
	}

	info, err := fs.Stat(f.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return &Response{StatusCode: http.StatusNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return &Response{StatusCode: http.StatusNotFound}, nil
	}
	if info.Size() > maxBodyBytes {
		return nil, fmt.Errorf("read %s: file exceeds %d bytes", path, maxBodyBytes)
	}

	body, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Response{StatusCode: http.StatusOK, Body: body}, nil
}
