package resource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPReader скачивает ресурсы по HTTP относительно baseURL.
type HTTPReader struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPReader создаёт HTTPReader с таймаутом запроса timeout.
func NewHTTPReader(baseURL string, timeout time.Duration) *HTTPReader {
	return &HTTPReader{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ReadResource скачивает ресурс name.
func (r *HTTPReader) ReadResource(ctx context.Context, name string) ([]byte, error) {
	link, err := url.JoinPath(r.baseURL, name)
	if err != nil {
		return nil, fmt.Errorf("build url for %s: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", link, ErrNotFound)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("download %s: unexpected status %s", link, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return data, nil
}
