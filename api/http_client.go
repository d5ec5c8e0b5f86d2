// api/http_client.go
package api

import (
	"errors"
	"io"
	"net/http"
	"time"
)

const DEFAULT_TIMEOUT = 30 * time.Second

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: DEFAULT_TIMEOUT,
		},
	}
}

// Fetch GETs endpoint and returns the raw response body, e.g. a CSV file.
func (c *HTTPClient) Fetch(endpoint string) ([]byte, error) {
	url := c.BaseURL + endpoint
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv, */*")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, errors.New("unexpected status code: " + res.Status)
	}
	return resBody, nil
}
