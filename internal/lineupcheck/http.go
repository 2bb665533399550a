package lineupcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/lineup/internal/domain/roster"
	"github.com/okian/lineup/internal/domain/types"
)

// requestIDHeader is echoed by the service on every response.
const requestIDHeader = "X-Request-ID"

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client  *http.Client
	baseURL string
	runID   string
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(baseURL, runID string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		runID:   runID,
	}
}

// Get performs a GET request and returns the status and body.
func (c *HTTPClient) Get(ctx context.Context, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req)
}

// Post performs a POST request with JSON body and returns the status and body.
func (c *HTTPClient) Post(ctx context.Context, path string, body interface{}) (int, []byte, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *HTTPClient) do(req *http.Request) (int, []byte, error) {
	req.Header.Set(requestIDHeader, c.runID)
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

// fetchActivities lists the activities the service knows about.
func fetchActivities(ctx context.Context, c *HTTPClient) ([]types.ActivitySummary, error) {
	status, body, err := c.Get(ctx, "/activities")
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("activities request failed with status: %d", status)
	}
	var list []types.ActivitySummary
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return list, nil
}

// recommendAll posts raws to /recommendations/all.
func recommendAll(ctx context.Context, c *HTTPClient, raws []roster.RawHero) (int, []byte, error) {
	return c.Post(ctx, "/recommendations/all", struct {
		Roster []roster.RawHero `json:"roster"`
	}{Roster: raws})
}
