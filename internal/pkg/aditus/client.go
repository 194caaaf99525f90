// Package aditus implements the external attendance feed client against the
// Aditus HTTP API. Only the day-aggregate endpoint is consumed; the feed is
// authoritative for its own minute totals.
package aditus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/worklogix/attendance-backend-go/internal/domain/feed"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchMonth implements feed.Client.
func (c *Client) FetchMonth(ctx context.Context, username string, year, month int) ([]feed.DaySummary, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("year", fmt.Sprintf("%d", year))
	q.Set("month", fmt.Sprintf("%d", month))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/days?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch attendance feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("attendance feed returned status %d", resp.StatusCode)
	}

	var days []feed.DaySummary
	if err := json.NewDecoder(resp.Body).Decode(&days); err != nil {
		return nil, fmt.Errorf("decode attendance feed response: %w", err)
	}

	return days, nil
}
