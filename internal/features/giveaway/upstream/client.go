package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"free-game-tracker/internal/common/errors"
)

const (
	userAgent = "free-game-tracker/1.0"
	// bodyExcerptLimit caps how much of a failed response ends up in logs.
	bodyExcerptLimit = 512
)

// Client reads the full giveaway listing from the upstream feed.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient builds a client for feedURL. A zero timeout leaves the deadline
// to the transport and the caller's context.
func NewClient(feedURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        feedURL,
	}
}

// FetchGiveaways performs one GET against the feed and returns its body
// unchanged. Transport errors, non-2xx statuses and bodies that are not JSON
// come back as EXTERNAL_API_ERROR.
func (c *Client) FetchGiveaways(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("build request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("get giveaways", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewExternalAPIError("read body", err).
			WithDetail("status", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewExternalAPIError("get giveaways", fmt.Errorf("unexpected status %s", resp.Status)).
			WithDetail("status", resp.StatusCode).
			WithDetail("body", excerpt(body))
	}

	if !json.Valid(body) {
		return nil, errors.NewExternalAPIError("decode body", fmt.Errorf("response is not valid JSON")).
			WithDetail("status", resp.StatusCode).
			WithDetail("body", excerpt(body))
	}

	return json.RawMessage(body), nil
}

func excerpt(body []byte) string {
	if len(body) > bodyExcerptLimit {
		return string(body[:bodyExcerptLimit]) + "..."
	}
	return string(body)
}
