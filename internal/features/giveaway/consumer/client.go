package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"free-game-tracker/internal/features/giveaway/models"
)

// LoadFailedMessage is what the user sees when the gateway cannot be read.
const LoadFailedMessage = "Failed to load games. Please try again later."

// ErrLoadFailed wraps every failure of FetchGiveaways.
var ErrLoadFailed = errors.New(LoadFailedMessage)

// Client reads giveaways from the gateway.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient builds a client for the gateway at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// FetchGiveaways loads the full listing with a single request.
func (c *Client) FetchGiveaways(ctx context.Context) ([]models.Giveaway, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/giveaways", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrLoadFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: gateway responded %s", ErrLoadFailed, resp.Status)
	}

	var records []models.Giveaway
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrLoadFailed, err)
	}
	return records, nil
}
