// internal/brandmeister/client.go
package brandmeister

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the well-known BrandMeister API endpoint.
const DefaultBaseURL = "http://api.brandmeister.network"

// lastUpdatedField is the one JSON field the plugin reads.
const lastUpdatedField = "last_updated"

// ErrRequestFailed covers every fetch-side failure: dial error, non-2xx
// status, invalid JSON, missing field. The API gives an unknown repeater id
// an empty or garbage body, so the causes are not distinguishable and are
// deliberately collapsed into one kind.
var ErrRequestFailed = errors.New("error parsing API result, ensure repeater id is valid")

// Client is a stateless BrandMeister API client (1 check = 1 request).
type Client struct {
	baseURL string
	http    *http.Client
}

type Config struct {
	BaseURL string
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	// No Timeout on the transport: the invoking framework's watchdog bounds
	// worst-case latency.
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{},
	}, nil
}

// LastUpdated fetches the last-seen timestamp string for one repeater.
// Exactly one GET, no retries, no auth.
func (c *Client) LastUpdated(repeaterID uint32) (string, error) {
	url := fmt.Sprintf("%s/v1.0/repeater/?action=get&q=%d", c.baseURL, repeaterID)

	resp, err := c.http.Get(url)
	if err != nil {
		return "", fmt.Errorf("brandmeister: get: %w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("brandmeister: status %s: %w", resp.Status, ErrRequestFailed)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("brandmeister: read body: %w: %v", ErrRequestFailed, err)
	}

	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("brandmeister: invalid body: %w", ErrRequestFailed)
	}

	field := gjson.GetBytes(body, lastUpdatedField)
	if !field.Exists() || field.Type != gjson.String {
		return "", fmt.Errorf("brandmeister: missing %s: %w", lastUpdatedField, ErrRequestFailed)
	}

	return field.String(), nil
}
