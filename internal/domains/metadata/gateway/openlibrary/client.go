package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"book-catalog-backend/internal/domains/metadata"
)

// Config cho Open Library client
type Config struct {
	BaseURL string        // https://openlibrary.org
	Timeout time.Duration // bound cho single-attempt request
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// Client gọi Open Library books API: GET {base}/isbn/{isbn}.json
type Client struct {
	config     *Config
	httpClient *http.Client
}

func NewClient(config *Config) (metadata.Gateway, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Open Library config: %w", err)
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// FetchByISBN - một request duy nhất, không retry; context propagated
func (c *Client) FetchByISBN(ctx context.Context, isbn string) (*metadata.UpstreamBook, error) {
	url := fmt.Sprintf("%s/isbn/%s.json", c.config.BaseURL, isbn)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain body để connection được reuse
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("lookup returned status %d", resp.StatusCode)
	}

	var upstream metadata.UpstreamBook
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, fmt.Errorf("decode lookup response: %w", err)
	}

	return &upstream, nil
}
