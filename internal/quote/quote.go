// Package quote fetches the daily inspirational quote.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/areuok/areuok/internal/config"
	"github.com/areuok/areuok/internal/models"
)

// hitokotoResponse is the wire shape of the hitokoto API.
type hitokotoResponse struct {
	Hitokoto string `json:"hitokoto"`
	From     string `json:"from"`
	FromWho  string `json:"from_who"`
}

// Fetcher retrieves quotes from the configured endpoint.
type Fetcher struct {
	url  string
	http *http.Client
}

// New creates a fetcher from configuration.
func New(cfg config.QuoteConfig) *Fetcher {
	return &Fetcher{
		url:  cfg.URL,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Fetch retrieves one quote. Callers treating the quote as decoration
// should fall back to Fallback() on error rather than failing.
func (f *Fetcher) Fetch(ctx context.Context) (*models.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build quote request: %w", err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quote: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote API returned %d", resp.StatusCode)
	}

	var body hitokotoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode quote: %w", err)
	}

	author := body.FromWho
	if author == "" {
		author = body.From
	}

	return &models.Quote{Text: body.Hitokoto, Author: author}, nil
}

// Fallback returns the quote used when the API is unreachable.
func Fallback() *models.Quote {
	return &models.Quote{
		Text:   "Today's check-in is done. Keep the streak alive!",
		Author: "areuok",
	}
}
