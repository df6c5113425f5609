package puzzle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the puzzle service root.
const DefaultBaseURL = "https://www.nytimes.com"

// HTTPConfig configures HTTPSource.
type HTTPConfig struct {
	// BaseURL is the service root; the dated path is appended.
	BaseURL string
	// Timeout bounds each request.
	Timeout time.Duration
	// RequestsPerSecond paces fetches; <= 0 disables pacing.
	RequestsPerSecond float64
	// Client overrides the HTTP client (tests).
	Client *http.Client
}

// DefaultHTTPConfig returns sensible defaults.
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		BaseURL:           DefaultBaseURL,
		Timeout:           10 * time.Second,
		RequestsPerSecond: 2,
	}
}

// HTTPSource fetches dated puzzles over HTTP.
type HTTPSource struct {
	base    string
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPSource builds an HTTPSource from cfg, filling zero fields from defaults.
func NewHTTPSource(cfg HTTPConfig) *HTTPSource {
	def := DefaultHTTPConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	return &HTTPSource{
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Fetch GETs {base}/svc/wordle/v2/YYYY-MM-DD.json.
func (s *HTTPSource) Fetch(ctx context.Context, date time.Time) (Puzzle, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return Puzzle{}, err
	}
	key := DateKey(date)
	url := fmt.Sprintf("%s/svc/wordle/v2/%s.json", s.base, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzle: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzle: fetch %s: %w", key, err)
	}
	defer resp.Body.Close()

	log.Debug().Str("date", key).Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).Msg("puzzle fetched")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Puzzle{}, fmt.Errorf("puzzle: %s: status %d: %w", key, resp.StatusCode, ErrUnavailable)
	}

	var p Puzzle
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Puzzle{}, fmt.Errorf("puzzle: decode %s: %w", key, err)
	}
	p.Solution = strings.ToLower(strings.TrimSpace(p.Solution))
	if p.Solution == "" {
		return Puzzle{}, fmt.Errorf("puzzle: %s: empty solution: %w", key, ErrUnavailable)
	}
	if p.PrintDate == "" {
		p.PrintDate = key
	}
	return p, nil
}
