package app

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"forkful/internal/api"
	"forkful/internal/domain"
	"forkful/internal/store"
)

// Wire bundles the session store and API client for the CLI.
type Wire struct {
	Sessions domain.SessionStore
	API      *api.Client
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	sessions, err := store.NewSessionStore(cfg.Home)
	if err != nil {
		return nil, err
	}

	// The cookie jar carries the session; the refresh endpoint rotates it.
	httpClient := &http.Client{
		Jar:     sessions,
		Timeout: cfg.Timeout,
	}

	opts := []api.Option{
		api.WithHTTPClient(httpClient),
		api.WithLogger(slog.Default()),
	}
	if cfg.RPS > 0 {
		opts = append(opts, api.WithRateLimit(rate.NewLimiter(rate.Limit(cfg.RPS), 1)))
	}

	return &Wire{
		Sessions: sessions,
		API:      api.New(cfg.BaseURL, opts...),
		HTTP:     httpClient,
	}, nil
}
