// Package probe answers "is the downstream backend reachable and returning
// success?". A probe can never fail from its caller's perspective: every
// transport error collapses into the unhealthy verdict.
package probe

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/blefnk/relivator-docker-frontend/internal/logging"
)

const (
	VerdictHealthy   = "Backend is healthy"
	VerdictUnhealthy = "Backend is unhealthy"

	healthPath = "/backend-health"
)

type Prober struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Prober {
	return &Prober{
		baseURL: baseURL,
		logger:  logger,
		client: &http.Client{
			Timeout: timeout,
			// A health endpoint answering with a redirect is not healthy
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Check probes the configured backend's health endpoint and reduces the
// outcome to a verdict string. Stateless: repeated calls with an unchanged
// backend yield the same verdict.
func (p *Prober) Check(ctx context.Context) string {
	return p.CheckURL(ctx, p.baseURL+healthPath)
}

// CheckURL probes an arbitrary URL the same way Check probes the backend.
func (p *Prober) CheckURL(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		p.logger.Warn("probe request build failed", slog.String("url", url), logging.Err(err))
		return VerdictUnhealthy
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		// DNS failure, connection refused, timeout: all unhealthy, never raised
		p.logger.Warn("probe transport failure", slog.String("url", url), logging.Err(err))
		return VerdictUnhealthy
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return VerdictHealthy
	}
	return VerdictUnhealthy
}
