package handlers

import (
	"net/http"

	"github.com/blefnk/relivator-docker-frontend/internal/probe"
)

// HealthHandler reports process liveness and backend reachability. Both
// routes always answer 200: an unhealthy backend is a data point, not a
// failure of the health endpoint itself.
type HealthHandler struct {
	prober      *probe.Prober
	shortCommit string
}

func NewHealthHandler(prober *probe.Prober, shortCommit string) *HealthHandler {
	return &HealthHandler{
		prober:      prober,
		shortCommit: shortCommit,
	}
}

// Check handles GET /api/health
func (h *HealthHandler) Check(r *http.Request) (any, error) {
	return map[string]string{
		"frontendHealth": h.shortCommit,
		"backendHealth":  h.prober.Check(r.Context()),
	}, nil
}

// Frontend handles GET /api/health/frontend — the variant that reports only
// the running deployment's commit abbreviation, without touching the backend.
func (h *HealthHandler) Frontend(r *http.Request) (any, error) {
	return map[string]string{
		"health": h.shortCommit,
	}, nil
}
