package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/blefnk/relivator-docker-frontend/internal/api/response"
	"github.com/blefnk/relivator-docker-frontend/internal/probe"
)

// Use a single instance of Validate, it caches struct info
var validate = validator.New()

type ProbeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ProbeHandler exposes the prober as an on-demand endpoint, so an operator
// can check an arbitrary dependency without shelling into the container.
type ProbeHandler struct {
	prober *probe.Prober
}

func NewProbeHandler(prober *probe.Prober) *ProbeHandler {
	return &ProbeHandler{prober: prober}
}

// Probe handles POST /api/probe
func (h *ProbeHandler) Probe(r *http.Request) (any, error) {
	var req ProbeRequest

	err := render.DecodeJSON(r.Body, &req)
	if errors.Is(err, io.EOF) {
		return nil, response.E(http.StatusBadRequest, "empty request body")
	}
	if err != nil {
		return nil, response.E(http.StatusBadRequest, "failed to decode request")
	}

	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	return map[string]string{
		"url":     req.URL,
		"verdict": h.prober.CheckURL(r.Context(), req.URL),
	}, nil
}
