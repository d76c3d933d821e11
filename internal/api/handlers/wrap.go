package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/blefnk/relivator-docker-frontend/internal/api/response"
	"github.com/blefnk/relivator-docker-frontend/internal/logging"
)

// HandlerFunc is the inner handler shape every API route implements: take a
// request, return a JSON-serializable payload or an error. Wrap turns it
// into an http.HandlerFunc.
type HandlerFunc func(r *http.Request) (any, error)

// StatusPayload carries a non-200 success status alongside its payload.
// Return WithStatus(http.StatusAccepted, data) from a handler to surface it.
type StatusPayload struct {
	Status int
	Data   any
}

func WithStatus(status int, data any) StatusPayload {
	return StatusPayload{Status: status, Data: data}
}

// Wrap decorates an inner handler with per-request logging and failure
// translation. Every invocation logs a start line and, unless the framework
// abort signal propagates, a completion line with method, path, final status
// and elapsed milliseconds.
//
// Failure translation is a strict priority chain, first match wins:
//
//  1. http.ErrAbortHandler (as a wrapped error or a recovered panic) is
//     re-panicked unchanged. It is net/http's own flow-control signal and
//     the server runtime must see it, not a JSON body.
//  2. validator.ValidationErrors: 400 with the issue list, original order.
//  3. *response.APIError: the error's own status and message.
//  4. Anything else: logged at error severity, then a flat 500
//     "Internal server error". The original detail never reaches the client.
//
// The abort check must run before the errors.As checks: an error value can
// satisfy several predicates at once, and the framework signal wins.
func Wrap(logger *slog.Logger, h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log := logger.With(
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		log.Info("incoming request")

		data, err := invoke(h, r)

		if err != nil && errors.Is(err, http.ErrAbortHandler) {
			// Not ours: hand control straight back to the server runtime.
			// The completion line is deliberately skipped.
			panic(http.ErrAbortHandler)
		}

		status := http.StatusOK
		switch {
		case err == nil:
			payload := data
			if p, ok := data.(StatusPayload); ok {
				status = p.Status
				payload = p.Data
			}
			render.Status(r, status)
			render.JSON(w, r, response.OK(payload))

		default:
			var verrs validator.ValidationErrors
			var apiErr *response.APIError
			switch {
			case errors.As(err, &verrs):
				status = http.StatusBadRequest
				render.Status(r, status)
				render.JSON(w, r, response.ValidationError(verrs))
			case errors.As(err, &apiErr):
				status = apiErr.StatusCode()
				render.Status(r, status)
				render.JSON(w, r, response.Fail(apiErr.Message))
			default:
				status = http.StatusInternalServerError
				log.Error("unhandled handler failure", logging.Err(err))
				render.Status(r, status)
				render.JSON(w, r, response.Fail("Internal server error"))
			}
		}

		log.Info("completed request",
			slog.Int("status", status),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	}
}

// invoke runs the inner handler, converting panics into errors so they flow
// through the normal classification chain. The one exception is
// http.ErrAbortHandler, which is re-panicked untouched.
func invoke(h HandlerFunc, r *http.Request) (data any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok && errors.Is(e, http.ErrAbortHandler) {
				panic(http.ErrAbortHandler)
			}
			err = fmt.Errorf("handler panic: %v", rec)
		}
	}()
	return h(r)
}
