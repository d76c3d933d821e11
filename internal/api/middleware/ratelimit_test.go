package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blefnk/relivator-docker-frontend/internal/api/middleware"
)

func TestRateLimiter_DrainedBucketRejects(t *testing.T) {
	rl := middleware.NewRateLimiter(1, 2)

	handler := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("X-Real-IP", ip)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	// Burst of 2 passes, third immediate request is cut off
	assert.Equal(t, http.StatusOK, do("10.1.1.1"))
	assert.Equal(t, http.StatusOK, do("10.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.1.1.1"))

	// A different client has its own bucket
	assert.Equal(t, http.StatusOK, do("10.2.2.2"))
}

func TestMaxBytes_CapsBody(t *testing.T) {
	handler := middleware.MaxBytes(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := io.ReadAll(r.Body)
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/probe", strings.NewReader("tiny"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	big := httptest.NewRequest(http.MethodPost, "/api/probe", strings.NewReader("this body is far beyond eight bytes"))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}
