package middleware

import "net/http"

// MaxBytes caps every request body at n bytes (OOM protection). Decoders
// downstream see a clean error instead of an unbounded read.
func MaxBytes(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
