// Package middleware holds the cross-cutting HTTP middleware: request
// throttling and CORS for the browser frontend.
package middleware

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/runventure/marathon-finder/internal/http/response"
)

// RateLimit rejects requests above rps with a burst allowance.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.WriteHeader(http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORS allows the frontend origins to call the API from the browser.
func CORS(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	return c.Handler
}
