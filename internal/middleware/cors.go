package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSMiddleware restricts cross-origin access to the single configured
// origin, the four CRUD methods, and a content-type header allowlist.
// Content-Range is exposed so list consumers can read item counts.
func CORSMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Range"},
		MaxAge:         300,
	})
}
