package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows cross-origin GET and HEAD requests from the given origins.
// "*" allows any origin.
func CORS(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"If-None-Match", "Range"},
		ExposedHeaders: []string{"ETag", RequestIDHeader},
		MaxAge:         86400,
	})
	return c.Handler
}
