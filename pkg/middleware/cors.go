package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the booking widget's origins to call the API.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Idempotency-Key"},
		AllowCredentials: false,
		MaxAge:           300,
	})
	return c.Handler
}
