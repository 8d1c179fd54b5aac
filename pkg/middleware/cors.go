package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// defaultOrigins are always allowed alongside the configured client origin.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// AllowedOrigins builds the CORS allow-list from the hard-coded defaults
// plus the configured client origin, if any.
func AllowedOrigins(clientOrigin string) []string {
	origins := append([]string{}, defaultOrigins...)
	if clientOrigin != "" {
		origins = append(origins, clientOrigin)
	}
	return origins
}

// NewCORS builds the CORS layer for the given allow-list.
func NewCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
}

// OriginGuard rejects requests whose Origin header is present but not on the
// allow-list. Requests without an Origin header (same-origin, curl) pass.
func OriginGuard(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				if _, ok := allowed[origin]; !ok {
					log.WithField("origin", origin).Warn("Blocked request from disallowed origin")
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusForbidden)
					json.NewEncoder(w).Encode(map[string]string{"error": "origin not allowed by CORS"})
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
