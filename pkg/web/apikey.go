package web

import (
	"log/slog"
	"net/http"
)

// HeaderAPIKey is the request header carrying the client API key.
const HeaderAPIKey = "x-api-key"

// APIKeyAuth creates a middleware that gates requests on a static API-key
// allow-list. A missing header yields 401, a key outside the allow-list 403.
// The check runs before any request body is read or store access happens.
func APIKeyAuth(logger *slog.Logger, keys []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderAPIKey)
			if key == "" {
				RespondError(w, logger, http.StatusUnauthorized, "API key is required")
				return
			}
			if _, ok := allowed[key]; !ok {
				RespondError(w, logger, http.StatusForbidden, "Invalid API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
