package http

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods = "GET, PUT, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
)

// withCORS applies the configured origin allow-list to every response and
// short-circuits OPTIONS preflight requests. An entry of "*" allows any
// origin; otherwise the Origin header must match an entry exactly, and
// non-matching origins get no CORS headers at all.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed := h.allowOrigin(origin); allowed != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) allowOrigin(origin string) string {
	for _, allowed := range h.cors.AllowedOrigins {
		allowed = strings.TrimSpace(allowed)
		if allowed == "*" {
			return "*"
		}
		if origin != "" && allowed == origin {
			return origin
		}
	}
	return ""
}
