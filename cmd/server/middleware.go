package main

import (
	"net/http"
	"slices"
	"strings"

	"github.com/printhaus/printshop/internal/auth"
)

// protectedPrefixes lists route subtrees that require a valid bearer
// token. The auth group stays open for registration and login; the
// service catalog and mockup pipeline are reachable by the storefront
// without a session.
var protectedPrefixes = []string{
	"/api/users",
	"/api/orders",
	"/api/carts",
	"/api/albums",
}

func (app *Application) requireAuth(next http.Handler) http.Handler {
	protected := auth.Middleware(app.auth, app.logger)(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, prefix := range protectedPrefixes {
			if strings.HasPrefix(r.URL.Path, prefix) {
				protected.ServeHTTP(w, r)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (app *Application) enableCORS(next http.Handler) http.Handler {
	cors := app.config.CORS
	if !cors.Enabled {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(cors.Origins) > 0 {
			origin := r.Header.Get("Origin")
			if slices.Contains(cors.Origins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}
		}

		if len(cors.AllowedMethods) > 0 {
			w.Header().Set("Access-Control-Allow-Methods", strings.Join(cors.AllowedMethods, ", "))
		}

		if len(cors.AllowedHeaders) > 0 {
			w.Header().Set("Access-Control-Allow-Headers", strings.Join(cors.AllowedHeaders, ", "))
		}

		if cors.AllowCredentials {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
