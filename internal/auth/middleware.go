package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/printhaus/printshop/internal/users"
	"github.com/printhaus/printshop/pkg/handlers"
)

type contextKey string

const userKey contextKey = "auth.user"

// UserFromContext returns the authenticated user attached by Middleware,
// or nil for unauthenticated requests.
func UserFromContext(ctx context.Context) *users.User {
	u, _ := ctx.Value(userKey).(*users.User)
	return u
}

// Middleware rejects requests without a valid bearer token and attaches
// the authenticated user to the request context.
func Middleware(sys System, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondError(w, logger, http.StatusUnauthorized, ErrInvalidToken)
				return
			}

			u, err := sys.Verify(r.Context(), token)
			if err != nil {
				handlers.RespondError(w, logger, MapHTTPStatus(err), err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
