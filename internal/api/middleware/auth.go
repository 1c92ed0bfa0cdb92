// Package middleware carries the cross-cutting HTTP middleware: auth and
// request metrics.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
)

type userIDContextKey struct{}

// HeaderUserID identifies the authenticated professional. The API trusts the
// gateway in front of it to have validated the session.
const HeaderUserID = "X-User-ID"

// Auth rejects requests without a valid X-User-ID header and stores the user
// id in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "cabeçalho X-User-ID é obrigatório")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "cabeçalho X-User-ID inválido")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user id stored by Auth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
