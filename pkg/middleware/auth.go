package middleware

import (
	"net/http"

	"github.com/shashiranjanraj/plantnet/pkg/auth"
	"github.com/shashiranjanraj/plantnet/pkg/logger"
	"github.com/shashiranjanraj/plantnet/pkg/response"
)

// Session gates a route on a valid session cookie. A missing, malformed or
// expired token is rejected with 401; on success the decoded claims are
// attached to the request context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.CookieName)
		if err != nil || cookie.Value == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(cookie.Value)
		if err != nil {
			logger.WithCtx(r.Context()).Debug("session token rejected", "error", err)
			response.Unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	})
}
