package auth

import (
	"net/http"

	"github.com/shashiranjanraj/plantnet/config"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// cookieAttrs returns the Secure/SameSite pair for the current environment.
// Production serves a cross-site frontend, so the cookie must be Secure with
// SameSite=None; local development uses Strict without Secure.
func cookieAttrs() (secure bool, sameSite http.SameSite) {
	if config.IsProduction() {
		return true, http.SameSiteNoneMode
	}
	return false, http.SameSiteStrictMode
}

// SetSessionCookie attaches the session token to the response as an
// HTTP-only cookie.
func SetSessionCookie(w http.ResponseWriter, token string) {
	secure, sameSite := cookieAttrs()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
}

// ClearSessionCookie expires the session cookie. The token itself remains
// cryptographically valid until its natural expiry; there is no revocation
// list.
func ClearSessionCookie(w http.ResponseWriter) {
	secure, sameSite := cookieAttrs()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
}
