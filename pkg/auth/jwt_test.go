package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shashiranjanraj/plantnet/config"
	"github.com/shashiranjanraj/plantnet/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("customer@example.com")
	if err != nil {
		t.Fatalf("GenerateToken returned unexpected error: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken rejected a freshly issued token: %v", err)
	}
	if claims.Email != "customer@example.com" {
		t.Errorf("expected email claim to survive the round trip, got %q", claims.Email)
	}
}

func TestTokenExpiryWindow(t *testing.T) {
	token, err := auth.GenerateToken("a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	// 365-day window, allow a minute of slack for the test run.
	want := time.Now().Add(365 * 24 * time.Hour)
	got := claims.ExpiresAt.Time
	if got.Before(want.Add(-time.Minute)) || got.After(want.Add(time.Minute)) {
		t.Errorf("expected expiry ~365d out, got %v", got)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := auth.GenerateToken("a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := auth.ValidateToken(tampered); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := auth.ValidateToken("not-a-token"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	// Hand-roll a token with the same secret but an expiry in the past.
	claims := auth.Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("change-me-in-production"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, err := auth.ValidateToken(expired); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestSetSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	auth.SetSessionCookie(rec, "tok-value")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	c := cookies[0]
	if c.Name != auth.CookieName || c.Value != "tok-value" {
		t.Errorf("unexpected cookie %s=%s", c.Name, c.Value)
	}
	if !c.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	// Default env is local: Strict and not Secure.
	if c.Secure {
		t.Error("local cookie must not be Secure")
	}
}

func TestSetSessionCookieProductionAttributes(t *testing.T) {
	config.Set("APP_ENV", "production")
	defer config.Set("APP_ENV", "local")

	rec := httptest.NewRecorder()
	auth.SetSessionCookie(rec, "tok-value")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	// The frontend is served cross-site in production, so the cookie must
	// ride along on cross-origin requests.
	c := cookies[0]
	if !c.Secure {
		t.Error("production cookie must be Secure")
	}
	if c.SameSite != http.SameSiteNoneMode {
		t.Errorf("expected SameSite=None, got %v", c.SameSite)
	}
	if !c.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
}

func TestClearSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	auth.ClearSessionCookie(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	c := cookies[0]
	if c.Name != auth.CookieName {
		t.Errorf("unexpected cookie name %q", c.Name)
	}
	if c.Value != "" || c.MaxAge >= 0 {
		t.Errorf("expected expired empty cookie, got value=%q maxage=%d", c.Value, c.MaxAge)
	}
}
