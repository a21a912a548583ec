package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/plantnet/pkg/auth"
	"github.com/shashiranjanraj/plantnet/pkg/middleware"
)

func gated(t *testing.T) (http.Handler, *bool, *string) {
	t.Helper()
	var ran bool
	var email string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		if claims := auth.ClaimsFromCtx(r.Context()); claims != nil {
			email = claims.Email
		}
		w.WriteHeader(http.StatusOK)
	})
	return middleware.Session(next), &ran, &email
}

func TestSessionRejectsMissingCookie(t *testing.T) {
	h, ran, _ := gated(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/order", nil)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if *ran {
		t.Error("handler must not run without a session")
	}
	if !strings.Contains(rec.Body.String(), "unauthorized access") {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestSessionRejectsInvalidToken(t *testing.T) {
	h, ran, _ := gated(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/order", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"})
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if *ran {
		t.Error("handler must not run with an invalid token")
	}
}

func TestSessionAcceptsValidToken(t *testing.T) {
	token, err := auth.GenerateToken("buyer@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	h, ran, email := gated(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/order", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !*ran {
		t.Error("handler should run with a valid session")
	}
	if *email != "buyer@example.com" {
		t.Errorf("expected claims in context, got email %q", *email)
	}
}
