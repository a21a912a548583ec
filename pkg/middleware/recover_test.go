package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/plantnet/pkg/middleware"
	"github.com/shashiranjanraj/plantnet/pkg/reqid"
)

func TestRecoveryConvertsPanicToServerError(t *testing.T) {
	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("catalog exploded")
	})

	rec := httptest.NewRecorder()
	middleware.Recovery(boom).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plants", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Internal Server Error") {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

// The global stack wires Recovery outside reqid and Logger. A panic below
// both must still come back as a clean 500, and the request ID must already
// be in the context by the time the handler runs.
func TestRecoveryWrapsRequestIDAndLogger(t *testing.T) {
	var seenID string
	boom := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seenID = reqid.FromCtx(r.Context())
		panic("downstream failure")
	})

	h := middleware.Recovery(reqid.Middleware()(middleware.Logger(boom)))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/order", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if seenID == "" {
		t.Error("request ID missing from context inside the handler")
	}
	if rec.Header().Get(reqid.Header) == "" {
		t.Error("response missing the request ID header")
	}
}
