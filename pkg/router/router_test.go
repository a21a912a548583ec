package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/plantnet/pkg/router"
)

func ok(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	}
}

func TestMethodRouting(t *testing.T) {
	r := router.New()
	r.Get("/plants", "plants.index", ok("index"))
	r.Patch("/plant/quantity/{id}", "plants.quantity", ok("patched"))
	r.Delete("/order/{id}", "orders.destroy", ok("deleted"))

	cases := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/plants", "index"},
		{http.MethodPatch, "/plant/quantity/abc", "patched"},
		{http.MethodDelete, "/order/abc", "deleted"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, nil)
		r.Handler().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s %s: expected 200, got %d", tc.method, tc.path, rec.Code)
		}
		if rec.Body.String() != tc.want {
			t.Errorf("%s %s: expected body %q, got %q", tc.method, tc.path, tc.want, rec.Body.String())
		}
	}
}

func TestWrongMethodRejected(t *testing.T) {
	r := router.New()
	r.Get("/plants", "plants.index", ok("index"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plants", nil)
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var gateRan bool
	gate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gateRan = true
			next.ServeHTTP(w, r)
		})
	}

	r := router.New()
	g := r.Group("", gate)
	g.Post("/order", "orders.store", ok("stored"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/order", nil)
	r.Handler().ServeHTTP(rec, req)

	if !gateRan {
		t.Error("expected group middleware to run")
	}
	if rec.Body.String() != "stored" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestNamedRoutesAndURL(t *testing.T) {
	r := router.New()
	r.Get("/plant/{id}", "plants.show", ok(""))

	path, found := r.Path("plants.show")
	if !found || path != "/plant/{id}" {
		t.Errorf("Path lookup failed: %q %v", path, found)
	}

	url, err := r.URL("plants.show", map[string]string{"id": "p1"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/plant/p1" {
		t.Errorf("expected /plant/p1, got %q", url)
	}

	if _, err := r.URL("plants.show", nil); err == nil {
		t.Error("expected error for missing parameters")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected error for unknown route")
	}
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	r.Get("/plants", "plants.index", ok(""))
	r.Post("/order", "orders.store", ok(""))

	infos := r.Routes()
	if len(infos) != 2 {
		t.Fatalf("expected 2 named routes, got %d", len(infos))
	}

	seen := map[string]string{}
	for _, ri := range infos {
		seen[ri.Name] = ri.Method + " " + ri.Path
	}
	if seen["plants.index"] != "GET /plants" {
		t.Errorf("unexpected route info %q", seen["plants.index"])
	}
	if seen["orders.store"] != "POST /order" {
		t.Errorf("unexpected route info %q", seen["orders.store"])
	}
}
