package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func handlerReturning(status int, body string) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func do(r *Router, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestExactRoute(t *testing.T) {
	r := New()
	r.GET("/api/v1/datasets", handlerReturning(http.StatusOK, "ok"))

	rec := do(r, http.MethodGet, "/api/v1/datasets")
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body: got %q", rec.Body.String())
	}
}

func TestWildcardMatchesOneSegment(t *testing.T) {
	r := New()
	r.GET("/api/v1/snapshots/*", handlerReturning(http.StatusOK, "snap"))

	if rec := do(r, http.MethodGet, "/api/v1/snapshots/abc-123"); rec.Code != http.StatusOK {
		t.Errorf("one segment: got %d, want 200", rec.Code)
	}
	if rec := do(r, http.MethodGet, "/api/v1/snapshots/a/b"); rec.Code != http.StatusNotFound {
		t.Errorf("two segments: got %d, want 404", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/api/v1/datasets", handlerReturning(http.StatusOK, "ok"))

	if rec := do(r, http.MethodPost, "/api/v1/datasets"); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("got %d, want 405", rec.Code)
	}
}

func TestNotFound(t *testing.T) {
	r := New()

	if rec := do(r, http.MethodGet, "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("got %d, want 404", rec.Code)
	}
}

func TestMountPrefix(t *testing.T) {
	r := New()
	r.Mount("/swagger/", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("docs"))
	}))

	rec := do(r, http.MethodGet, "/swagger/index.html")
	if rec.Code != http.StatusOK || rec.Body.String() != "docs" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestExactBeatsWildcard(t *testing.T) {
	r := New()
	r.GET("/api/v1/snapshots/*", handlerReturning(http.StatusOK, "wild"))
	r.GET("/api/v1/snapshots/latest", handlerReturning(http.StatusOK, "exact"))

	rec := do(r, http.MethodGet, "/api/v1/snapshots/latest")
	if rec.Body.String() != "exact" {
		t.Errorf("got %q, want exact", rec.Body.String())
	}
}
