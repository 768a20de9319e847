package chirouter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/jackielii/pageroutes"
)

func TestChiRouter(t *testing.T) {
	r := NewChiRouter(chi.NewRouter())
	{
		// Test HandleMethod
		r.HandleMethod(http.MethodGet, "/handle", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ChiRouter HandleMethod"))
		}))
		req := httptest.NewRequest(http.MethodGet, "/handle", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if rec.Body.String() != "ChiRouter HandleMethod" {
			t.Errorf("expected body %q, got %q", "ChiRouter HandleMethod", rec.Body.String())
		}
	}
	{
		// ALL registers every method
		r.HandleMethod(pageroutes.MethodAll, "/any", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(r.Method))
		}))
		req := httptest.NewRequest(http.MethodPut, "/any", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Body.String() != http.MethodPut {
			t.Errorf("expected body %q, got %q", http.MethodPut, rec.Body.String())
		}
	}
	{
		// empty method is the same as ALL
		r.HandleMethod("", "/empty", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(r.Method))
		}))
		req := httptest.NewRequest(http.MethodPatch, "/empty", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Body.String() != http.MethodPatch {
			t.Errorf("expected body %q, got %q", http.MethodPatch, rec.Body.String())
		}
	}
}

func TestMountOnChi_rejectsWildcard(t *testing.T) {
	table := pageroutes.Build(page("home"), []pageroutes.Module{
		{Key: "./pages/{id}.html", Component: page("wild")},
	})
	r := NewChiRouter(chi.NewRouter())
	err := pageroutes.NewPages().Mount(r, table)
	if !errors.Is(err, pageroutes.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func page(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestMountOnChi(t *testing.T) {
	table, err := pageroutes.New(page("home"), []pageroutes.Module{
		{Key: "./pages/About.html", Component: page("about")},
	})
	if err != nil {
		t.Fatal(err)
	}
	r := NewChiRouter(chi.NewRouter())
	if err := pageroutes.NewPages().Mount(r, table); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/", http.StatusOK, "home"},
		{"/About", http.StatusOK, "about"},
		{"/nope", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != tt.wantCode {
			t.Errorf("%s: expected status %d, got %d", tt.path, tt.wantCode, rec.Code)
		}
		if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
			t.Errorf("%s: expected body %q, got %q", tt.path, tt.wantBody, rec.Body.String())
		}
	}
}
