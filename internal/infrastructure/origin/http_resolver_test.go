package origin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestResolve_PrefersHint(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, _ = w.Write([]byte(`{"ip":"203.0.113.9"}`))
	}))
	defer srv.Close()

	r := NewHTTPResolver(srv.URL, srv.Client())
	cases := map[string]string{
		"198.51.100.7":            "198.51.100.7",
		"198.51.100.7:52311":      "198.51.100.7",
		" 198.51.100.8, 10.0.0.1": "198.51.100.8",
		"[2001:db8::1]:443":       "2001:db8::1",
	}
	for hint, want := range cases {
		got, err := r.Resolve(context.Background(), hint)
		if err != nil || got != want {
			t.Fatalf("Resolve(%q) = %q, %v; want %q", hint, got, err, want)
		}
	}
	if called {
		t.Fatal("lookup service should not be called when the hint is usable")
	}
}

func TestResolve_FallsBackToLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ip":"203.0.113.9"}`))
	}))
	defer srv.Close()

	r := NewHTTPResolver(srv.URL, srv.Client())
	for _, hint := range []string{"", "127.0.0.1", "not-an-ip"} {
		got, err := r.Resolve(context.Background(), hint)
		if err != nil || got != "203.0.113.9" {
			t.Fatalf("Resolve(%q) = %q, %v", hint, got, err)
		}
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()
		if _, err := NewHTTPResolver(srv.URL, srv.Client()).Resolve(context.Background(), ""); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("empty ip", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ip":""}`))
		}))
		defer srv.Close()
		if _, err := NewHTTPResolver(srv.URL, srv.Client()).Resolve(context.Background(), ""); !errors.Is(err, ErrEmptyOrigin) {
			t.Fatalf("expected ErrEmptyOrigin, got %v", err)
		}
	})

	t.Run("no url", func(t *testing.T) {
		if _, err := NewHTTPResolver("", nil).Resolve(context.Background(), ""); !errors.Is(err, ErrEmptyOrigin) {
			t.Fatalf("expected ErrEmptyOrigin, got %v", err)
		}
	})

	t.Run("deadline", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		if _, err := NewHTTPResolver(srv.URL, srv.Client()).Resolve(ctx, ""); err == nil {
			t.Fatal("expected deadline error")
		}
	})
}
