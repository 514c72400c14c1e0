package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maitaibeauty/site/internal/session"
)

func TestRequireSessionNoHeader(t *testing.T) {
	registry := session.NewRegistry()

	handler := RequireSession(registry)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/api/admin/check", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireSessionInvalidToken(t *testing.T) {
	registry := session.NewRegistry()

	handler := RequireSession(registry)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/api/admin/check", nil)
	req.Header.Set(SessionHeader, "bogus")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireSessionValidToken(t *testing.T) {
	registry := session.NewRegistry()
	token, err := registry.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	reached := false
	handler := RequireSession(registry)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/admin/check", nil)
	req.Header.Set(SessionHeader, token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !reached {
		t.Fatal("expected handler to run")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireSessionRevokedToken(t *testing.T) {
	registry := session.NewRegistry()
	token, err := registry.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	registry.Revoke(token)

	handler := RequireSession(registry)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/api/admin/check", nil)
	req.Header.Set(SessionHeader, token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
