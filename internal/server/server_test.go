package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maitaibeauty/site/internal/config"
	"github.com/maitaibeauty/site/internal/database"
	"github.com/maitaibeauty/site/internal/middleware"
	"github.com/maitaibeauty/site/internal/model"
)

const testPassword = "maitai2025"

func setupServer(t *testing.T) http.Handler {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := config.Config{
		AdminPassword: testPassword,
		UploadDir:     t.TempDir(),
	}
	return New(db, cfg, slog.Default()).Router()
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set(middleware.SessionHeader, token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := do(t, h, "POST", "/api/admin/login", "", map[string]string{"password": testPassword})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp["sessionId"] == "" {
		t.Fatal("expected a session id")
	}
	return resp["sessionId"]
}

func validService() map[string]any {
	return map[string]any{
		"title":       "Manucure",
		"description": "Soin complet des mains",
		"image":       "/uploads/manucure.jpg",
		"details":     "Limage et pose de vernis.",
		"price":       "3 500 XPF",
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h := setupServer(t)

	rec := do(t, h, "POST", "/api/admin/login", "", map[string]string{"password": "guess"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestSessionLifecycle(t *testing.T) {
	h := setupServer(t)
	token := login(t, h)

	if rec := do(t, h, "GET", "/api/admin/check", token, nil); rec.Code != http.StatusOK {
		t.Fatalf("check status = %d, want %d", rec.Code, http.StatusOK)
	}

	if rec := do(t, h, "POST", "/api/admin/logout", token, nil); rec.Code != http.StatusOK {
		t.Fatalf("logout status = %d, want %d", rec.Code, http.StatusOK)
	}

	// Token no longer usable after logout
	if rec := do(t, h, "GET", "/api/admin/check", token, nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("check after logout = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	// Logout of an already-revoked token still succeeds
	if rec := do(t, h, "POST", "/api/admin/logout", token, nil); rec.Code != http.StatusOK {
		t.Errorf("repeat logout = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAdminRoutesRejectWithoutToken(t *testing.T) {
	h := setupServer(t)

	paths := []struct{ method, path string }{
		{"GET", "/api/admin/check"},
		{"POST", "/api/admin/upload"},
		{"GET", "/api/admin/services/1"},
		{"POST", "/api/admin/services"},
		{"PUT", "/api/admin/services/1"},
		{"DELETE", "/api/admin/services/1"},
		{"PUT", "/api/admin/business-info"},
	}
	for _, p := range paths {
		rec := do(t, h, p.method, p.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want %d", p.method, p.path, rec.Code, http.StatusUnauthorized)
		}
	}

	// No mutation happened
	rec := do(t, h, "GET", "/api/services", "", nil)
	var services []model.Service
	json.NewDecoder(rec.Body).Decode(&services)
	if len(services) != 0 {
		t.Errorf("services = %d, want 0", len(services))
	}
}

func TestServiceCreateValidation(t *testing.T) {
	h := setupServer(t)
	token := login(t, h)

	body := validService()
	delete(body, "title")
	rec := do(t, h, "POST", "/api/admin/services", token, body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServiceLifecycle(t *testing.T) {
	h := setupServer(t)
	token := login(t, h)

	// Create
	rec := do(t, h, "POST", "/api/admin/services", token, validService())
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created model.Service
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == 0 || !created.IsActive {
		t.Fatalf("created = %+v, want generated id and active", created)
	}

	// Publicly listed
	rec = do(t, h, "GET", "/api/services", "", nil)
	var listed []model.Service
	json.NewDecoder(rec.Body).Decode(&listed)
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("public list = %+v, want the created service", listed)
	}

	// Partial update changes only the named field
	rec = do(t, h, "PUT", "/api/admin/services/1", token, map[string]string{"title": "Manucure deluxe"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}
	var updated model.Service
	json.NewDecoder(rec.Body).Decode(&updated)
	if updated.Title != "Manucure deluxe" {
		t.Errorf("title = %q, want updated", updated.Title)
	}
	if updated.Description != created.Description || updated.Image != created.Image {
		t.Error("unrelated fields changed on partial update")
	}

	// Soft delete
	rec = do(t, h, "DELETE", "/api/admin/services/1", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}

	// Gone from the public list
	rec = do(t, h, "GET", "/api/services", "", nil)
	listed = nil
	json.NewDecoder(rec.Body).Decode(&listed)
	if len(listed) != 0 {
		t.Errorf("public list after delete = %+v, want empty", listed)
	}

	// Still visible to admins by id
	rec = do(t, h, "GET", "/api/admin/services/1", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin get status = %d, want %d", rec.Code, http.StatusOK)
	}
	var archived model.Service
	json.NewDecoder(rec.Body).Decode(&archived)
	if archived.IsActive {
		t.Error("expected inactive after soft delete")
	}
}

func TestServiceNotFound(t *testing.T) {
	h := setupServer(t)
	token := login(t, h)

	if rec := do(t, h, "GET", "/api/admin/services/99", token, nil); rec.Code != http.StatusNotFound {
		t.Errorf("get status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if rec := do(t, h, "PUT", "/api/admin/services/99", token, map[string]string{"title": "X"}); rec.Code != http.StatusNotFound {
		t.Errorf("update status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if rec := do(t, h, "DELETE", "/api/admin/services/99", token, nil); rec.Code != http.StatusNotFound {
		t.Errorf("delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestBusinessInfoDefaultsAndUpsert(t *testing.T) {
	h := setupServer(t)

	// Defaults before any row exists
	rec := do(t, h, "GET", "/api/business-info", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var info model.BusinessInfo
	json.NewDecoder(rec.Body).Decode(&info)
	if info.Phone != "40 50 60 70" {
		t.Errorf("default phone = %q, want %q", info.Phone, "40 50 60 70")
	}

	token := login(t, h)
	body := map[string]string{
		"mondayHours": "08:00-16:00", "tuesdayHours": "08:00-16:00",
		"wednesdayHours": "08:00-16:00", "thursdayHours": "08:00-16:00",
		"fridayHours": "08:00-16:00", "saturdayHours": "08:00-12:00",
		"sundayHours": "Fermé", "phone": "40 11 22 33",
		"email": "hello@maitaibeauty.com", "address": "PK18, Punaauia",
	}
	rec = do(t, h, "PUT", "/api/admin/business-info", token, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert status = %d: %s", rec.Code, rec.Body.String())
	}

	// Missing field fails validation
	incomplete := map[string]string{"phone": "40 11 22 33"}
	if rec := do(t, h, "PUT", "/api/admin/business-info", token, incomplete); rec.Code != http.StatusBadRequest {
		t.Errorf("upsert status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	// Public read reflects the saved payload
	rec = do(t, h, "GET", "/api/business-info", "", nil)
	json.NewDecoder(rec.Body).Decode(&info)
	if info.Phone != "40 11 22 33" || info.MondayHours != "08:00-16:00" {
		t.Errorf("business info = %+v, want saved payload", info)
	}
}

func TestHealth(t *testing.T) {
	h := setupServer(t)

	rec := do(t, h, "GET", "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
