package handler

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/maitaibeauty/site/internal/middleware"
	"github.com/maitaibeauty/site/internal/session"
)

// AuthHandler exchanges the shared admin password for session tokens. There
// are no per-user accounts; every admin shares one secret.
type AuthHandler struct {
	registry *session.Registry
	password string
	logger   *slog.Logger
}

func NewAuthHandler(registry *session.Registry, password string, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{registry: registry, password: password, logger: logger}
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	token, err := h.registry.Issue()
	if err != nil {
		h.logger.Error("issue session", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "login failed"})
		return
	}

	h.logger.Info("admin login", "sessions", h.registry.Count())
	writeJSON(w, http.StatusOK, map[string]string{"sessionId": token})
}

// Logout revokes whatever token the request carries. It always succeeds, even
// for tokens that were never issued.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := r.Header.Get(middleware.SessionHeader); token != "" {
		h.registry.Revoke(token)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Check confirms a cached token is still usable. The session guard has
// already validated it by the time this runs.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}
