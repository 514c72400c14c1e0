package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/maitaibeauty/site/internal/model"
	"github.com/maitaibeauty/site/internal/store"
	"github.com/maitaibeauty/site/internal/websocket"
)

type ServiceHandler struct {
	store  *store.ServiceStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewServiceHandler(s *store.ServiceStore, hub *websocket.Hub, logger *slog.Logger) *ServiceHandler {
	return &ServiceHandler{store: s, hub: hub, logger: logger}
}

func (h *ServiceHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

type createServiceRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Details     string  `json:"details"`
	Price       *string `json:"price"`
	IsActive    *bool   `json:"isActive"`
}

// ListPublic returns active services only. Soft-deleted records never appear
// here.
func (h *ServiceHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	services, err := h.store.ListActive()
	if err != nil {
		h.logger.Error("list services", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch services"})
		return
	}
	if services == nil {
		services = []model.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

// GetAdmin fetches one service by id, including soft-deleted ones.
func (h *ServiceHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	svc, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get service", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch service"})
		return
	}
	if svc == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "service not found"})
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Image = strings.TrimSpace(req.Image)
	req.Details = strings.TrimSpace(req.Details)
	if req.Title == "" || req.Description == "" || req.Image == "" || req.Details == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title, description, image and details are required"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	svc, err := h.store.Create(req.Title, req.Description, req.Image, req.Details, req.Price, isActive)
	if err != nil {
		h.logger.Error("create service", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create service"})
		return
	}

	h.broadcast(websocket.NewMessage("service", "created", svc.ID))
	writeJSON(w, http.StatusCreated, svc)
}

type updateServiceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Details     *string `json:"details"`
	Price       *string `json:"price"`
}

// Update applies a partial update: absent fields keep their prior values.
// There is no way to flip isActive back on, so soft deletes stick.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req updateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	for field, v := range map[string]*string{
		"title":       req.Title,
		"description": req.Description,
		"image":       req.Image,
		"details":     req.Details,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": field + " must not be empty"})
			return
		}
	}

	svc, err := h.store.Update(id, store.ServicePatch{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Details:     req.Details,
		Price:       req.Price,
	})
	if err != nil {
		h.logger.Error("update service", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update service"})
		return
	}
	if svc == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "service not found"})
		return
	}

	h.broadcast(websocket.NewMessage("service", "updated", id))
	writeJSON(w, http.StatusOK, svc)
}

// Delete soft-deletes: the row stays but drops out of the public list.
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	ok, err := h.store.SoftDelete(id)
	if err != nil {
		h.logger.Error("delete service", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete service"})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "service not found"})
		return
	}

	h.broadcast(websocket.NewMessage("service", "deleted", id))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
