package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/maitaibeauty/site/internal/model"
	"github.com/maitaibeauty/site/internal/store"
	"github.com/maitaibeauty/site/internal/websocket"
)

type BusinessInfoHandler struct {
	store  *store.BusinessInfoStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewBusinessInfoHandler(s *store.BusinessInfoStore, hub *websocket.Hub, logger *slog.Logger) *BusinessInfoHandler {
	return &BusinessInfoHandler{store: s, hub: hub, logger: logger}
}

// GetPublic serves the hours/contact record. Before any admin has saved one,
// it serves the defaults instead of erroring.
func (h *BusinessInfoHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	info, err := h.store.Get()
	if err != nil {
		h.logger.Error("get business info", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch business info"})
		return
	}
	if info == nil {
		defaults := model.DefaultBusinessInfo()
		info = &defaults
	}
	writeJSON(w, http.StatusOK, info)
}

type businessInfoRequest struct {
	MondayHours    string `json:"mondayHours"`
	TuesdayHours   string `json:"tuesdayHours"`
	WednesdayHours string `json:"wednesdayHours"`
	ThursdayHours  string `json:"thursdayHours"`
	FridayHours    string `json:"fridayHours"`
	SaturdayHours  string `json:"saturdayHours"`
	SundayHours    string `json:"sundayHours"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
}

func (r *businessInfoRequest) validate() string {
	fields := map[string]string{
		"mondayHours":    r.MondayHours,
		"tuesdayHours":   r.TuesdayHours,
		"wednesdayHours": r.WednesdayHours,
		"thursdayHours":  r.ThursdayHours,
		"fridayHours":    r.FridayHours,
		"saturdayHours":  r.SaturdayHours,
		"sundayHours":    r.SundayHours,
		"phone":          r.Phone,
		"email":          r.Email,
		"address":        r.Address,
	}
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			return name + " is required"
		}
	}
	return ""
}

// UpdateAdmin upserts the single business-info record: the first save creates
// it, later saves rewrite it in place.
func (h *BusinessInfoHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	var req businessInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	info, err := h.store.Upsert(store.BusinessInfoFields{
		MondayHours:    req.MondayHours,
		TuesdayHours:   req.TuesdayHours,
		WednesdayHours: req.WednesdayHours,
		ThursdayHours:  req.ThursdayHours,
		FridayHours:    req.FridayHours,
		SaturdayHours:  req.SaturdayHours,
		SundayHours:    req.SundayHours,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
	})
	if err != nil {
		h.logger.Error("upsert business info", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update business info"})
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(websocket.NewMessage("business_info", "updated", info.ID))
	}
	writeJSON(w, http.StatusOK, info)
}
