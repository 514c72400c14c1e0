package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/maitaibeauty/site/internal/config"
	"github.com/maitaibeauty/site/internal/handler"
	"github.com/maitaibeauty/site/internal/middleware"
	"github.com/maitaibeauty/site/internal/session"
	"github.com/maitaibeauty/site/internal/store"
	ws "github.com/maitaibeauty/site/internal/websocket"
)

type Server struct {
	db            *sql.DB
	registry      *session.Registry
	hub           *ws.Hub
	authH         *handler.AuthHandler
	serviceH      *handler.ServiceHandler
	businessInfoH *handler.BusinessInfoHandler
	uploadH       *handler.UploadHandler
	rateLimiter   *middleware.RateLimiter
	uploadDir     string
	logger        *slog.Logger
}

func New(db *sql.DB, cfg config.Config, logger *slog.Logger) *Server {
	registry := session.NewRegistry()
	hub := ws.NewHub(logger.With("component", "websocket"))

	serviceStore := store.NewServiceStore(db)
	businessInfoStore := store.NewBusinessInfoStore(db)

	return &Server{
		db:            db,
		registry:      registry,
		hub:           hub,
		authH:         handler.NewAuthHandler(registry, cfg.AdminPassword, logger.With("component", "auth")),
		serviceH:      handler.NewServiceHandler(serviceStore, hub, logger.With("component", "service")),
		businessInfoH: handler.NewBusinessInfoHandler(businessInfoStore, hub, logger.With("component", "business_info")),
		uploadH:       handler.NewUploadHandler(cfg.UploadDir, logger.With("component", "upload")),
		rateLimiter:   middleware.NewRateLimiter(),
		uploadDir:     cfg.UploadDir,
		logger:        logger,
	}
}

// Registry exposes the session registry, mainly for tests.
func (s *Server) Registry() *session.Registry {
	return s.registry
}

// RateLimiter returns the login rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/admin/login", s.rateLimitedHandler(s.authH.Login))
	mux.HandleFunc("POST /api/admin/logout", s.authH.Logout)
	mux.HandleFunc("GET /api/services", s.serviceH.ListPublic)
	mux.HandleFunc("GET /api/business-info", s.businessInfoH.GetPublic)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadDir))))
	mux.HandleFunc("GET /ws", ws.Handle(s.hub, s.logger.With("component", "websocket")))
	mux.HandleFunc("GET /health", s.healthHandler)

	// Admin routes behind the session guard
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("GET /api/admin/check", s.authH.Check)
	adminMux.HandleFunc("POST /api/admin/upload", s.uploadH.Upload)
	adminMux.HandleFunc("GET /api/admin/services/{id}", s.serviceH.GetAdmin)
	adminMux.HandleFunc("POST /api/admin/services", s.serviceH.Create)
	adminMux.HandleFunc("PUT /api/admin/services/{id}", s.serviceH.Update)
	adminMux.HandleFunc("DELETE /api/admin/services/{id}", s.serviceH.Delete)
	adminMux.HandleFunc("PUT /api/admin/business-info", s.businessInfoH.UpdateAdmin)

	guard := middleware.RequireSession(s.registry)
	mux.Handle("/api/admin/", guard(adminMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	rl := middleware.RateLimit(s.rateLimiter, middleware.RealIP, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}
