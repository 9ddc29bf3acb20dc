package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/gamestack/admin/internal/api/handler"
	"github.com/gamestack/admin/internal/api/middleware"
	"github.com/gamestack/admin/internal/services/admin"
	"github.com/gamestack/admin/internal/services/auth"
	"github.com/gamestack/admin/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	AuthService  *auth.Service
	AdminService *admin.Service
	Storage      storage.Storage
	CookieName   string
	SessionTTL   time.Duration
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.CookieName, cfg.SessionTTL)
	usersHandler := handler.NewUsersHandler(cfg.AdminService)
	teamsHandler := handler.NewTeamsHandler(cfg.AdminService)
	gamesHandler := handler.NewGamesHandler(cfg.AdminService)
	statsHandler := handler.NewStatsHandler(cfg.AdminService)

	// Create middleware
	gateMiddleware := middleware.AdminGate(cfg.AuthService, cfg.Storage, cfg.CookieName)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes (no gate: login mints the session, logout only clears
	// the caller's own cookie)
	api.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Admin routes (all behind the gate)
	adminRoutes := api.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(gateMiddleware)
	adminRoutes.HandleFunc("/users", usersHandler.List).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/users/{id}/admin", usersHandler.SetAdmin).Methods(http.MethodPatch)
	adminRoutes.HandleFunc("/users/{id}", usersHandler.Delete).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/teams", teamsHandler.List).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/teams/{id}", teamsHandler.Delete).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/games", gamesHandler.List).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/games/{id}", gamesHandler.SetActive).Methods(http.MethodPatch)
	adminRoutes.HandleFunc("/stats", statsHandler.Get).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
