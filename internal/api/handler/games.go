package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gamestack/admin/internal/api/request"
	"github.com/gamestack/admin/internal/api/response"
	"github.com/gamestack/admin/internal/services/admin"
)

// GamesHandler handles game availability endpoints
type GamesHandler struct {
	adminService *admin.Service
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(adminService *admin.Service) *GamesHandler {
	return &GamesHandler{adminService: adminService}
}

// List handles GET /api/admin/games
func (h *GamesHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.adminService.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GamesFromStatuses(games))
}

// SetActive handles PATCH /api/admin/games/{id}
func (h *GamesHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req request.SetGameActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.IsActive == nil {
		WriteError(w, NewInvalidRequestError("isActive must be a boolean"))
		return
	}

	if err := h.adminService.SetGameActive(r.Context(), id, *req.IsActive); err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w)
}
