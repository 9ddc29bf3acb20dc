package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gamestack/admin/internal/api/response"
	"github.com/gamestack/admin/internal/model"
	"github.com/gamestack/admin/internal/services/admin"
)

// TeamsHandler handles team administration endpoints
type TeamsHandler struct {
	adminService *admin.Service
}

// NewTeamsHandler creates a new teams handler
func NewTeamsHandler(adminService *admin.Service) *TeamsHandler {
	return &TeamsHandler{adminService: adminService}
}

// List handles GET /api/admin/teams
func (h *TeamsHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.adminService.ListTeams(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamsFromDetails(details))
}

// Delete handles DELETE /api/admin/teams/{id}
func (h *TeamsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.adminService.DeleteTeam(r.Context(), model.TeamID(id)); err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w)
}
