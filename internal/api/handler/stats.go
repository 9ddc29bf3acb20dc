package handler

import (
	"net/http"

	"github.com/gamestack/admin/internal/api/response"
	"github.com/gamestack/admin/internal/services/admin"
)

// StatsHandler handles the platform stats endpoint
type StatsHandler struct {
	adminService *admin.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(adminService *admin.Service) *StatsHandler {
	return &StatsHandler{adminService: adminService}
}

// Get handles GET /api/admin/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Stats(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatsFromModel(stats))
}
