package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gamestack/admin/internal/api/request"
	"github.com/gamestack/admin/internal/api/response"
	"github.com/gamestack/admin/internal/model"
	"github.com/gamestack/admin/internal/services/admin"
)

// UsersHandler handles user administration endpoints
type UsersHandler struct {
	adminService *admin.Service
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(adminService *admin.Service) *UsersHandler {
	return &UsersHandler{adminService: adminService}
}

// List handles GET /api/admin/users
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UsersFromModels(users))
}

// SetAdmin handles PATCH /api/admin/users/{id}/admin
func (h *UsersHandler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req request.SetAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.IsAdmin == nil {
		WriteError(w, NewInvalidRequestError("isAdmin must be a boolean"))
		return
	}

	if err := h.adminService.SetAdminFlag(r.Context(), model.UserID(id), *req.IsAdmin); err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w)
}

// Delete handles DELETE /api/admin/users/{id}
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.adminService.DeleteUser(r.Context(), model.UserID(id)); err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w)
}
