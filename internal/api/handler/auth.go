package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gamestack/admin/internal/api/request"
	"github.com/gamestack/admin/internal/api/response"
	"github.com/gamestack/admin/internal/services/auth"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	authService *auth.Service
	cookieName  string
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, cookieName string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieName:  cookieName,
		sessionTTL:  sessionTTL,
	}
}

// LoginResponse is the response for a successful login
type LoginResponse struct {
	User         response.User `json:"user"`
	SessionToken string        `json:"sessionToken"`
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.JSON(w, http.StatusOK, LoginResponse{
		User:         response.UserFromModel(user),
		SessionToken: token,
	})
}

// Logout handles POST /api/logout.
// Deliberately unauthenticated: it only ever clears the caller's own
// browser-held cookie, so any caller may invalidate whatever token they
// are presenting.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.OK(w)
}
