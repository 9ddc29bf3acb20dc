package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gamestack/admin/internal/api/apierr"
	"github.com/gamestack/admin/internal/model"
	"github.com/gamestack/admin/internal/services/auth"
	"github.com/gamestack/admin/internal/storage"
)

type contextKey string

const adminContextKey contextKey = "admin"

// AdminGate creates the authorization middleware every admin endpoint sits
// behind: verify the session token, re-read the account, require the admin
// flag. The account is re-resolved from storage on every request, so a
// revoked admin is rejected on the very next call; the only staleness window
// is the store read itself.
func AdminGate(authService *auth.Service, store storage.Storage, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r, cookieName)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			userID, err := authService.VerifySession(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			user, err := store.GetUser(r.Context(), userID)
			if err != nil {
				// An orphaned session is indistinguishable from not being
				// logged in: there is no account left to authorize.
				if errors.Is(err, model.ErrUserNotFound) {
					apierr.WriteError(w, apierr.NewUnauthorizedError())
					return
				}
				apierr.WriteError(w, err)
				return
			}

			if !user.IsAdmin {
				apierr.WriteError(w, apierr.NewForbiddenError())
				return
			}

			ctx := context.WithValue(r.Context(), adminContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractToken extracts the session token from the request.
// The cookie is the primary transport; a Bearer header is accepted for
// non-browser clients like adminctl.
func ExtractToken(r *http.Request, cookieName string) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := r.Cookie(cookieName)
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetAdmin returns the authorized admin from the request context
func GetAdmin(ctx context.Context) *model.User {
	user, _ := ctx.Value(adminContextKey).(*model.User)
	return user
}

// MustGetAdmin returns the authorized admin or panics
func MustGetAdmin(ctx context.Context) *model.User {
	user := GetAdmin(ctx)
	if user == nil {
		panic("no admin in context - gate middleware not applied?")
	}
	return user
}
