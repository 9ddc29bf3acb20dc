package storage

import (
	"context"

	"github.com/gamestack/admin/internal/model"
)

// Storage defines the interface for data persistence.
// Implementations guarantee single-document atomicity only; concurrent
// writes to the same entity resolve last-write-wins.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	// GetUsersByIDs resolves a batch of IDs in one lookup.
	// IDs that no longer resolve are silently dropped from the result.
	GetUsersByIDs(ctx context.Context, ids []model.UserID) ([]*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	// SetUserAdmin flips the admin flag, returning model.ErrUserNotFound
	// if no user matches.
	SetUserAdmin(ctx context.Context, id model.UserID, isAdmin bool) error
	// DeleteUser removes the user, returning model.ErrUserNotFound if no
	// user matches. Team member lists are not touched.
	DeleteUser(ctx context.Context, id model.UserID) error
	CountUsers(ctx context.Context) (int64, error)

	// Team operations
	SaveTeam(ctx context.Context, team *model.Team) error
	GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error)
	ListTeams(ctx context.Context) ([]*model.Team, error)
	// DeleteTeam removes the team, returning model.ErrTeamNotFound if no
	// team matches. Member accounts are not touched.
	DeleteTeam(ctx context.Context, id model.TeamID) error
	CountTeams(ctx context.Context) (int64, error)

	// Game setting operations
	// SaveGameSetting upserts by GameID; unknown game IDs are accepted.
	SaveGameSetting(ctx context.Context, setting *model.GameSetting) error
	GetGameSetting(ctx context.Context, gameID string) (*model.GameSetting, error)
	ListGameSettings(ctx context.Context) ([]*model.GameSetting, error)
}
