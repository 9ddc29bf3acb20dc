package admin

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gamestack/admin/internal/catalog"
	"github.com/gamestack/admin/internal/dependencies/clock"
	"github.com/gamestack/admin/internal/model"
	"github.com/gamestack/admin/internal/storage"
)

// unknownLeader is reported when a team's leader reference no longer
// resolves to a user
const unknownLeader = "Unknown"

// Service implements the admin operations. Every method assumes the caller
// has already passed the admin gate; no authorization happens here.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new admin service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// User operations

// ListUsers returns all user records. Projection to the safe field subset
// happens in the response layer.
func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.storage.ListUsers(ctx)
}

// SetAdminFlag sets a user's admin flag. There is deliberately no
// self-protection: an admin may revoke their own privilege, and the next
// gated request they make will fail authorization.
func (s *Service) SetAdminFlag(ctx context.Context, id model.UserID, isAdmin bool) error {
	if err := s.storage.SetUserAdmin(ctx, id, isAdmin); err != nil {
		return err
	}
	s.logger.Info("admin flag updated",
		slog.String("user_id", string(id)),
		slog.Bool("is_admin", isAdmin),
	)
	return nil
}

// DeleteUser removes a user account. Team member lists referencing the
// user are left alone; listTeams drops the dangling references at read time.
func (s *Service) DeleteUser(ctx context.Context, id model.UserID) error {
	if err := s.storage.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", slog.String("user_id", string(id)))
	return nil
}

// Team operations

// TeamMember is a resolved member reference
type TeamMember struct {
	UserID   model.UserID
	Username string
}

// TeamDetail is the flattened admin view of a team with resolved names
type TeamDetail struct {
	Team       *model.Team
	LeaderName string
	Members    []TeamMember
}

// ListTeams returns all teams with member and leader references resolved.
// Members are resolved with one batched lookup per team; IDs that no longer
// resolve are dropped. A dangling leader is reported as "Unknown".
// Ordering is store-default and not stable.
func (s *Service) ListTeams(ctx context.Context) ([]TeamDetail, error) {
	teams, err := s.storage.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]TeamDetail, 0, len(teams))
	for _, team := range teams {
		members, err := s.storage.GetUsersByIDs(ctx, team.MemberIDs)
		if err != nil {
			return nil, err
		}

		resolved := make([]TeamMember, 0, len(members))
		for _, m := range members {
			resolved = append(resolved, TeamMember{UserID: m.ID, Username: m.Username})
		}

		leaderName := unknownLeader
		leader, err := s.storage.GetUser(ctx, team.LeaderID)
		switch {
		case err == nil:
			leaderName = leader.Username
		case errors.Is(err, model.ErrUserNotFound):
			// Dangling leader reference, tolerated
		default:
			return nil, err
		}

		details = append(details, TeamDetail{
			Team:       team,
			LeaderName: leaderName,
			Members:    resolved,
		})
	}

	return details, nil
}

// DeleteTeam removes a team. Member accounts are untouched.
func (s *Service) DeleteTeam(ctx context.Context, id model.TeamID) error {
	if err := s.storage.DeleteTeam(ctx, id); err != nil {
		return err
	}
	s.logger.Info("team deleted", slog.String("team_id", string(id)))
	return nil
}

// Game operations

// GameStatus is a catalog entry merged with its persisted availability
type GameStatus struct {
	catalog.Game
	IsActive bool
	// UsersPlaying is always zero; live presence is not tracked
	UsersPlaying int
}

// ListGames merges the compiled-in catalog with persisted active-flag
// overrides. Games without a stored override default to active.
func (s *Service) ListGames(ctx context.Context) ([]GameStatus, error) {
	settings, err := s.storage.ListGameSettings(ctx)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]bool, len(settings))
	for _, setting := range settings {
		overrides[setting.GameID] = setting.IsActive
	}

	games := catalog.Games()
	statuses := make([]GameStatus, 0, len(games))
	for _, g := range games {
		active := true
		if v, ok := overrides[g.ID]; ok {
			active = v
		}
		statuses = append(statuses, GameStatus{Game: g, IsActive: active})
	}

	return statuses, nil
}

// SetGameActive upserts the availability override for a game. IDs outside
// the catalog are accepted and stored; they simply never surface in
// ListGames until the catalog grows.
func (s *Service) SetGameActive(ctx context.Context, gameID string, isActive bool) error {
	setting := &model.GameSetting{
		GameID:    gameID,
		IsActive:  isActive,
		UpdatedAt: s.clock.Now(),
	}
	if err := s.storage.SaveGameSetting(ctx, setting); err != nil {
		return err
	}
	s.logger.Info("game availability updated",
		slog.String("game_id", gameID),
		slog.Bool("is_active", isActive),
	)
	return nil
}

// Stats

// Stats holds the platform totals shown on the admin dashboard
type Stats struct {
	Users int64
	Teams int64
	Games int
}

// Stats counts users and teams from the store. The game count is the
// catalog size, a compile-time constant.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	users, err := s.storage.CountUsers(ctx)
	if err != nil {
		return Stats{}, err
	}

	teams, err := s.storage.CountTeams(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Users: users,
		Teams: teams,
		Games: catalog.Size(),
	}, nil
}
