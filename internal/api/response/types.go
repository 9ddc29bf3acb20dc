package response

import (
	"time"

	"github.com/gamestack/admin/internal/model"
	"github.com/gamestack/admin/internal/services/admin"
)

// AckResponse acknowledges a successful mutation
type AckResponse struct {
	OK bool `json:"ok"`
}

// User is the admin-facing projection of a user record.
// The password hash never appears here.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        string(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// UsersFromModels converts a slice of users
func UsersFromModels(users []*model.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = UserFromModel(u)
	}
	return out
}

// TeamMember is a resolved member reference in a team view
type TeamMember struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Team is the flattened admin view of a team
type Team struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	LeaderID   string       `json:"leaderId"`
	LeaderName string       `json:"leaderName"`
	Members    []TeamMember `json:"members"`
	CreatedAt  time.Time    `json:"createdAt"`
	InviteCode string       `json:"inviteCode"`
}

// TeamFromDetail converts an admin.TeamDetail to a response Team
func TeamFromDetail(d admin.TeamDetail) Team {
	members := make([]TeamMember, len(d.Members))
	for i, m := range d.Members {
		members[i] = TeamMember{
			UserID:   string(m.UserID),
			Username: m.Username,
		}
	}

	return Team{
		ID:         string(d.Team.ID),
		Name:       d.Team.Name,
		LeaderID:   string(d.Team.LeaderID),
		LeaderName: d.LeaderName,
		Members:    members,
		CreatedAt:  d.Team.CreatedAt,
		InviteCode: d.Team.InviteCode,
	}
}

// TeamsFromDetails converts a slice of team details
func TeamsFromDetails(details []admin.TeamDetail) []Team {
	out := make([]Team, len(details))
	for i, d := range details {
		out[i] = TeamFromDetail(d)
	}
	return out
}

// Game is a catalog entry merged with its availability state
type Game struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`
	Path         string `json:"path"`
	UsersPlaying int    `json:"usersPlaying"`
}

// GameFromStatus converts an admin.GameStatus to a response Game
func GameFromStatus(g admin.GameStatus) Game {
	return Game{
		ID:           g.ID,
		Name:         g.Name,
		Description:  g.Description,
		IsActive:     g.IsActive,
		Path:         g.Path,
		UsersPlaying: g.UsersPlaying,
	}
}

// GamesFromStatuses converts a slice of game statuses
func GamesFromStatuses(statuses []admin.GameStatus) []Game {
	out := make([]Game, len(statuses))
	for i, g := range statuses {
		out[i] = GameFromStatus(g)
	}
	return out
}

// Stats holds the platform totals
type Stats struct {
	Users int64 `json:"users"`
	Teams int64 `json:"teams"`
	Games int   `json:"games"`
}

// StatsFromModel converts admin.Stats
func StatsFromModel(s admin.Stats) Stats {
	return Stats{
		Users: s.Users,
		Teams: s.Teams,
		Games: s.Games,
	}
}
