package memory

import (
	"context"
	"sync"

	"github.com/gamestack/admin/internal/model"
	"github.com/gamestack/admin/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	teams         map[model.TeamID]*model.Team
	gameSettings  map[string]*model.GameSetting
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		teams:         make(map[model.TeamID]*model.Team),
		gameSettings:  make(map[string]*model.GameSetting),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUsersByIDs(ctx context.Context, ids []model.UserID) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*model.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *Storage) SetUserAdmin(ctx context.Context, id model.UserID, isAdmin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	user.IsAdmin = isAdmin
	return nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	delete(s.usernameIndex, user.Username)
	delete(s.users, id)
	return nil
}

func (s *Storage) CountUsers(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

// Team operations

func (s *Storage) SaveTeam(ctx context.Context, team *model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.ID] = team
	return nil
}

func (s *Storage) GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.teams[id]
	if !ok {
		return nil, model.ErrTeamNotFound
	}
	return team, nil
}

func (s *Storage) ListTeams(ctx context.Context) ([]*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]*model.Team, 0, len(s.teams))
	for _, team := range s.teams {
		teams = append(teams, team)
	}
	return teams, nil
}

func (s *Storage) DeleteTeam(ctx context.Context, id model.TeamID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[id]; !ok {
		return model.ErrTeamNotFound
	}
	delete(s.teams, id)
	return nil
}

func (s *Storage) CountTeams(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.teams)), nil
}

// Game setting operations

func (s *Storage) SaveGameSetting(ctx context.Context, setting *model.GameSetting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameSettings[setting.GameID] = setting
	return nil
}

func (s *Storage) GetGameSetting(ctx context.Context, gameID string) (*model.GameSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	setting, ok := s.gameSettings[gameID]
	if !ok {
		return nil, model.ErrGameSettingNotFound
	}
	return setting, nil
}

func (s *Storage) ListGameSettings(ctx context.Context) ([]*model.GameSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settings := make([]*model.GameSetting, 0, len(s.gameSettings))
	for _, setting := range s.gameSettings {
		settings = append(settings, setting)
	}
	return settings, nil
}
