package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gamestack/admin/internal/model"
	"github.com/gamestack/admin/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Entities are stored as JSON documents under namespaced keys, with SET
// indexes for listing and counting.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	key := userKey(user.ID)

	// Pipeline document + index writes
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), string(user.ID), 0)
	pipe.SAdd(ctx, usersIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(idStr))
}

func (s *Storage) GetUsersByIDs(ctx context.Context, ids []model.UserID) ([]*model.User, error) {
	if len(ids) == 0 {
		return []*model.User{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = userKey(id)
	}

	// Single MGET for the whole batch
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Dangling reference, drop silently
		}
		var user model.User
		if err := json.Unmarshal([]byte(val.(string)), &user); err != nil {
			continue // Skip invalid data
		}
		users = append(users, &user)
	}

	return users, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	keys, err := s.client.SMembers(ctx, usersIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.User{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var user model.User
		if err := json.Unmarshal([]byte(val.(string)), &user); err != nil {
			continue
		}
		users = append(users, &user)
	}

	return users, nil
}

func (s *Storage) SetUserAdmin(ctx context.Context, id model.UserID, isAdmin bool) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	user.IsAdmin = isAdmin
	return s.SaveUser(ctx, user)
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	// Read first so the username index can be cleared
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	key := userKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.Del(ctx, usernameIndexKey(user.Username))
	pipe.SRem(ctx, usersIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) CountUsers(ctx context.Context) (int64, error) {
	return s.client.SCard(ctx, usersIndexKey()).Result()
}

// Team operations

func (s *Storage) SaveTeam(ctx context.Context, team *model.Team) error {
	data, err := json.Marshal(team)
	if err != nil {
		return err
	}

	key := teamKey(team.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, teamsIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error) {
	data, err := s.client.Get(ctx, teamKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}

	var team model.Team
	if err := json.Unmarshal(data, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *Storage) ListTeams(ctx context.Context) ([]*model.Team, error) {
	keys, err := s.client.SMembers(ctx, teamsIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Team{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	teams := make([]*model.Team, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var team model.Team
		if err := json.Unmarshal([]byte(val.(string)), &team); err != nil {
			continue
		}
		teams = append(teams, &team)
	}

	return teams, nil
}

func (s *Storage) DeleteTeam(ctx context.Context, id model.TeamID) error {
	key := teamKey(id)

	deleted, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return model.ErrTeamNotFound
	}

	return s.client.SRem(ctx, teamsIndexKey(), key).Err()
}

func (s *Storage) CountTeams(ctx context.Context) (int64, error) {
	return s.client.SCard(ctx, teamsIndexKey()).Result()
}

// Game setting operations

func (s *Storage) SaveGameSetting(ctx context.Context, setting *model.GameSetting) error {
	data, err := json.Marshal(setting)
	if err != nil {
		return err
	}

	key := gameSettingKey(setting.GameID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, gameSettingsIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGameSetting(ctx context.Context, gameID string) (*model.GameSetting, error) {
	data, err := s.client.Get(ctx, gameSettingKey(gameID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameSettingNotFound
		}
		return nil, err
	}

	var setting model.GameSetting
	if err := json.Unmarshal(data, &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}

func (s *Storage) ListGameSettings(ctx context.Context) ([]*model.GameSetting, error) {
	keys, err := s.client.SMembers(ctx, gameSettingsIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.GameSetting{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	settings := make([]*model.GameSetting, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var setting model.GameSetting
		if err := json.Unmarshal([]byte(val.(string)), &setting); err != nil {
			continue
		}
		settings = append(settings, &setting)
	}

	return settings, nil
}
