package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamestack/admin/internal/model"
)

func newTestUser(id model.UserID, username string) *model.User {
	return &model.User{
		ID:        id,
		Username:  username,
		Email:     username + "@example.com",
		CreatedAt: time.Now(),
	}
}

func TestSaveAndGetUser(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := newTestUser("u1", "alice")
	require.NoError(t, s.SaveUser(ctx, user))

	got, err := s.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	byName, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.UserID("u1"), byName.ID)
}

func TestGetUserNotFound(t *testing.T) {
	s := New()

	_, err := s.GetUser(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	_, err = s.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestGetUsersByIDsDropsDangling(t *testing.T) {
	s := New()
	ctx := context.Background()

	_ = s.SaveUser(ctx, newTestUser("u1", "alice"))
	_ = s.SaveUser(ctx, newTestUser("u2", "bob"))

	users, err := s.GetUsersByIDs(ctx, []model.UserID{"u1", "gone", "u2"})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestSetUserAdmin(t *testing.T) {
	s := New()
	ctx := context.Background()

	_ = s.SaveUser(ctx, newTestUser("u1", "alice"))

	require.NoError(t, s.SetUserAdmin(ctx, "u1", true))
	got, _ := s.GetUser(ctx, "u1")
	assert.True(t, got.IsAdmin)

	err := s.SetUserAdmin(ctx, "missing", true)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	s := New()
	ctx := context.Background()

	_ = s.SaveUser(ctx, newTestUser("u1", "alice"))

	require.NoError(t, s.DeleteUser(ctx, "u1"))

	_, err := s.GetUser(ctx, "u1")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
	_, err = s.GetUserByUsername(ctx, "alice")
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	// Second delete reports not found
	assert.ErrorIs(t, s.DeleteUser(ctx, "u1"), model.ErrUserNotFound)
}

func TestCountUsers(t *testing.T) {
	s := New()
	ctx := context.Background()

	count, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_ = s.SaveUser(ctx, newTestUser("u1", "alice"))
	_ = s.SaveUser(ctx, newTestUser("u2", "bob"))

	count, err = s.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestSaveAndListTeams(t *testing.T) {
	s := New()
	ctx := context.Background()

	team := &model.Team{
		ID:         "t1",
		Name:       "Red Team",
		LeaderID:   "u1",
		MemberIDs:  []model.UserID{"u1", "u2"},
		InviteCode: "JOIN1234",
		CreatedAt:  time.Now(),
	}
	require.NoError(t, s.SaveTeam(ctx, team))

	teams, err := s.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Red Team", teams[0].Name)

	count, err := s.CountTeams(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestDeleteTeam(t *testing.T) {
	s := New()
	ctx := context.Background()

	_ = s.SaveTeam(ctx, &model.Team{ID: "t1", Name: "Red Team"})

	require.NoError(t, s.DeleteTeam(ctx, "t1"))
	assert.ErrorIs(t, s.DeleteTeam(ctx, "t1"), model.ErrTeamNotFound)

	_, err := s.GetTeam(ctx, "t1")
	assert.ErrorIs(t, err, model.ErrTeamNotFound)
}

func TestGameSettingUpsert(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.GetGameSetting(ctx, "battleship")
	assert.ErrorIs(t, err, model.ErrGameSettingNotFound)

	setting := &model.GameSetting{GameID: "battleship", IsActive: false, UpdatedAt: time.Now()}
	require.NoError(t, s.SaveGameSetting(ctx, setting))

	got, err := s.GetGameSetting(ctx, "battleship")
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	// Upsert replaces in place
	require.NoError(t, s.SaveGameSetting(ctx, &model.GameSetting{GameID: "battleship", IsActive: true}))
	got, err = s.GetGameSetting(ctx, "battleship")
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	settings, err := s.ListGameSettings(ctx)
	require.NoError(t, err)
	assert.Len(t, settings, 1)
}
