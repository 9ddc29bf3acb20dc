package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamestack/admin/internal/catalog"
	"github.com/gamestack/admin/internal/dependencies/mocks"
	"github.com/gamestack/admin/internal/model"
	"github.com/gamestack/admin/internal/storage/memory"
	"github.com/gamestack/admin/internal/testutil"
)

func newTestService(t *testing.T) (*Service, *memory.Storage, *mocks.MockClock) {
	t.Helper()

	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return New(store, clk, testutil.NopLogger()), store, clk
}

func seedUser(t *testing.T, store *memory.Storage, id model.UserID, username string) {
	t.Helper()
	err := store.SaveUser(context.Background(), &model.User{
		ID:       id,
		Username: username,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
}

func TestListTeamsResolvesMembers(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	seedUser(t, store, "u1", "alice")
	seedUser(t, store, "u2", "bob")

	_ = store.SaveTeam(ctx, &model.Team{
		ID:        "t1",
		Name:      "Red Team",
		LeaderID:  "u1",
		MemberIDs: []model.UserID{"u1", "u2"},
	})

	details, err := svc.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)

	assert.Equal(t, "alice", details[0].LeaderName)
	require.Len(t, details[0].Members, 2)
}

func TestListTeamsDropsDanglingMembers(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	seedUser(t, store, "u1", "alice")
	seedUser(t, store, "u2", "bob")

	_ = store.SaveTeam(ctx, &model.Team{
		ID:        "t1",
		Name:      "Red Team",
		LeaderID:  "u1",
		MemberIDs: []model.UserID{"u1", "u2"},
	})

	require.NoError(t, store.DeleteUser(ctx, "u2"))

	details, err := svc.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Len(t, details[0].Members, 1)
	assert.Equal(t, "alice", details[0].Members[0].Username)
}

func TestListTeamsUnknownLeader(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	_ = store.SaveTeam(ctx, &model.Team{
		ID:       "t1",
		Name:     "Orphans",
		LeaderID: "deleted-user",
	})

	details, err := svc.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Unknown", details[0].LeaderName)
}

func TestListGamesDefaultsActive(t *testing.T) {
	svc, _, _ := newTestService(t)

	games, err := svc.ListGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, catalog.Size())

	for _, g := range games {
		assert.True(t, g.IsActive)
		assert.Zero(t, g.UsersPlaying)
	}
}

func TestListGamesMergesOverrides(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetGameActive(ctx, "battleship", false))

	games, err := svc.ListGames(ctx)
	require.NoError(t, err)

	byID := make(map[string]GameStatus, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	assert.False(t, byID["battleship"].IsActive)
	assert.True(t, byID["wordle"].IsActive)
}

func TestSetGameActiveUnknownIDAccepted(t *testing.T) {
	svc, store, clk := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetGameActive(ctx, "chess", false))

	setting, err := store.GetGameSetting(ctx, "chess")
	require.NoError(t, err)
	assert.False(t, setting.IsActive)
	assert.Equal(t, clk.Now(), setting.UpdatedAt)

	// Not in the catalog, so it never surfaces in the merged list
	games, err := svc.ListGames(ctx)
	require.NoError(t, err)
	for _, g := range games {
		assert.NotEqual(t, "chess", g.ID)
	}
}

func TestSetAdminFlag(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	seedUser(t, store, "u1", "alice")

	require.NoError(t, svc.SetAdminFlag(ctx, "u1", true))
	user, _ := store.GetUser(ctx, "u1")
	assert.True(t, user.IsAdmin)

	assert.ErrorIs(t, svc.SetAdminFlag(ctx, "missing", true), model.ErrUserNotFound)
}

func TestDeleteUserNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.DeleteUser(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestDeleteTeamIdempotenceSurface(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	_ = store.SaveTeam(ctx, &model.Team{ID: "t1", Name: "Red Team"})

	require.NoError(t, svc.DeleteTeam(ctx, "t1"))
	assert.ErrorIs(t, svc.DeleteTeam(ctx, "t1"), model.ErrTeamNotFound)
}

func TestStats(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	seedUser(t, store, "u1", "alice")
	seedUser(t, store, "u2", "bob")
	_ = store.SaveTeam(ctx, &model.Team{ID: "t1", Name: "Red Team"})

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Users)
	assert.EqualValues(t, 1, stats.Teams)
	assert.Equal(t, catalog.Size(), stats.Games)
}
