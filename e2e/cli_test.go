package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamestack/admin/internal/api"
	"github.com/gamestack/admin/internal/factory"
	"github.com/gamestack/admin/internal/model"
	"github.com/gamestack/admin/internal/services/auth"
	"github.com/gamestack/admin/internal/storage"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "adminctl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/adminctl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	storage  storage.Storage
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{
		AuthConfig: auth.Config{Secret: "e2e-secret", SessionDuration: time.Hour},
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		AuthService:  app.AuthService,
		AdminService: app.AdminService,
		Storage:      app.Storage,
		CookieName:   "gs_session",
		SessionTTL:   time.Hour,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/health")

	return &testServer{
		server:  server,
		addr:    serverURL,
		storage: app.Storage,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// seedAdmin stores an admin account with a usable password
func seedAdmin(t *testing.T, store storage.Storage, username, password string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	require.NoError(t, store.SaveUser(context.Background(), &model.User{
		ID:           model.UserID("admin-" + username),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    time.Now(),
	}))
}

// Response types for JSON parsing
type authResponse struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		IsAdmin  bool   `json:"isAdmin"`
	} `json:"user"`
	SessionToken string `json:"sessionToken"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type teamResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LeaderName string `json:"leaderName"`
	Members    []struct {
		UserID   string `json:"userId"`
		Username string `json:"username"`
	} `json:"members"`
}

type gameResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

type statsResponse struct {
	Users int64 `json:"users"`
	Teams int64 `json:"teams"`
	Games int   `json:"games"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_LoginAndUserCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	seedAdmin(t, ts.storage, "root", "rootpass123")
	require.NoError(t, ts.storage.SaveUser(context.Background(), &model.User{
		ID:       "u-bob",
		Username: "bob",
		Email:    "bob@example.com",
	}))

	cli := newCLIRunner(t, ts.addr)

	// Login saves the token for subsequent commands
	output, err := cli.run("login", "--user", "root", "--pass", "rootpass123")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "root", authResp.User.Username)
	assert.True(t, authResp.User.IsAdmin)
	assert.NotEmpty(t, authResp.SessionToken)

	// List users
	output, err = cli.run("users", "list")
	require.NoError(t, err, "output: %s", output)

	var users []userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &users))
	assert.Len(t, users, 2)

	// Promote bob
	output, err = cli.run("users", "promote", "u-bob")
	require.NoError(t, err, "output: %s", output)

	bob, err := ts.storage.GetUser(context.Background(), "u-bob")
	require.NoError(t, err)
	assert.True(t, bob.IsAdmin)

	// Demote bob
	output, err = cli.run("users", "demote", "u-bob")
	require.NoError(t, err, "output: %s", output)

	bob, err = ts.storage.GetUser(context.Background(), "u-bob")
	require.NoError(t, err)
	assert.False(t, bob.IsAdmin)

	// Delete bob
	output, err = cli.run("users", "delete", "u-bob")
	require.NoError(t, err, "output: %s", output)

	_, err = ts.storage.GetUser(context.Background(), "u-bob")
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	// Deleting again fails with a not found error
	output, err = cli.run("users", "delete", "u-bob")
	require.Error(t, err)
	assert.Contains(t, output, "USER_NOT_FOUND")
}

func TestCLI_TeamCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	seedAdmin(t, ts.storage, "root", "rootpass123")
	require.NoError(t, ts.storage.SaveTeam(context.Background(), &model.Team{
		ID:        "t1",
		Name:      "Red Team",
		LeaderID:  "admin-root",
		MemberIDs: []model.UserID{"admin-root"},
	}))

	cli := newCLIRunner(t, ts.addr)

	_, err := cli.run("login", "--user", "root", "--pass", "rootpass123")
	require.NoError(t, err)

	output, err := cli.run("teams", "list")
	require.NoError(t, err, "output: %s", output)

	var teams []teamResponse
	require.NoError(t, json.Unmarshal([]byte(output), &teams))
	require.Len(t, teams, 1)
	assert.Equal(t, "Red Team", teams[0].Name)
	assert.Equal(t, "root", teams[0].LeaderName)

	output, err = cli.run("teams", "delete", "t1")
	require.NoError(t, err, "output: %s", output)

	_, err = ts.storage.GetTeam(context.Background(), "t1")
	assert.ErrorIs(t, err, model.ErrTeamNotFound)
}

func TestCLI_GameCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	seedAdmin(t, ts.storage, "root", "rootpass123")

	cli := newCLIRunner(t, ts.addr)

	_, err := cli.run("login", "--user", "root", "--pass", "rootpass123")
	require.NoError(t, err)

	output, err := cli.run("games", "list")
	require.NoError(t, err, "output: %s", output)

	var games []gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	require.Len(t, games, 2)
	for _, g := range games {
		assert.True(t, g.IsActive, g.ID)
	}

	// Disable then re-enable battleship
	_, err = cli.run("games", "disable", "battleship")
	require.NoError(t, err)

	output, err = cli.run("games", "list")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	for _, g := range games {
		if g.ID == "battleship" {
			assert.False(t, g.IsActive)
		} else {
			assert.True(t, g.IsActive)
		}
	}

	_, err = cli.run("games", "enable", "battleship")
	require.NoError(t, err)
}

func TestCLI_Stats(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	seedAdmin(t, ts.storage, "root", "rootpass123")

	cli := newCLIRunner(t, ts.addr)

	_, err := cli.run("login", "--user", "root", "--pass", "rootpass123")
	require.NoError(t, err)

	output, err := cli.run("stats")
	require.NoError(t, err, "output: %s", output)

	var stats statsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &stats))
	assert.EqualValues(t, 1, stats.Users)
	assert.EqualValues(t, 0, stats.Teams)
	assert.EqualValues(t, 2, stats.Games)
}

func TestCLI_AdminCommandsRequireSession(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("users", "list")
	require.Error(t, err)
	assert.Contains(t, output, "UNAUTHORIZED")

	output, err = cli.runWithToken("garbage-token", "stats")
	require.Error(t, err)
	assert.Contains(t, output, "UNAUTHORIZED")
}
