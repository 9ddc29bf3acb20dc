package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case []User:
		o.printUsers(v)
	case AuthResult:
		o.printAuthResult(v)
	case Team:
		o.printTeam(v)
	case []Team:
		o.printTeams(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case Stats:
		o.printStats(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"sessionToken"`
}

// TeamMember response type
type TeamMember struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Team response type
type Team struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	LeaderID   string       `json:"leaderId"`
	LeaderName string       `json:"leaderName"`
	Members    []TeamMember `json:"members"`
	CreatedAt  time.Time    `json:"createdAt"`
	InviteCode string       `json:"inviteCode"`
}

// Game response type
type Game struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`
	Path         string `json:"path"`
	UsersPlaying int    `json:"usersPlaying"`
}

// Stats response type
type Stats struct {
	Users int64 `json:"users"`
	Teams int64 `json:"teams"`
	Games int   `json:"games"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	adminStr := "no"
	if u.IsAdmin {
		adminStr = "yes"
	}
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	fmt.Printf("Email: %s\n", u.Email)
	fmt.Printf("Admin: %s\n", adminStr)
	fmt.Printf("Created: %s\n", u.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printUsers(users []User) {
	fmt.Printf("Users (%d):\n", len(users))
	for _, u := range users {
		adminStr := ""
		if u.IsAdmin {
			adminStr = " [admin]"
		}
		fmt.Printf("  - %s (%s) <%s>%s\n", u.Username, u.ID, u.Email, adminStr)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printTeam(t Team) {
	fmt.Printf("Team: %s (%s)\n", t.Name, t.ID)
	fmt.Printf("Leader: %s (%s)\n", t.LeaderName, t.LeaderID)
	fmt.Printf("Invite Code: %s\n", t.InviteCode)
	fmt.Printf("Members (%d):\n", len(t.Members))
	for _, m := range t.Members {
		fmt.Printf("  - %s (%s)\n", m.Username, m.UserID)
	}
}

func (o *Output) printTeams(teams []Team) {
	fmt.Printf("Teams (%d):\n", len(teams))
	for _, t := range teams {
		fmt.Printf("  - %s (%s) - leader %s, %d members\n", t.Name, t.ID, t.LeaderName, len(t.Members))
	}
}

func (o *Output) printGame(g Game) {
	activeStr := "disabled"
	if g.IsActive {
		activeStr = "active"
	}
	fmt.Printf("Game: %s (%s)\n", g.Name, g.ID)
	fmt.Printf("Description: %s\n", g.Description)
	fmt.Printf("Path: %s\n", g.Path)
	fmt.Printf("Status: %s\n", activeStr)
	fmt.Printf("Playing: %d\n", g.UsersPlaying)
}

func (o *Output) printGames(games []Game) {
	fmt.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		activeStr := "active"
		if !g.IsActive {
			activeStr = "disabled"
		}
		fmt.Printf("  - %s (%s) - %s\n", g.Name, g.ID, activeStr)
	}
}

func (o *Output) printStats(s Stats) {
	fmt.Printf("Users: %d\n", s.Users)
	fmt.Printf("Teams: %d\n", s.Teams)
	fmt.Printf("Games: %d\n", s.Games)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
