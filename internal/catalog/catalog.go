// Package catalog holds the fixed list of games the platform ships.
// The catalog is compiled-in, process-wide constant data; only the
// per-game active flag is persisted, as a storage override merged in
// at read time.
package catalog

// Game describes one entry in the game catalog
type Game struct {
	ID          string
	Name        string
	Description string
	Path        string
}

// games is the compiled-in catalog. Adding a game to the platform means
// adding an entry here.
var games = []Game{
	{
		ID:          "battleship",
		Name:        "Battleship",
		Description: "Classic naval combat strategy game",
		Path:        "/battleship",
	},
	{
		ID:          "wordle",
		Name:        "Wordle",
		Description: "Guess the word in 6 attempts",
		Path:        "/wordle",
	},
}

// Games returns the catalog entries in declaration order.
// The returned slice is a copy; callers may not mutate the catalog.
func Games() []Game {
	out := make([]Game, len(games))
	copy(out, games)
	return out
}

// Size returns the number of games in the catalog
func Size() int {
	return len(games)
}

// Lookup returns the catalog entry for the given ID, if present
func Lookup(id string) (Game, bool) {
	for _, g := range games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}
