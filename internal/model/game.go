package model

import "time"

// GameSetting is the persisted availability override for a game.
// Only the active flag is mutable; all other game metadata lives in the
// compiled-in catalog. Writes are upserts keyed by GameID, and unknown game
// IDs are accepted and stored as-is.
type GameSetting struct {
	GameID    string    `json:"game_id"`
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}
