package model

import "time"

// TeamID uniquely identifies a team
type TeamID string

// Team represents a player team.
// LeaderID and MemberIDs reference users but are not enforced by the store:
// deleting a user leaves dangling references behind, which the admin surface
// tolerates rather than cascades.
type Team struct {
	ID         TeamID    `json:"id"`
	Name       string    `json:"name"`
	LeaderID   UserID    `json:"leader_id"`
	MemberIDs  []UserID  `json:"member_ids"`
	InviteCode string    `json:"invite_code"` // opaque join token, unique per team
	CreatedAt  time.Time `json:"created_at"`
}
