// Package domain defines the core data types for the chat service.
package domain

import (
	"time"
)

// Role identifies the speaker of a turn, using the Gemini wire roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// DefaultSessionID is the implicit session used when a caller sends none.
const DefaultSessionID = "default"

// Turn represents a single message in a conversation transcript.
// A turn is immutable once stored.
type Turn struct {
	TurnID    string    `json:"turn_id"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
