package models

import (
	"slices"
	"time"
)

// Role tags who authored a chat message.
type Role string

const (
	RoleHuman Role = "human"
	RoleBot   Role = "bot"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleHuman || r == RoleBot
}

// ChatMessage is immutable once appended to a session.
type ChatMessage struct {
	Timestamp time.Time `json:"timestamp"`
	Role      Role      `json:"role"`
	Message   string    `json:"message"`
}

// Session is a named, append-only conversation transcript owned by one user.
type Session struct {
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"created_at"`
	Messages  []ChatMessage `json:"messages"`
}

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	msgs := slices.Clone(s.Messages)
	if msgs == nil {
		msgs = []ChatMessage{}
	}
	return &Session{Name: s.Name, CreatedAt: s.CreatedAt, Messages: msgs}
}
