package models

import "time"

// ChatRole distinguishes who produced a chat message
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatLogEntry is one message in a user's assistant transcript. Append-only.
type ChatLogEntry struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      ChatRole  `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
