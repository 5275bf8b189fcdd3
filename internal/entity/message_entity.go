package entity

import "time"

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Message is one turn in the conversation log. Messages are append-only
// and strictly ordered by creation; the ID is a zero-padded per-session
// sequence so lexical order matches creation order.
type Message struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"created_at"`

	// Confidence is 0-100, present only on assistant replies.
	Confidence *int `json:"confidence,omitempty"`
}
