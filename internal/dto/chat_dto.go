package dto

import "time"

type AskChatRequest struct {
	Question string `json:"question" validate:"required"`
}

// ChatMessageDTO is one conversation turn as rendered to the client.
// ConsultWarning is recomputed from the stored confidence on every read,
// never cached.
type ChatMessageDTO struct {
	Id             string    `json:"id"`
	Role           string    `json:"role"`
	Text           string    `json:"text"`
	Confidence     *int      `json:"confidence,omitempty"`
	ConsultWarning bool      `json:"consult_warning"`
	CreatedAt      time.Time `json:"created_at"`
}

// AskChatResponse pairs the optimistically appended user message with the
// assistant reply. Sent is nil on the no-document branch, where only a
// warning reply is produced.
type AskChatResponse struct {
	Sent  *ChatMessageDTO `json:"sent,omitempty"`
	Reply *ChatMessageDTO `json:"reply"`
}
