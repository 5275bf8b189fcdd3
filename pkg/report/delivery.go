package report

import (
	"context"
	"errors"

	"ai-legaldoc-be/internal/entity"
)

var (
	// ErrMissingRecipient rejects an email request before any delivery call.
	ErrMissingRecipient = errors.New("recipient email is required")

	// ErrDeliveryFailed means the delivery engine answered with a failure;
	// the wrapped message carries the engine's reason when it reported one.
	ErrDeliveryFailed = errors.New("failed to send report")

	// ErrServerUnreachable means the delivery engine could not be reached.
	ErrServerUnreachable = errors.New("could not reach the delivery server")
)

// SendRequest is the payload handed to the delivery engine.
type SendRequest struct {
	Summary      string        `json:"summary"`
	Risks        []entity.Risk `json:"risks"`
	Email        string        `json:"email"`
	DocumentName string        `json:"document_name"`
	SendEmail    bool          `json:"send_email"`
}

// Delivery sends a report to a recipient. Fire-and-forget from the session's
// point of view: no retry, the caller surfaces the outcome and moves on.
type Delivery interface {
	Send(ctx context.Context, req *SendRequest) error
}
