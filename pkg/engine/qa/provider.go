package qa

import (
	"context"
	"errors"
)

// ErrUnavailable covers transport failures and malformed responses from
// the question-answering engine.
var ErrUnavailable = errors.New("qa engine unavailable")

// Answer is the engine's reply. Confidence is nil when the engine omitted
// it; the caller decides what an omitted confidence means.
type Answer struct {
	Text       string `json:"answer"`
	Confidence *int   `json:"confidence"`
}

// Provider defines the contract for the external question-answering engine.
type Provider interface {
	Answer(ctx context.Context, question, docContext string) (*Answer, error)
}
