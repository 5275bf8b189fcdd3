package analysis

import (
	"context"
	"errors"
)

// ErrUnavailable covers every way the analysis round trip can fail:
// transport error, non-success status, or an unparsable body. Callers never
// see a partial result.
var ErrUnavailable = errors.New("analysis engine unavailable")

// Result is the raw engine response before normalization. Optional fields
// stay as reported; defaults are applied by the mapper.
type Result struct {
	Summary      string       `json:"summary"`
	Clauses      []ClauseData `json:"clauses"`
	Risks        []RiskData   `json:"risks"`
	Context      string       `json:"context"`
	DocumentName string       `json:"document_name"`
}

type ClauseData struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Severity string `json:"severity"`
}

type RiskData struct {
	Text     string `json:"text"`
	Severity string `json:"severity"`
}

// Provider defines the contract for the external document-analysis engine.
type Provider interface {
	Analyze(ctx context.Context, filename string, payload []byte) (*Result, error)
}
