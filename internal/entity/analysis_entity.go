package entity

import "strings"

// Severity classifies how serious a clause or risk is.
type Severity string

const (
	SeverityMinor  Severity = "minor"
	SeverityMedium Severity = "medium"
	SeverityMajor  Severity = "major"
)

// ParseSeverity maps an engine-reported severity string onto the closed
// Severity set. Anything unrecognized renders as minor, not as an error.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minor":
		return SeverityMinor
	case "medium":
		return SeverityMedium
	case "major":
		return SeverityMajor
	default:
		return SeverityMinor
	}
}

type Clause struct {
	Type     string   `json:"type"`
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

type Risk struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// AnalysisRecord is the normalized result of analyzing one document.
// A record is immutable once installed into a session; a new upload
// replaces it wholesale.
type AnalysisRecord struct {
	DocumentName string   `json:"document_name"`
	Summary      string   `json:"summary"`
	Clauses      []Clause `json:"clauses"`
	Risks        []Risk   `json:"risks"`

	// Context is the extracted document text handed to the QA engine as
	// grounding. Never exposed through the API.
	Context string `json:"-"`
}
