package dto

type ClauseDTO struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Severity string `json:"severity"`
}

type RiskDTO struct {
	Text     string `json:"text"`
	Severity string `json:"severity"`
}

// AnalyzeDocumentResponse is the normalized analysis returned to the
// client. The grounding context stays server-side.
type AnalyzeDocumentResponse struct {
	DocumentName string      `json:"document_name"`
	Summary      string      `json:"summary"`
	Clauses      []ClauseDTO `json:"clauses"`
	Risks        []RiskDTO   `json:"risks"`
}
