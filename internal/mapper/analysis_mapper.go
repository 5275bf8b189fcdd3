package mapper

import (
	"ai-legaldoc-be/internal/constant"
	"ai-legaldoc-be/internal/dto"
	"ai-legaldoc-be/internal/entity"
	"ai-legaldoc-be/pkg/engine/analysis"
)

// ToAnalysisRecord normalizes a raw engine result into the immutable
// record shape, applying defaults for omitted optional fields. The engine's
// own document name wins; otherwise the uploaded filename; otherwise the
// default label.
func ToAnalysisRecord(result *analysis.Result, uploadedName string) *entity.AnalysisRecord {
	name := result.DocumentName
	if name == "" {
		name = uploadedName
	}
	if name == "" {
		name = constant.DefaultDocumentName
	}

	clauses := make([]entity.Clause, 0, len(result.Clauses))
	for _, c := range result.Clauses {
		clauses = append(clauses, entity.Clause{
			Type:     c.Type,
			Text:     c.Text,
			Severity: entity.ParseSeverity(c.Severity),
		})
	}

	risks := make([]entity.Risk, 0, len(result.Risks))
	for _, r := range result.Risks {
		risks = append(risks, entity.Risk{
			Text:     r.Text,
			Severity: entity.ParseSeverity(r.Severity),
		})
	}

	return &entity.AnalysisRecord{
		DocumentName: name,
		Summary:      result.Summary,
		Clauses:      clauses,
		Risks:        risks,
		Context:      result.Context,
	}
}

// ToAnalyzeDocumentResponse renders a record for the client, without the
// grounding context.
func ToAnalyzeDocumentResponse(record *entity.AnalysisRecord) *dto.AnalyzeDocumentResponse {
	clauses := make([]dto.ClauseDTO, 0, len(record.Clauses))
	for _, c := range record.Clauses {
		clauses = append(clauses, dto.ClauseDTO{
			Type:     c.Type,
			Text:     c.Text,
			Severity: string(c.Severity),
		})
	}

	risks := make([]dto.RiskDTO, 0, len(record.Risks))
	for _, r := range record.Risks {
		risks = append(risks, dto.RiskDTO{
			Text:     r.Text,
			Severity: string(r.Severity),
		})
	}

	return &dto.AnalyzeDocumentResponse{
		DocumentName: record.DocumentName,
		Summary:      record.Summary,
		Clauses:      clauses,
		Risks:        risks,
	}
}
