package report

import (
	"fmt"
	"strings"

	"ai-legaldoc-be/internal/constant"
	"ai-legaldoc-be/internal/entity"
)

// DocumentName returns the display name for a record, falling back to the
// default label when the record carries none.
func DocumentName(record *entity.AnalysisRecord) string {
	if record.DocumentName != "" {
		return record.DocumentName
	}
	return constant.DefaultDocumentName
}

// PlainText renders a record as the downloadable text report. Deterministic:
// same record, byte-identical output. Risks keep the record's order.
func PlainText(record *entity.AnalysisRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Summary for %s\n\n", DocumentName(record))
	b.WriteString("=== Summary ===\n")
	b.WriteString(record.Summary)
	b.WriteString("\n\n=== Risks ===\n")

	lines := make([]string, 0, len(record.Risks))
	for _, r := range record.Risks {
		lines = append(lines, fmt.Sprintf("- %s (Severity: %s)", r.Text, r.Severity))
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}

// Filename derives the attachment name for the downloaded report.
func Filename(record *entity.AnalysisRecord) string {
	return DocumentName(record) + "-Summary.txt"
}
