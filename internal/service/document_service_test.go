package service

import (
	"context"
	"testing"

	"ai-legaldoc-be/internal/entity"
	"ai-legaldoc-be/internal/repository/memory"
	"ai-legaldoc-be/pkg/engine/analysis"
	"ai-legaldoc-be/pkg/store"
	"ai-legaldoc-be/pkg/upload"

	"github.com/stretchr/testify/assert"
)

func pdfFile(name string, size int64) upload.File {
	return upload.File{
		Name:        name,
		ContentType: "application/pdf",
		Size:        size,
		Content:     []byte("%PDF-1.4 payload"),
	}
}

func newDocumentService(provider analysis.Provider, repo *memory.SessionRepository) IDocumentService {
	gate := upload.NewGate("application/pdf", 10)
	return NewDocumentService(gate, provider, repo, newTestPubSub(), nopLogger{})
}

func TestAnalyzeRejectedFileNeverReachesEngine(t *testing.T) {
	repo := memory.NewSessionRepository()
	provider := &fakeAnalysisProvider{result: &analysis.Result{Summary: "S"}}
	svc := newDocumentService(provider, repo)

	tests := []struct {
		name string
		file upload.File
		want error
	}{
		{
			name: "wrong content type",
			file: upload.File{Name: "a.docx", ContentType: "application/msword", Size: 100},
			want: upload.ErrInvalidType,
		},
		{
			name: "over the size ceiling",
			file: pdfFile("big.pdf", 10*1024*1024+1),
			want: upload.ErrTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), "s1", tt.file)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Equal(t, 0, provider.calls, "rejected files must not reach the engine")
	assert.Nil(t, repo.GetOrCreate("s1").Analysis(), "no record installed")
}

func TestAnalyzeInstallsNormalizedRecord(t *testing.T) {
	repo := memory.NewSessionRepository()
	provider := &fakeAnalysisProvider{result: &analysis.Result{
		Summary: "A services agreement.",
		Clauses: []analysis.ClauseData{
			{Type: "Termination", Text: "30 days notice", Severity: "MAJOR"},
			{Type: "Liability", Text: "capped at fees", Severity: ""},
		},
		Risks: []analysis.RiskData{
			{Text: "Unilateral renewal", Severity: "medium"},
		},
		Context: "full document text",
	}}
	svc := newDocumentService(provider, repo)

	res, err := svc.Analyze(context.Background(), "s1", pdfFile("contract.pdf", 2048))
	assert.NoError(t, err)

	// Engine omitted its own name, so the uploaded filename wins.
	assert.Equal(t, "contract.pdf", res.DocumentName)
	assert.Equal(t, "A services agreement.", res.Summary)
	assert.Equal(t, "major", res.Clauses[0].Severity)
	assert.Equal(t, "minor", res.Clauses[1].Severity, "omitted severity defaults to minor")
	assert.Equal(t, "medium", res.Risks[0].Severity)

	record := repo.GetOrCreate("s1").Analysis()
	assert.NotNil(t, record)
	assert.Equal(t, "full document text", record.Context, "context is kept server-side")
}

func TestAnalyzeFailureLeavesPreviousRecord(t *testing.T) {
	repo := memory.NewSessionRepository()
	previous := seedAnalysis(t, repo, "s1", "old context").Analysis()

	provider := &fakeAnalysisProvider{err: analysis.ErrUnavailable}
	svc := newDocumentService(provider, repo)

	_, err := svc.Analyze(context.Background(), "s1", pdfFile("next.pdf", 512))
	assert.ErrorIs(t, err, analysis.ErrUnavailable)

	assert.Same(t, previous, repo.GetOrCreate("s1").Analysis(), "failed submission must not disturb the record")
}

func TestAnalyzeRejectsConcurrentUpload(t *testing.T) {
	repo := memory.NewSessionRepository()
	sess := repo.GetOrCreate("s1")
	assert.NoError(t, sess.BeginUpload())

	provider := &fakeAnalysisProvider{result: &analysis.Result{Summary: "S"}}
	svc := newDocumentService(provider, repo)

	_, err := svc.Analyze(context.Background(), "s1", pdfFile("contract.pdf", 512))
	assert.ErrorIs(t, err, store.ErrBusy)
	assert.Equal(t, 0, provider.calls)
}

func TestAnalyzeDiscardsStaleResult(t *testing.T) {
	repo := memory.NewSessionRepository()
	sess := repo.GetOrCreate("s1")

	// Another record lands while this submission is in flight.
	provider := &fakeAnalysisProvider{result: &analysis.Result{Summary: "stale"}}
	provider.before = func() {
		ok := sess.ReplaceAnalysisIfCurrent(&entity.AnalysisRecord{Summary: "winner"}, sess.AnalysisVersion())
		assert.True(t, ok)
	}
	svc := newDocumentService(provider, repo)

	_, err := svc.Analyze(context.Background(), "s1", pdfFile("contract.pdf", 512))
	assert.ErrorIs(t, err, analysis.ErrUnavailable)

	assert.Equal(t, "winner", sess.Analysis().Summary, "stale result must not overwrite the installed record")
}
