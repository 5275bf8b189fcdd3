package service

import (
	"context"
	"testing"

	"ai-legaldoc-be/internal/entity"
	"ai-legaldoc-be/internal/repository/memory"
	"ai-legaldoc-be/pkg/report"

	"github.com/stretchr/testify/assert"
)

func seedReportableAnalysis(t *testing.T, repo *memory.SessionRepository, sessionID string) {
	t.Helper()
	sess := repo.GetOrCreate(sessionID)
	ok := sess.ReplaceAnalysisIfCurrent(&entity.AnalysisRecord{
		DocumentName: "NDA.pdf",
		Summary:      "Mutual NDA, two year term.",
		Risks: []entity.Risk{
			{Text: "No liability cap", Severity: entity.SeverityMajor},
		},
		Context: "full text",
	}, sess.AnalysisVersion())
	if !ok {
		t.Fatal("failed to seed analysis record")
	}
}

func TestDownloadWithoutAnalysis(t *testing.T) {
	repo := memory.NewSessionRepository()
	svc := NewReportService(&fakeDelivery{}, repo, newTestPubSub(), nopLogger{})

	_, err := svc.Download(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrNoAnalysis)
}

func TestDownloadDerivesReportLocally(t *testing.T) {
	repo := memory.NewSessionRepository()
	seedReportableAnalysis(t, repo, "s1")
	delivery := &fakeDelivery{}
	svc := NewReportService(delivery, repo, newTestPubSub(), nopLogger{})

	res, err := svc.Download(context.Background(), "s1")
	assert.NoError(t, err)
	assert.Equal(t, "NDA.pdf-Summary.txt", res.Filename)
	assert.Contains(t, res.Content, "Summary for NDA.pdf")
	assert.Contains(t, res.Content, "- No liability cap (Severity: major)")
	assert.Equal(t, 0, delivery.calls, "download must not touch the delivery engine")
}

func TestEmailMissingRecipientRejectedBeforeDelivery(t *testing.T) {
	repo := memory.NewSessionRepository()
	seedReportableAnalysis(t, repo, "s1")
	delivery := &fakeDelivery{}
	svc := NewReportService(delivery, repo, newTestPubSub(), nopLogger{})

	err := svc.Email(context.Background(), "s1", "")
	assert.ErrorIs(t, err, report.ErrMissingRecipient)
	assert.Equal(t, 0, delivery.calls, "missing recipient must be rejected without any network call")
}

func TestEmailWithoutAnalysis(t *testing.T) {
	repo := memory.NewSessionRepository()
	delivery := &fakeDelivery{}
	svc := NewReportService(delivery, repo, newTestPubSub(), nopLogger{})

	err := svc.Email(context.Background(), "s1", "user@example.com")
	assert.ErrorIs(t, err, ErrNoAnalysis)
	assert.Equal(t, 0, delivery.calls)
}

func TestEmailSendsRecordPayload(t *testing.T) {
	repo := memory.NewSessionRepository()
	seedReportableAnalysis(t, repo, "s1")
	delivery := &fakeDelivery{}
	svc := NewReportService(delivery, repo, newTestPubSub(), nopLogger{})

	err := svc.Email(context.Background(), "s1", "user@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, delivery.calls)

	assert.Equal(t, "user@example.com", delivery.got.Email)
	assert.Equal(t, "NDA.pdf", delivery.got.DocumentName)
	assert.Equal(t, "Mutual NDA, two year term.", delivery.got.Summary)
	assert.Len(t, delivery.got.Risks, 1)
	assert.True(t, delivery.got.SendEmail)
}

func TestEmailDeliveryFailureSurfaces(t *testing.T) {
	repo := memory.NewSessionRepository()
	seedReportableAnalysis(t, repo, "s1")
	delivery := &fakeDelivery{err: report.ErrServerUnreachable}
	svc := NewReportService(delivery, repo, newTestPubSub(), nopLogger{})

	err := svc.Email(context.Background(), "s1", "user@example.com")
	assert.ErrorIs(t, err, report.ErrServerUnreachable)
}
