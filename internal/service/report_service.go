package service

import (
	"context"
	"errors"
	"fmt"

	"ai-legaldoc-be/internal/dto"
	"ai-legaldoc-be/internal/pkg/logger"
	"ai-legaldoc-be/internal/repository/memory"
	"ai-legaldoc-be/pkg/events"
	"ai-legaldoc-be/pkg/report"

	"github.com/ThreeDotsLabs/watermill/message"
)

// ErrNoAnalysis: export is disabled until a document has been analyzed.
// Not a fault, just an unreachable affordance.
var ErrNoAnalysis = errors.New("no analyzed document in this session")

type IReportService interface {
	Download(ctx context.Context, sessionID string) (*dto.DownloadReport, error)
	Email(ctx context.Context, sessionID, recipientEmail string) error
}

type reportService struct {
	delivery    report.Delivery
	sessionRepo *memory.SessionRepository
	publisher   message.Publisher
	logger      logger.ILogger
}

func NewReportService(
	delivery report.Delivery,
	sessionRepo *memory.SessionRepository,
	publisher message.Publisher,
	log logger.ILogger,
) IReportService {
	return &reportService{
		delivery:    delivery,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		logger:      log,
	}
}

// Download derives the plain-text report locally. Synchronous, no network.
func (s *reportService) Download(_ context.Context, sessionID string) (*dto.DownloadReport, error) {
	sess := s.sessionRepo.GetOrCreate(sessionID)
	record := sess.Analysis()
	if record == nil {
		return nil, ErrNoAnalysis
	}

	return &dto.DownloadReport{
		Filename: report.Filename(record),
		Content:  report.PlainText(record),
	}, nil
}

// Email validates the recipient, then hands the report to the delivery
// engine. No retry; a retry is a fresh user action.
func (s *reportService) Email(ctx context.Context, sessionID, recipientEmail string) error {
	if recipientEmail == "" {
		return report.ErrMissingRecipient
	}

	sess := s.sessionRepo.GetOrCreate(sessionID)
	record := sess.Analysis()
	if record == nil {
		return ErrNoAnalysis
	}

	req := &report.SendRequest{
		Summary:      record.Summary,
		Risks:        record.Risks,
		Email:        recipientEmail,
		DocumentName: report.DocumentName(record),
		SendEmail:    true,
	}

	if err := s.delivery.Send(ctx, req); err != nil {
		s.logger.Error("ReportService", "Report delivery failed", map[string]interface{}{
			"session_id": sessionID,
			"recipient":  recipientEmail,
			"error":      err.Error(),
		})
		return fmt.Errorf("send report: %w", err)
	}

	s.logger.Info("ReportService", "Report emailed", map[string]interface{}{
		"session_id": sessionID,
		"recipient":  recipientEmail,
	})

	if err := events.Publish(s.publisher, events.NewReportEmailed(sessionID, recipientEmail, req.DocumentName)); err != nil {
		s.logger.Warn("ReportService", "Failed to publish report event", map[string]interface{}{"error": err.Error()})
	}

	return nil
}
