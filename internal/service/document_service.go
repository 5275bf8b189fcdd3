package service

import (
	"context"

	"ai-legaldoc-be/internal/dto"
	"ai-legaldoc-be/internal/mapper"
	"ai-legaldoc-be/internal/pkg/logger"
	"ai-legaldoc-be/internal/repository/memory"
	"ai-legaldoc-be/pkg/engine/analysis"
	"ai-legaldoc-be/pkg/events"
	"ai-legaldoc-be/pkg/upload"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IDocumentService runs the upload half of the lifecycle: gate, analysis
// round trip, normalization, record installation.
type IDocumentService interface {
	Analyze(ctx context.Context, sessionID string, file upload.File) (*dto.AnalyzeDocumentResponse, error)
}

type documentService struct {
	gate        *upload.Gate
	provider    analysis.Provider
	sessionRepo *memory.SessionRepository
	publisher   message.Publisher
	logger      logger.ILogger
}

func NewDocumentService(
	gate *upload.Gate,
	provider analysis.Provider,
	sessionRepo *memory.SessionRepository,
	publisher message.Publisher,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		gate:        gate,
		provider:    provider,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		logger:      log,
	}
}

func (s *documentService) Analyze(ctx context.Context, sessionID string, file upload.File) (*dto.AnalyzeDocumentResponse, error) {
	// 1. Gate: pure validation, before anything enters the pipeline
	if err := s.gate.Validate(file); err != nil {
		return nil, err
	}

	sess := s.sessionRepo.GetOrCreate(sessionID)

	// 2. Single-flight: a second upload while one is outstanding is rejected
	if err := sess.BeginUpload(); err != nil {
		return nil, err
	}
	defer sess.EndUpload()

	// Capture the record identity this submission was issued against.
	observed := sess.AnalysisVersion()

	result, err := s.provider.Analyze(ctx, file.Name, file.Content)
	if err != nil {
		// A failed submission leaves the previous record untouched.
		s.logger.Error("DocumentService", "Analysis submission failed", map[string]interface{}{
			"session_id": sessionID,
			"file":       file.Name,
			"error":      err.Error(),
		})
		return nil, err
	}

	record := mapper.ToAnalysisRecord(result, file.Name)

	if !sess.ReplaceAnalysisIfCurrent(record, observed) {
		// The session's record changed mid-flight; this result is stale and
		// must not be installed.
		s.logger.Warn("DocumentService", "Discarding stale analysis result", map[string]interface{}{
			"session_id": sessionID,
			"file":       file.Name,
		})
		return nil, analysis.ErrUnavailable
	}

	s.logger.Info("DocumentService", "Analysis record installed", map[string]interface{}{
		"session_id":    sessionID,
		"document_name": record.DocumentName,
		"clauses":       len(record.Clauses),
		"risks":         len(record.Risks),
	})

	if err := events.Publish(s.publisher, events.NewAnalysisCompleted(sessionID, record.DocumentName, len(record.Risks))); err != nil {
		s.logger.Warn("DocumentService", "Failed to publish analysis event", map[string]interface{}{"error": err.Error()})
	}

	return mapper.ToAnalyzeDocumentResponse(record), nil
}
