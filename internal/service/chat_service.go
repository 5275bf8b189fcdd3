package service

import (
	"context"
	"errors"
	"strings"

	"ai-legaldoc-be/internal/config"
	"ai-legaldoc-be/internal/constant"
	"ai-legaldoc-be/internal/dto"
	"ai-legaldoc-be/internal/entity"
	"ai-legaldoc-be/internal/mapper"
	"ai-legaldoc-be/internal/pkg/logger"
	"ai-legaldoc-be/internal/repository/memory"
	"ai-legaldoc-be/pkg/engine/qa"
	"ai-legaldoc-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// ErrEmptyQuestion rejects blank questions before anything touches the log.
var ErrEmptyQuestion = errors.New("question must not be empty")

// IChatService is the conversational half of the lifecycle: it owns the
// message log and the confidence-based escalation policy.
type IChatService interface {
	Ask(ctx context.Context, sessionID string, question string) (*dto.AskChatResponse, error)
	History(ctx context.Context, sessionID string) ([]*dto.ChatMessageDTO, error)
}

type chatService struct {
	provider    qa.Provider
	sessionRepo *memory.SessionRepository
	publisher   message.Publisher
	cfg         config.ChatConfig
	logger      logger.ILogger
}

func NewChatService(
	provider qa.Provider,
	sessionRepo *memory.SessionRepository,
	publisher message.Publisher,
	cfg config.ChatConfig,
	log logger.ILogger,
) IChatService {
	return &chatService{
		provider:    provider,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		cfg:         cfg,
		logger:      log,
	}
}

func (s *chatService) Ask(ctx context.Context, sessionID string, question string) (*dto.AskChatResponse, error) {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		// No-op: the log is untouched and the engine is never called.
		return nil, ErrEmptyQuestion
	}

	sess := s.sessionRepo.GetOrCreate(sessionID)

	// Record and version are read together: the answer will be grounded in
	// this record's context, and observed invalidates it if anything replaces
	// the record before the reply lands.
	record, observed := sess.AnalysisSnapshot()
	if record == nil {
		// Local synchronous branch: warn, don't call the engine.
		zero := 0
		warn := sess.Append(entity.MessageRoleAssistant, constant.NoDocumentWarning, &zero)
		return &dto.AskChatResponse{
			Reply: mapper.ToChatMessageDTO(warn, s.cfg.EscalationThreshold),
		}, nil
	}

	if err := sess.BeginAsk(); err != nil {
		return nil, err
	}
	defer sess.EndAsk()

	// Optimistic append: the user turn lands before the round trip, with the
	// raw question text.
	sent := sess.Append(entity.MessageRoleUser, question, nil)

	answer, err := s.provider.Answer(ctx, trimmed, strings.TrimSpace(record.Context))

	var reply entity.Message
	var appended bool
	if err != nil {
		// Swallowed here: the failure becomes a log entry, not a fault.
		s.logger.Error("ChatService", "QA round trip failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		zero := 0
		reply, appended = sess.AppendIfCurrent(entity.MessageRoleAssistant, constant.ConnectivityFailure, &zero, observed)
	} else {
		text := answer.Text
		if text == "" {
			text = constant.NoAnswerFallback
		}
		confidence := s.cfg.DefaultConfidence
		if answer.Confidence != nil {
			confidence = *answer.Confidence
		}
		reply, appended = sess.AppendIfCurrent(entity.MessageRoleAssistant, text, &confidence, observed)
	}

	if !appended {
		// The document was replaced mid-flight; this answer belongs to a
		// superseded record and must not enter the log.
		s.logger.Warn("ChatService", "Discarding stale QA reply", map[string]interface{}{
			"session_id": sessionID,
		})
		return &dto.AskChatResponse{
			Sent: mapper.ToChatMessageDTO(sent, s.cfg.EscalationThreshold),
		}, nil
	}

	if mapper.NeedsEscalation(reply, s.cfg.EscalationThreshold) && reply.Confidence != nil {
		if err := events.Publish(s.publisher, events.NewAnswerEscalated(sessionID, reply.ID, *reply.Confidence)); err != nil {
			s.logger.Warn("ChatService", "Failed to publish escalation event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.AskChatResponse{
		Sent:  mapper.ToChatMessageDTO(sent, s.cfg.EscalationThreshold),
		Reply: mapper.ToChatMessageDTO(reply, s.cfg.EscalationThreshold),
	}, nil
}

func (s *chatService) History(_ context.Context, sessionID string) ([]*dto.ChatMessageDTO, error) {
	sess := s.sessionRepo.GetOrCreate(sessionID)
	return mapper.ToChatHistory(sess.Messages(), s.cfg.EscalationThreshold), nil
}
