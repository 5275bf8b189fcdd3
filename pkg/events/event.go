package events

import (
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Topics carried on the in-process event bus.
const (
	TopicAnalysisCompleted = "analysis.completed"
	TopicAnswerEscalated   = "answer.escalated"
	TopicReportEmailed     = "report.emailed"
)

// SessionEvent is the wire shape for every session-scoped event. The relay
// forwards these to websocket clients of the owning session.
type SessionEvent struct {
	SessionID  string                 `json:"session_id"`
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func NewAnalysisCompleted(sessionID, documentName string, riskCount int) SessionEvent {
	return SessionEvent{
		SessionID: sessionID,
		Type:      TopicAnalysisCompleted,
		Data: map[string]interface{}{
			"document_name": documentName,
			"risk_count":    riskCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewAnswerEscalated(sessionID, messageID string, confidence int) SessionEvent {
	return SessionEvent{
		SessionID: sessionID,
		Type:      TopicAnswerEscalated,
		Data: map[string]interface{}{
			"message_id": messageID,
			"confidence": confidence,
		},
		OccurredAt: time.Now(),
	}
}

func NewReportEmailed(sessionID, recipient, documentName string) SessionEvent {
	return SessionEvent{
		SessionID: sessionID,
		Type:      TopicReportEmailed,
		Data: map[string]interface{}{
			"recipient":     recipient,
			"document_name": documentName,
		},
		OccurredAt: time.Now(),
	}
}

// Publish serializes the event and puts it on the bus. Errors are returned,
// not fatal: eventing is best-effort and must never fail the user action.
func Publish(publisher message.Publisher, evt SessionEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return publisher.Publish(evt.Type, message.NewMessage(watermill.NewUUID(), payload))
}
