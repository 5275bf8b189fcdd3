package service

import (
	"context"
	"encoding/json"

	"ai-legaldoc-be/internal/pkg/logger"
	internalWS "ai-legaldoc-be/internal/websocket"
	"ai-legaldoc-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IEventRelayService drains the in-process event bus and forwards session
// events to the websocket hub.
type IEventRelayService interface {
	Consume(ctx context.Context) error
}

type eventRelayService struct {
	pubSub *gochannel.GoChannel
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewEventRelayService(pubSub *gochannel.GoChannel, hub *internalWS.Hub, log logger.ILogger) IEventRelayService {
	return &eventRelayService{
		pubSub: pubSub,
		hub:    hub,
		logger: log,
	}
}

func (s *eventRelayService) Consume(ctx context.Context) error {
	topics := []string{
		events.TopicAnalysisCompleted,
		events.TopicAnswerEscalated,
		events.TopicReportEmailed,
	}

	for _, topic := range topics {
		messages, err := s.pubSub.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		go func() {
			for msg := range messages {
				s.processMessage(msg)
			}
		}()
	}

	return nil
}

func (s *eventRelayService) processMessage(msg *message.Message) {
	var evt events.SessionEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		s.logger.Error("EventRelay", "Failed to unmarshal event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	s.logger.Info("EventRelay", "Session event", map[string]interface{}{
		"session_id": evt.SessionID,
		"type":       evt.Type,
		"data":       evt.Data,
	})

	s.hub.SendEvent(evt)
	msg.Ack()
}
