package mapper

import (
	"ai-legaldoc-be/internal/dto"
	"ai-legaldoc-be/internal/entity"
)

// NeedsEscalation reports whether a message's confidence is below the
// threshold. Pure function of the stored confidence; evaluated on every
// read. Exactly-at-threshold does not escalate.
func NeedsEscalation(m entity.Message, threshold int) bool {
	return m.Confidence != nil && *m.Confidence < threshold
}

func ToChatMessageDTO(m entity.Message, threshold int) *dto.ChatMessageDTO {
	return &dto.ChatMessageDTO{
		Id:             m.ID,
		Role:           string(m.Role),
		Text:           m.Text,
		Confidence:     m.Confidence,
		ConsultWarning: NeedsEscalation(m, threshold),
		CreatedAt:      m.CreatedAt,
	}
}

func ToChatHistory(messages []entity.Message, threshold int) []*dto.ChatMessageDTO {
	out := make([]*dto.ChatMessageDTO, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToChatMessageDTO(m, threshold))
	}
	return out
}
