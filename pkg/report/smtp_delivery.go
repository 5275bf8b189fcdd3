package report

import (
	"context"
	"fmt"

	"ai-legaldoc-be/internal/entity"
	"ai-legaldoc-be/internal/pkg/mailer"
)

// SMTPDelivery sends the report directly over SMTP instead of going through
// an external delivery engine. Selected via REPORT_DELIVERY=smtp.
type SMTPDelivery struct {
	email mailer.IEmailService
}

var _ Delivery = &SMTPDelivery{}

func NewSMTPDelivery(email mailer.IEmailService) *SMTPDelivery {
	return &SMTPDelivery{email: email}
}

func (d *SMTPDelivery) Send(_ context.Context, req *SendRequest) error {
	body := PlainText(&entity.AnalysisRecord{
		DocumentName: req.DocumentName,
		Summary:      req.Summary,
		Risks:        req.Risks,
	})

	if err := d.email.SendReport(req.Email, req.DocumentName, body); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}
