package services

import (
	"context"
	"fmt"
	"log/slog"

	"conferenceassistant/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendSubmissionReceived sends the confirmation email using the "submission_received" template.
func (s *emailService) SendSubmissionReceived(ctx context.Context, data *domain.SubmissionReceivedEmailData) error {
	if data == nil {
		return fmt.Errorf("submission received data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("submission_received", data)
	if err != nil {
		return fmt.Errorf("failed to render submission_received template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send submission_received email: %w", err)
	}
	s.logger.InfoContext(ctx, "submission email sent", "submission_id", data.SubmissionID)
	return nil
}
