package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SubmissionReceivedEmailData holds data for the submission confirmation email.
type SubmissionReceivedEmailData struct {
	Email           string
	SpeakerName     string
	TalkTitle       string
	Tracks          []string
	SubmissionID    string
	SecretHash      string
	ConferenceTitle string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendSubmissionReceived(ctx context.Context, data *SubmissionReceivedEmailData) error
}
