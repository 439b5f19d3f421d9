package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	mail "github.com/wneessen/go-mail"

	"github.com/Revanth0912/Job-Select-AI/internal/config"
)

// Mailer sends interview-invitation emails. Delivery failures are returned
// to the caller, never retried here.
type Mailer interface {
	SendInterviewInvitation(ctx context.Context, recipient, candidateName, jobTitle, interviewDateTime string) error
}

type smtpMailer struct {
	cfg config.MailConfig
}

func NewMailer(cfg config.MailConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

// SendInterviewInvitation composes the fixed invitation template and
// submits it over an authenticated STARTTLS connection. Each call dials a
// fresh connection.
func (m *smtpMailer) SendInterviewInvitation(ctx context.Context, recipient, candidateName, jobTitle, interviewDateTime string) error {
	if m.cfg.SenderEmail == "" || m.cfg.SenderPassword == "" {
		return fmt.Errorf("mail sender credentials not configured")
	}

	subject, body := ComposeInvitation(m.cfg.CompanyName, candidateName, jobTitle, interviewDateTime)

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.CompanyName, m.cfg.SenderEmail); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.SenderEmail),
		mail.WithPassword(m.cfg.SenderPassword),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Error().Err(err).Str("recipient", recipient).Msg("interview email failed")
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("recipient", recipient).Str("job_title", jobTitle).Msg("interview email sent")
	return nil
}

// ComposeInvitation renders the invitation subject and plain-text body.
func ComposeInvitation(companyName, candidateName, jobTitle, interviewDateTime string) (subject, body string) {
	subject = fmt.Sprintf("%s Interview Invitation for %s", companyName, jobTitle)
	body = fmt.Sprintf(`Dear %s,

We're pleased to invite you for an interview regarding your application for %s.

Interview Date: %s

Location: Virtual (Zoom)
Meeting Link: https://zoom.us/j/1234567890

Please prepare:
- Your professional background
- Any questions about the role

Best regards,
%s HR Team`, candidateName, jobTitle, interviewDateTime, companyName)
	return subject, body
}
