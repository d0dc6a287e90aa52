// Package email delivers transactional email over SMTP using go-mail.
package email

import (
	"context"

	"leadflow_backend/platform/config"
)

// LeadCapturedEmailData carries the lead summary rendered into the
// notification email.
type LeadCapturedEmailData struct {
	LeadName     string
	LeadEmail    string
	Company      string
	CampaignName string
	LeadScore    int
}

// Sender delivers the application's transactional emails.
type Sender interface {
	SendLeadCapturedEmail(ctx context.Context, toEmail string, data LeadCapturedEmailData) error
}

// NewSender returns an SMTP-backed sender, or a no-op sender when SMTP is
// not configured so the rest of the application never has to nil-check.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.IsEmailEnabled() {
		return NoopSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}

// NoopSender discards all email. Used when SMTP is not configured.
type NoopSender struct{}

func (NoopSender) SendLeadCapturedEmail(context.Context, string, LeadCapturedEmailData) error {
	return nil
}
