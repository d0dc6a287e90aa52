// Package notification turns domain events into outbound notifications.
// Delivery is best effort: failures are logged and never propagate back to
// the publishing module.
package notification

import (
	"context"
	"fmt"

	"leadflow_backend/internal/email"
	"leadflow_backend/internal/events"
	"leadflow_backend/platform/config"
	"leadflow_backend/platform/logger"
)

// Module wires domain events to email notifications.
type Module struct {
	sender      email.Sender
	notifyEmail string
	log         *logger.Logger
}

// New creates the notification module.
func New(sender email.Sender, cfg config.NotificationConfig, log *logger.Logger) *Module {
	return &Module{
		sender:      sender,
		notifyEmail: cfg.GetLeadNotifyEmail(),
		log:         log,
	}
}

// RegisterHandlers subscribes the module to the events it reacts to.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadCaptured{}.EventName(), events.HandlerFunc(m.handleLeadCaptured))
}

func (m *Module) handleLeadCaptured(ctx context.Context, event events.Event) error {
	captured, ok := event.(events.LeadCaptured)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	if m.notifyEmail == "" {
		return nil
	}

	err := m.sender.SendLeadCapturedEmail(ctx, m.notifyEmail, email.LeadCapturedEmailData{
		LeadName:     captured.FullName,
		LeadEmail:    captured.Email,
		Company:      captured.Company,
		CampaignName: captured.CampaignName,
		LeadScore:    captured.LeadScore,
	})
	if err != nil {
		m.log.Error("lead notification email failed",
			"lead_id", captured.LeadID.String(),
			"error", err.Error(),
		)
	}
	return err
}
