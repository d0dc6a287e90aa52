package notification

import (
	"context"
	"errors"
	"testing"

	"leadflow_backend/internal/email"
	"leadflow_backend/internal/events"
	"leadflow_backend/platform/logger"

	"github.com/google/uuid"
)

type recordingSender struct {
	sent []email.LeadCapturedEmailData
	to   []string
	err  error
}

func (s *recordingSender) SendLeadCapturedEmail(_ context.Context, toEmail string, data email.LeadCapturedEmailData) error {
	s.to = append(s.to, toEmail)
	s.sent = append(s.sent, data)
	return s.err
}

type testNotificationConfig struct {
	notifyEmail string
}

func (c testNotificationConfig) GetLeadNotifyEmail() string { return c.notifyEmail }

func capturedEvent() events.LeadCaptured {
	return events.LeadCaptured{
		BaseEvent:    events.NewBaseEvent(),
		LeadID:       uuid.New(),
		CampaignID:   uuid.New(),
		CampaignName: "Acme Launch",
		FullName:     "Jane Doe",
		Email:        "jane@acme.test",
		Company:      "Acme",
		LeadScore:    95,
	}
}

func TestHandleLeadCaptured_SendsNotification(t *testing.T) {
	sender := &recordingSender{}
	module := New(sender, testNotificationConfig{notifyEmail: "sales@leadflow.test"}, logger.New("development"))

	bus := events.NewInMemoryBus(logger.New("development"))
	module.RegisterHandlers(bus)

	if err := bus.PublishSync(context.Background(), capturedEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(sender.sent))
	}
	if sender.to[0] != "sales@leadflow.test" {
		t.Fatalf("email sent to wrong recipient: %s", sender.to[0])
	}
	if sender.sent[0].CampaignName != "Acme Launch" || sender.sent[0].LeadScore != 95 {
		t.Fatalf("unexpected email payload: %+v", sender.sent[0])
	}
}

func TestHandleLeadCaptured_SkipsWhenNoRecipientConfigured(t *testing.T) {
	sender := &recordingSender{}
	module := New(sender, testNotificationConfig{}, logger.New("development"))

	bus := events.NewInMemoryBus(logger.New("development"))
	module.RegisterHandlers(bus)

	if err := bus.PublishSync(context.Background(), capturedEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("expected no email without configured recipient, got %d", len(sender.sent))
	}
}

func TestHandleLeadCaptured_DeliveryFailureIsReturnedButNotFatal(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	module := New(sender, testNotificationConfig{notifyEmail: "sales@leadflow.test"}, logger.New("development"))

	bus := events.NewInMemoryBus(logger.New("development"))
	module.RegisterHandlers(bus)

	// Synchronous publish surfaces the error; the async path only logs it.
	if err := bus.PublishSync(context.Background(), capturedEvent()); err == nil {
		t.Fatal("expected delivery error to propagate through PublishSync")
	}
}
