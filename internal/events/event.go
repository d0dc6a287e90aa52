// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"leadflow_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus is re-exported so modules can construct the default bus
// without importing the platform package directly.
var NewInMemoryBus = events.NewInMemoryBus

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCaptured is published when the intake pipeline persists a new lead.
type LeadCaptured struct {
	BaseEvent
	LeadID       uuid.UUID `json:"leadId"`
	CampaignID   uuid.UUID `json:"campaignId"`
	CampaignName string    `json:"campaignName"`
	FullName     string    `json:"fullName,omitempty"`
	Email        string    `json:"email,omitempty"`
	Company      string    `json:"company,omitempty"`
	LeadScore    int       `json:"leadScore"`
}

func (e LeadCaptured) EventName() string { return "leads.lead.captured" }

// LeadStatusChanged is published when a user updates a lead's status.
type LeadStatusChanged struct {
	BaseEvent
	LeadID     uuid.UUID `json:"leadId"`
	CampaignID uuid.UUID `json:"campaignId"`
	OldStatus  string    `json:"oldStatus"`
	NewStatus  string    `json:"newStatus"`
}

func (e LeadStatusChanged) EventName() string { return "leads.status.changed" }

// =============================================================================
// Campaigns Domain Events
// =============================================================================

// CampaignPublished is published when a campaign is created on the ad platform.
type CampaignPublished struct {
	BaseEvent
	CampaignID     uuid.UUID `json:"campaignId"`
	MetaCampaignID string    `json:"metaCampaignId"`
}

func (e CampaignPublished) EventName() string { return "campaigns.published" }
