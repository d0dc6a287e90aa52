// Package transport defines the request and response shapes of the campaigns
// HTTP surface.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// CampaignObjective enumerates the supported campaign goals.
type CampaignObjective string

const (
	ObjectiveLeadGeneration CampaignObjective = "lead_generation"
	ObjectiveBrandAwareness CampaignObjective = "brand_awareness"
	ObjectiveConversions    CampaignObjective = "conversions"
	ObjectiveTraffic        CampaignObjective = "traffic"
)

// CampaignStatus enumerates the campaign lifecycle states.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
)

// CreateCampaignRequest is the payload for creating a new campaign.
// New campaigns always start in draft.
type CreateCampaignRequest struct {
	Name           string            `json:"name" validate:"required,max=200"`
	Objective      CampaignObjective `json:"objective" validate:"required,oneof=lead_generation brand_awareness conversions traffic"`
	Industry       string            `json:"industry" validate:"required,max=100"`
	TargetAudience string            `json:"targetAudience" validate:"required,max=500"`
	Budget         float64           `json:"budget" validate:"gte=0"`
}

// CampaignResponse is the API representation of a campaign.
type CampaignResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Objective      string    `json:"objective"`
	Industry       string    `json:"industry"`
	TargetAudience string    `json:"targetAudience"`
	Budget         float64   `json:"budget"`
	Spent          float64   `json:"spent"`
	Status         string    `json:"status"`
	LeadsCount     int       `json:"leadsCount"`
	ConvertedCount int       `json:"convertedCount"`
	CTR            float64   `json:"ctr"`
	ConversionRate float64   `json:"conversionRate"`
	MetaCampaignID *string   `json:"metaCampaignId,omitempty"`
	MetaAdID       *string   `json:"metaAdId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PublishCampaignResponse reports the ad platform id assigned on publish.
type PublishCampaignResponse struct {
	Campaign       CampaignResponse `json:"campaign"`
	MetaCampaignID string           `json:"metaCampaignId"`
}

// StatusCount is one status bucket in the dashboard aggregates.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardStatsResponse aggregates campaign and lead status counts plus
// total ad spend across the caller's campaigns.
type DashboardStatsResponse struct {
	Campaigns  []StatusCount `json:"campaigns"`
	Leads      []StatusCount `json:"leads"`
	TotalSpent float64       `json:"totalSpent"`
}
