// Package transport defines the wire-level DTOs for the leads module.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus enumerates the lifecycle states of a lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

// UpdateLeadStatusRequest is the body for PUT /leads/:id/status.
type UpdateLeadStatusRequest struct {
	Status LeadStatus `json:"status" validate:"required,oneof=new contacted qualified converted lost"`
}

// LeadResponse is the JSON representation of a lead.
type LeadResponse struct {
	ID            uuid.UUID `json:"id"`
	CampaignID    uuid.UUID `json:"campaignId"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	FullName      *string   `json:"fullName,omitempty"`
	FirstName     *string   `json:"firstName,omitempty"`
	LastName      *string   `json:"lastName,omitempty"`
	CompanyName   *string   `json:"companyName,omitempty"`
	JobTitle      *string   `json:"jobTitle,omitempty"`
	CompanySize   *string   `json:"companySize,omitempty"`
	Industry      *string   `json:"industry,omitempty"`
	AnnualRevenue *string   `json:"annualRevenue,omitempty"`
	LeadScore     int       `json:"leadScore"`
	LeadStatus    string    `json:"leadStatus"`
	MetaLeadID    *string   `json:"metaLeadId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
