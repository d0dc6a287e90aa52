// Package service implements the leads module's use cases on top of the
// repository.
package service

import (
	"context"
	"errors"

	"leadflow_backend/internal/events"
	"leadflow_backend/internal/leads/repository"
	"leadflow_backend/internal/leads/transport"
	"leadflow_backend/platform/apperr"
	"leadflow_backend/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	repo *repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

func New(repo *repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

// ListByCampaign returns all leads of one of the user's campaigns, newest
// first. Campaigns owned by other users resolve as not found.
func (s *Service) ListByCampaign(ctx context.Context, campaignID, userID uuid.UUID) ([]transport.LeadResponse, error) {
	leads, err := s.repo.ListByCampaign(ctx, campaignID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, apperr.NotFound("campaign not found")
		}
		s.log.DatabaseError("leads.list_by_campaign", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list leads", err)
	}

	responses := make([]transport.LeadResponse, len(leads))
	for i, lead := range leads {
		responses[i] = toLeadResponse(lead)
	}
	return responses, nil
}

// UpdateStatus applies an explicit status change to a lead. Moving a lead to
// "converted" also bumps the owning campaign's converted counter; that
// counter mutation is the only campaign write this operation performs.
func (s *Service) UpdateStatus(ctx context.Context, leadID, userID uuid.UUID, status transport.LeadStatus) (transport.LeadResponse, error) {
	lead, oldStatus, err := s.repo.UpdateStatus(ctx, leadID, userID, string(status))
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return transport.LeadResponse{}, apperr.NotFound("lead not found")
		}
		s.log.DatabaseError("leads.update_status", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to update lead status", err)
	}

	if status == transport.LeadStatusConverted && oldStatus != string(transport.LeadStatusConverted) {
		if err := s.repo.IncrementConvertedCount(ctx, lead.CampaignID); err != nil {
			// Counter drift is tolerated here; the status change itself stands.
			s.log.DatabaseError("leads.increment_converted_count", err)
		}
	}

	if oldStatus != string(status) {
		s.bus.Publish(ctx, events.LeadStatusChanged{
			BaseEvent:  events.NewBaseEvent(),
			LeadID:     lead.ID,
			CampaignID: lead.CampaignID,
			OldStatus:  oldStatus,
			NewStatus:  string(status),
		})
	}

	return toLeadResponse(lead), nil
}

func toLeadResponse(lead repository.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:            lead.ID,
		CampaignID:    lead.CampaignID,
		Email:         lead.Email,
		Phone:         lead.Phone,
		FullName:      lead.FullName,
		FirstName:     lead.FirstName,
		LastName:      lead.LastName,
		CompanyName:   lead.CompanyName,
		JobTitle:      lead.JobTitle,
		CompanySize:   lead.CompanySize,
		Industry:      lead.Industry,
		AnnualRevenue: lead.AnnualRevenue,
		LeadScore:     lead.LeadScore,
		LeadStatus:    lead.LeadStatus,
		MetaLeadID:    lead.MetaLeadID,
		CreatedAt:     lead.CreatedAt,
	}
}
