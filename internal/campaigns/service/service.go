// Package service implements the campaigns module's use cases: campaign
// lifecycle, publishing to the ad platform, and dashboard aggregates.
package service

import (
	"context"
	"errors"
	"sort"

	"leadflow_backend/internal/campaigns/repository"
	"leadflow_backend/internal/campaigns/transport"
	"leadflow_backend/internal/events"
	"leadflow_backend/platform/apperr"
	"leadflow_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// AdPlatform creates campaigns on the external ad platform.
type AdPlatform interface {
	CreateCampaign(ctx context.Context, name string) (string, error)
}

// LeadStatusCounter aggregates lead counts per status for a user's campaigns.
// Implemented by the leads repository.
type LeadStatusCounter interface {
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int, error)
}

type Service struct {
	repo       *repository.Repository
	adPlatform AdPlatform
	leadCounts LeadStatusCounter
	bus        events.Bus
	log        *logger.Logger
}

func New(repo *repository.Repository, adPlatform AdPlatform, leadCounts LeadStatusCounter, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		repo:       repo,
		adPlatform: adPlatform,
		leadCounts: leadCounts,
		bus:        bus,
		log:        log,
	}
}

// Create stores a new draft campaign for the user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req transport.CreateCampaignRequest) (transport.CampaignResponse, error) {
	campaign, err := s.repo.Create(ctx, repository.CreateCampaignParams{
		UserID:         userID,
		Name:           req.Name,
		Objective:      string(req.Objective),
		Industry:       req.Industry,
		TargetAudience: req.TargetAudience,
		Budget:         req.Budget,
	})
	if err != nil {
		s.log.DatabaseError("campaigns.create", err)
		return transport.CampaignResponse{}, apperr.Wrap(apperr.KindInternal, "failed to create campaign", err)
	}

	return toCampaignResponse(campaign), nil
}

// List returns the user's campaigns, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]transport.CampaignResponse, error) {
	campaigns, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.log.DatabaseError("campaigns.list", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list campaigns", err)
	}

	responses := make([]transport.CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		responses[i] = toCampaignResponse(c)
	}
	return responses, nil
}

// Get fetches one campaign owned by the user. Campaigns belonging to other
// users are reported as not found, never as forbidden.
func (s *Service) Get(ctx context.Context, userID, campaignID uuid.UUID) (transport.CampaignResponse, error) {
	campaign, err := s.getOwned(ctx, userID, campaignID)
	if err != nil {
		return transport.CampaignResponse{}, err
	}
	return toCampaignResponse(campaign), nil
}

// Publish creates the campaign on the ad platform, records the external id
// and activates the campaign.
func (s *Service) Publish(ctx context.Context, userID, campaignID uuid.UUID) (transport.PublishCampaignResponse, error) {
	campaign, err := s.getOwned(ctx, userID, campaignID)
	if err != nil {
		return transport.PublishCampaignResponse{}, err
	}

	if campaign.MetaCampaignID != nil {
		return transport.PublishCampaignResponse{}, apperr.Conflict("campaign is already published")
	}

	metaCampaignID, err := s.adPlatform.CreateCampaign(ctx, campaign.Name)
	if err != nil {
		s.log.Error("ad platform campaign creation failed", "campaign_id", campaignID, "error", err)
		return transport.PublishCampaignResponse{}, apperr.Wrap(apperr.KindUnavailable, "ad platform rejected campaign creation", err)
	}

	updated, err := s.repo.SetMetaCampaignID(ctx, campaignID, metaCampaignID)
	if err != nil {
		s.log.DatabaseError("campaigns.set_meta_campaign_id", err)
		return transport.PublishCampaignResponse{}, apperr.Wrap(apperr.KindInternal, "failed to record published campaign", err)
	}

	s.bus.Publish(ctx, events.CampaignPublished{
		BaseEvent:      events.NewBaseEvent(),
		CampaignID:     updated.ID,
		MetaCampaignID: metaCampaignID,
	})

	return transport.PublishCampaignResponse{
		Campaign:       toCampaignResponse(updated),
		MetaCampaignID: metaCampaignID,
	}, nil
}

// DashboardStats aggregates campaign status counts, lead status counts and
// total spend. The three queries run concurrently.
func (s *Service) DashboardStats(ctx context.Context, userID uuid.UUID) (transport.DashboardStatsResponse, error) {
	var (
		campaignCounts map[string]int
		leadCounts     map[string]int
		totalSpent     float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaignCounts, err = s.repo.CountByStatus(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		leadCounts, err = s.leadCounts.CountByStatus(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		totalSpent, err = s.repo.TotalSpent(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.DatabaseError("campaigns.dashboard_stats", err)
		return transport.DashboardStatsResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load dashboard stats", err)
	}

	return transport.DashboardStatsResponse{
		Campaigns:  toStatusCounts(campaignCounts),
		Leads:      toStatusCounts(leadCounts),
		TotalSpent: totalSpent,
	}, nil
}

func (s *Service) getOwned(ctx context.Context, userID, campaignID uuid.UUID) (repository.Campaign, error) {
	campaign, err := s.repo.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return repository.Campaign{}, apperr.NotFound("campaign not found")
		}
		s.log.DatabaseError("campaigns.get_by_id", err)
		return repository.Campaign{}, apperr.Wrap(apperr.KindInternal, "failed to load campaign", err)
	}
	if campaign.UserID != userID {
		return repository.Campaign{}, apperr.NotFound("campaign not found")
	}
	return campaign, nil
}

func toStatusCounts(counts map[string]int) []transport.StatusCount {
	out := make([]transport.StatusCount, 0, len(counts))
	for status, count := range counts {
		out = append(out, transport.StatusCount{Status: status, Count: count})
	}
	// Map iteration order is random; keep the payload stable.
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out
}

func toCampaignResponse(c repository.Campaign) transport.CampaignResponse {
	return transport.CampaignResponse{
		ID:             c.ID,
		Name:           c.Name,
		Objective:      c.Objective,
		Industry:       c.Industry,
		TargetAudience: c.TargetAudience,
		Budget:         c.Budget,
		Spent:          c.Spent,
		Status:         c.Status,
		LeadsCount:     c.LeadsCount,
		ConvertedCount: c.ConvertedCount,
		CTR:            c.CTR,
		ConversionRate: c.ConversionRate,
		MetaCampaignID: c.MetaCampaignID,
		MetaAdID:       c.MetaAdID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
