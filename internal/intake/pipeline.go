// Package intake implements the lead intake pipeline: it turns an inbound
// ad-platform webhook notification into a persisted, scored lead.
//
// The pipeline's response contract is fixed: the webhook sender always
// receives a success acknowledgment, whatever happens internally. The
// provider retries aggressively on any non-2xx response, so surfacing
// internal failures as webhook errors would trigger redelivery storms
// instead of recovery. Internal outcomes are observable through logs only.
package intake

import (
	"context"
	"errors"
	"time"

	"leadflow_backend/internal/events"
	"leadflow_backend/internal/leads/domain"
	"leadflow_backend/internal/leads/repository"
	"leadflow_backend/internal/leads/scoring"
	"leadflow_backend/internal/meta"
	"leadflow_backend/platform/logger"
	"leadflow_backend/platform/phone"
)

// Outcome classifies how a webhook delivery ended. Every outcome is
// acknowledged identically toward the sender.
type Outcome string

const (
	// OutcomePersisted means a new lead row was written and counted.
	OutcomePersisted Outcome = "persisted"
	// OutcomeDropped means the delivery was benignly discarded: the
	// envelope did not match or no campaign tracks the ad.
	OutcomeDropped Outcome = "dropped"
	// OutcomeFailed means an unexpected error stopped the pipeline.
	OutcomeFailed Outcome = "failed"
)

// Pipeline stages, used for logging failed deliveries.
const (
	stageVerify  = "verify"
	stageFetch   = "fetch"
	stageRoute   = "route"
	stagePersist = "persist"
)

// Drop reasons.
const (
	dropMalformedEnvelope  = "malformed_envelope"
	dropUnresolvedCampaign = "unresolved_campaign"
)

// Result describes the terminal state of one pipeline run.
type Result struct {
	Outcome Outcome
	Stage   string
	Reason  string
	Lead    *repository.Lead
}

// LeadFetcher retrieves full lead field data by leadgen event id.
// Satisfied by *meta.Client.
type LeadFetcher interface {
	FetchLeadDetail(ctx context.Context, leadgenID string) (meta.LeadDetail, error)
}

// LeadStore is the persistence boundary the pipeline writes through.
// Satisfied by *repository.Repository.
type LeadStore interface {
	FindCampaignByAdID(ctx context.Context, adID string) (repository.CampaignRef, error)
	CaptureLead(ctx context.Context, params repository.CreateLeadParams) (repository.Lead, error)
}

// Pipeline orchestrates one webhook delivery end to end. Runs are
// independent; concurrent deliveries share no state beyond the store.
type Pipeline struct {
	fetcher      LeadFetcher
	store        LeadStore
	scorer       scoring.Scorer
	bus          events.Bus
	log          *logger.Logger
	fetchTimeout time.Duration
}

// NewPipeline creates an intake pipeline. fetchTimeout bounds the one
// blocking external call so a provider outage cannot stall the webhook
// responder.
func NewPipeline(fetcher LeadFetcher, store LeadStore, scorer scoring.Scorer, bus events.Bus, log *logger.Logger, fetchTimeout time.Duration) *Pipeline {
	if fetchTimeout <= 0 {
		fetchTimeout = 8 * time.Second
	}
	return &Pipeline{
		fetcher:      fetcher,
		store:        store,
		scorer:       scorer,
		bus:          bus,
		log:          log,
		fetchTimeout: fetchTimeout,
	}
}

// Process runs the pipeline for one delivery:
// verify -> fetch -> normalize -> score -> route -> persist.
// It never returns an error; the caller acknowledges regardless.
func (p *Pipeline) Process(ctx context.Context, payload WebhookPayload) Result {
	leadgenID := payload.LeadgenID()
	if leadgenID == "" {
		p.log.WebhookDropped(dropMalformedEnvelope, "", "")
		return Result{Outcome: OutcomeDropped, Stage: stageVerify, Reason: dropMalformedEnvelope}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	defer cancel()

	detail, err := p.fetcher.FetchLeadDetail(fetchCtx, leadgenID)
	if err != nil {
		p.log.WebhookFailed(stageFetch, leadgenID, err)
		return Result{Outcome: OutcomeFailed, Stage: stageFetch}
	}

	// The hosting request may have gone away while we were fetching;
	// never persist a lead for a cancelled delivery.
	if ctx.Err() != nil {
		p.log.WebhookFailed(stageFetch, leadgenID, ctx.Err())
		return Result{Outcome: OutcomeFailed, Stage: stageFetch}
	}

	raw := make([]domain.Field, len(detail.FieldData))
	for i, f := range detail.FieldData {
		raw[i] = domain.Field{Name: f.Name, Values: f.Values}
	}
	lead := domain.Normalize(raw)
	score := p.scorer.Score(lead)

	campaign, err := p.store.FindCampaignByAdID(ctx, detail.AdID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			// No campaign tracks this ad. The lead is discarded, not
			// queued; many ad ids legitimately never map to a campaign.
			p.log.WebhookDropped(dropUnresolvedCampaign, leadgenID, detail.AdID)
			return Result{Outcome: OutcomeDropped, Stage: stageRoute, Reason: dropUnresolvedCampaign}
		}
		p.log.WebhookFailed(stageRoute, leadgenID, err)
		return Result{Outcome: OutcomeFailed, Stage: stageRoute}
	}

	persisted, err := p.store.CaptureLead(ctx, buildLeadParams(campaign, lead, score, detail))
	if err != nil {
		p.log.WebhookFailed(stagePersist, leadgenID, err)
		return Result{Outcome: OutcomeFailed, Stage: stagePersist}
	}

	p.log.LeadCaptured(persisted.ID.String(), campaign.ID.String(), score)

	p.bus.Publish(ctx, events.LeadCaptured{
		BaseEvent:    events.NewBaseEvent(),
		LeadID:       persisted.ID,
		CampaignID:   campaign.ID,
		CampaignName: campaign.Name,
		FullName:     lead.Value(domain.FieldFullName),
		Email:        lead.Value(domain.FieldEmail),
		Company:      lead.Value(domain.FieldCompanyName),
		LeadScore:    score,
	})

	return Result{Outcome: OutcomePersisted, Stage: stagePersist, Lead: &persisted}
}

func buildLeadParams(campaign repository.CampaignRef, lead domain.NormalizedLead, score int, detail meta.LeadDetail) repository.CreateLeadParams {
	params := repository.CreateLeadParams{
		CampaignID:    campaign.ID,
		Email:         lead.Ptr(domain.FieldEmail),
		Phone:         lead.Ptr(domain.FieldPhone),
		FullName:      lead.Ptr(domain.FieldFullName),
		FirstName:     lead.Ptr(domain.FieldFirstName),
		LastName:      lead.Ptr(domain.FieldLastName),
		CompanyName:   lead.Ptr(domain.FieldCompanyName),
		JobTitle:      lead.Ptr(domain.FieldJobTitle),
		CompanySize:   lead.Ptr(domain.FieldCompanySize),
		Industry:      lead.Ptr(domain.FieldIndustry),
		AnnualRevenue: lead.Ptr(domain.FieldAnnualRevenue),
		LeadScore:     score,
	}

	// Best-effort E.164 canonicalization; invalid numbers pass through as-is.
	if params.Phone != nil {
		normalized := phone.NormalizeE164(*params.Phone)
		params.Phone = &normalized
	}

	if detail.ID != "" {
		params.MetaLeadID = &detail.ID
	}
	if detail.FormID != "" {
		params.MetaFormID = &detail.FormID
	}
	if detail.AdID != "" {
		params.MetaAdID = &detail.AdID
	}

	return params
}
