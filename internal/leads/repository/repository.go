// Package repository provides Postgres persistence for leads and the
// campaign lookups the intake pipeline needs.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrLeadNotFound is returned when a lead id does not resolve.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrCampaignNotFound is returned when no campaign matches a lookup.
	// For ad-id routing this is a normal outcome, not a failure.
	ErrCampaignNotFound = errors.New("campaign not found")
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Lead is the persisted lead row.
type Lead struct {
	ID            uuid.UUID
	CampaignID    uuid.UUID
	Email         *string
	Phone         *string
	FullName      *string
	FirstName     *string
	LastName      *string
	CompanyName   *string
	JobTitle      *string
	CompanySize   *string
	Industry      *string
	AnnualRevenue *string
	LeadScore     int
	LeadStatus    string
	MetaLeadID    *string
	MetaFormID    *string
	MetaAdID      *string
	CreatedAt     time.Time
}

// CampaignRef is the minimal campaign projection used to route inbound leads.
type CampaignRef struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
}

// CreateLeadParams carries the fields for a new lead row. LeadStatus is not
// part of the params on purpose: new rows always start as "new".
type CreateLeadParams struct {
	CampaignID    uuid.UUID
	Email         *string
	Phone         *string
	FullName      *string
	FirstName     *string
	LastName      *string
	CompanyName   *string
	JobTitle      *string
	CompanySize   *string
	Industry      *string
	AnnualRevenue *string
	LeadScore     int
	MetaLeadID    *string
	MetaFormID    *string
	MetaAdID      *string
}

const leadColumns = `id, campaign_id, email, phone, full_name, first_name, last_name,
		company_name, job_title, company_size, industry, annual_revenue,
		lead_score, lead_status, meta_lead_id, meta_form_id, meta_ad_id, created_at`

// FindCampaignByAdID resolves the campaign owning the given external ad id.
// Returns ErrCampaignNotFound when no campaign tracks that ad.
func (r *Repository) FindCampaignByAdID(ctx context.Context, adID string) (CampaignRef, error) {
	var ref CampaignRef
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name
		FROM campaigns
		WHERE meta_ad_id = $1
	`, adID).Scan(&ref.ID, &ref.UserID, &ref.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return CampaignRef{}, ErrCampaignNotFound
	}
	if err != nil {
		return CampaignRef{}, err
	}
	return ref, nil
}

// IncrementConvertedCount bumps the campaign's conversion counter by one.
// The addition happens server-side so concurrent status updates for the
// same campaign cannot lose updates.
func (r *Repository) IncrementConvertedCount(ctx context.Context, campaignID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE campaigns
		SET converted_count = converted_count + 1, updated_at = now()
		WHERE id = $1
	`, campaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

// CaptureLead inserts the lead and increments the owning campaign's counter
// in a single transaction, so a failed increment never strands a lead row
// (and vice versa).
func (r *Repository) CaptureLead(ctx context.Context, params CreateLeadParams) (Lead, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Lead{}, err
	}
	defer tx.Rollback(ctx)

	lead, err := r.insertLead(ctx, tx, params)
	if err != nil {
		return Lead{}, err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE campaigns
		SET leads_count = leads_count + 1, updated_at = now()
		WHERE id = $1
	`, params.CampaignID)
	if err != nil {
		return Lead{}, err
	}
	if tag.RowsAffected() == 0 {
		return Lead{}, ErrCampaignNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return Lead{}, err
	}
	return lead, nil
}

type execQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *Repository) insertLead(ctx context.Context, q execQuerier, params CreateLeadParams) (Lead, error) {
	var lead Lead
	err := q.QueryRow(ctx, `
		INSERT INTO leads (
			campaign_id, email, phone, full_name, first_name, last_name,
			company_name, job_title, company_size, industry, annual_revenue,
			lead_score, lead_status, meta_lead_id, meta_form_id, meta_ad_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'new', $13, $14, $15)
		RETURNING `+leadColumns,
		params.CampaignID, params.Email, params.Phone, params.FullName, params.FirstName, params.LastName,
		params.CompanyName, params.JobTitle, params.CompanySize, params.Industry, params.AnnualRevenue,
		params.LeadScore, params.MetaLeadID, params.MetaFormID, params.MetaAdID,
	).Scan(
		&lead.ID, &lead.CampaignID, &lead.Email, &lead.Phone, &lead.FullName, &lead.FirstName, &lead.LastName,
		&lead.CompanyName, &lead.JobTitle, &lead.CompanySize, &lead.Industry, &lead.AnnualRevenue,
		&lead.LeadScore, &lead.LeadStatus, &lead.MetaLeadID, &lead.MetaFormID, &lead.MetaAdID, &lead.CreatedAt,
	)
	if err != nil {
		return Lead{}, err
	}
	return lead, nil
}

// ListByCampaign returns all leads for a campaign owned by the given user,
// newest first. Campaigns belonging to other users resolve as not found.
func (r *Repository) ListByCampaign(ctx context.Context, campaignID, userID uuid.UUID) ([]Lead, error) {
	var owned bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1 AND user_id = $2)
	`, campaignID, userID).Scan(&owned)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrCampaignNotFound
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		WHERE campaign_id = $1
		ORDER BY created_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(
			&lead.ID, &lead.CampaignID, &lead.Email, &lead.Phone, &lead.FullName, &lead.FirstName, &lead.LastName,
			&lead.CompanyName, &lead.JobTitle, &lead.CompanySize, &lead.Industry, &lead.AnnualRevenue,
			&lead.LeadScore, &lead.LeadStatus, &lead.MetaLeadID, &lead.MetaFormID, &lead.MetaAdID, &lead.CreatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return leads, nil
}

// UpdateStatus sets a lead's status and returns the previous value. The lead
// must belong to a campaign owned by the given user; otherwise not found.
func (r *Repository) UpdateStatus(ctx context.Context, leadID, userID uuid.UUID, status string) (Lead, string, error) {
	var lead Lead
	var oldStatus string
	err := r.pool.QueryRow(ctx, `
		UPDATE leads new_row
		SET lead_status = $2
		FROM (
			SELECT l.id, l.lead_status
			FROM leads l
			JOIN campaigns c ON c.id = l.campaign_id
			WHERE l.id = $1 AND c.user_id = $3
			FOR UPDATE OF l
		) old_row
		WHERE new_row.id = old_row.id
		RETURNING new_row.id, new_row.campaign_id, new_row.email, new_row.phone, new_row.full_name,
			new_row.first_name, new_row.last_name, new_row.company_name, new_row.job_title,
			new_row.company_size, new_row.industry, new_row.annual_revenue, new_row.lead_score,
			new_row.lead_status, new_row.meta_lead_id, new_row.meta_form_id, new_row.meta_ad_id,
			new_row.created_at, old_row.lead_status
	`, leadID, status, userID).Scan(
		&lead.ID, &lead.CampaignID, &lead.Email, &lead.Phone, &lead.FullName, &lead.FirstName, &lead.LastName,
		&lead.CompanyName, &lead.JobTitle, &lead.CompanySize, &lead.Industry, &lead.AnnualRevenue,
		&lead.LeadScore, &lead.LeadStatus, &lead.MetaLeadID, &lead.MetaFormID, &lead.MetaAdID, &lead.CreatedAt,
		&oldStatus,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, "", ErrLeadNotFound
	}
	if err != nil {
		return Lead{}, "", err
	}
	return lead, oldStatus, nil
}

// CountByStatus aggregates lead counts per status across all campaigns owned
// by the given user. Used by the dashboard stats endpoint.
func (r *Repository) CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lead_status, COUNT(*)
		FROM leads
		WHERE campaign_id IN (SELECT id FROM campaigns WHERE user_id = $1)
		GROUP BY lead_status
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
