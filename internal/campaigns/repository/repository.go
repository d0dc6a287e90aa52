// Package repository provides Postgres persistence for campaigns.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrCampaignNotFound is returned when a campaign id does not resolve.
var ErrCampaignNotFound = errors.New("campaign not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Campaign is the persisted campaign row.
type Campaign struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Objective      string
	Industry       string
	TargetAudience string
	Budget         float64
	Spent          float64
	Status         string
	LeadsCount     int
	ConvertedCount int
	CTR            float64
	ConversionRate float64
	MetaCampaignID *string
	MetaAdID       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateCampaignParams carries the fields for a new campaign row.
// Status is not part of the params: new rows always start as "draft".
type CreateCampaignParams struct {
	UserID         uuid.UUID
	Name           string
	Objective      string
	Industry       string
	TargetAudience string
	Budget         float64
}

const campaignColumns = `id, user_id, name, objective, industry, target_audience, budget, spent,
		status, leads_count, converted_count, ctr, conversion_rate,
		meta_campaign_id, meta_ad_id, created_at, updated_at`

func scanCampaign(row pgx.Row) (Campaign, error) {
	var c Campaign
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Objective, &c.Industry, &c.TargetAudience, &c.Budget, &c.Spent,
		&c.Status, &c.LeadsCount, &c.ConvertedCount, &c.CTR, &c.ConversionRate,
		&c.MetaCampaignID, &c.MetaAdID, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create inserts a new draft campaign and returns the stored row.
func (r *Repository) Create(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (user_id, name, objective, industry, target_audience, budget, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'draft')
		RETURNING `+campaignColumns,
		params.UserID, params.Name, params.Objective, params.Industry, params.TargetAudience, params.Budget,
	)
	return scanCampaign(row)
}

// ListByUser returns the user's campaigns, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}

	return campaigns, rows.Err()
}

// GetByID fetches a single campaign row.
func (r *Repository) GetByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE id = $1
	`, campaignID)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Campaign{}, ErrCampaignNotFound
	}
	if err != nil {
		return Campaign{}, err
	}
	return c, nil
}

// SetMetaCampaignID records the ad platform's campaign id after a publish
// and moves the campaign from draft to active.
func (r *Repository) SetMetaCampaignID(ctx context.Context, campaignID uuid.UUID, metaCampaignID string) (Campaign, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE campaigns
		SET meta_campaign_id = $2, status = 'active', updated_at = now()
		WHERE id = $1
		RETURNING `+campaignColumns,
		campaignID, metaCampaignID,
	)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Campaign{}, ErrCampaignNotFound
	}
	if err != nil {
		return Campaign{}, err
	}
	return c, nil
}

// CountByStatus aggregates the user's campaigns per lifecycle status.
func (r *Repository) CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*)
		FROM campaigns
		WHERE user_id = $1
		GROUP BY status
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

// TotalSpent sums ad spend across all of the user's campaigns.
func (r *Repository) TotalSpent(ctx context.Context, userID uuid.UUID) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(spent), 0)
		FROM campaigns
		WHERE user_id = $1
	`, userID).Scan(&total)
	return total, err
}

// ListActiveWithMetaID returns active campaigns that have been published to
// the ad platform. The metrics refresher iterates these.
func (r *Repository) ListActiveWithMetaID(ctx context.Context) ([]Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE status = 'active' AND meta_campaign_id IS NOT NULL
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}

	return campaigns, rows.Err()
}

// UpdateDerivedMetrics stores the latest refreshed performance figures.
func (r *Repository) UpdateDerivedMetrics(ctx context.Context, campaignID uuid.UUID, ctr, spent, conversionRate float64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE campaigns
		SET ctr = $2, spent = $3, conversion_rate = $4, updated_at = now()
		WHERE id = $1
	`, campaignID, ctr, spent, conversionRate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCampaignNotFound
	}
	return nil
}
