package scheduler

import (
	"context"
	"errors"
	"fmt"

	"leadflow_backend/internal/campaigns/repository"
	"leadflow_backend/internal/meta"
	"leadflow_backend/platform/config"
	"leadflow_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InsightsFetcher reads campaign performance from the ad platform.
// Implemented by the meta client.
type InsightsFetcher interface {
	CampaignInsights(ctx context.Context, metaCampaignID string) (meta.Insights, error)
}

// RefreshEnqueuer schedules single-campaign refresh tasks. Implemented by Client.
type RefreshEnqueuer interface {
	EnqueueCampaignMetricsRefresh(ctx context.Context, payload CampaignMetricsRefreshPayload) error
}

type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	repo     *repository.Repository
	insights InsightsFetcher
	enqueuer RefreshEnqueuer
	log      *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, pool *pgxpool.Pool, insights InsightsFetcher, enqueuer RefreshEnqueuer, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:   server,
		mux:      mux,
		repo:     repository.New(pool),
		insights: insights,
		enqueuer: enqueuer,
		log:      log,
	}

	mux.HandleFunc(TaskCampaignMetricsRefreshAll, w.handleMetricsRefreshAll)
	mux.HandleFunc(TaskCampaignMetricsRefresh, w.handleMetricsRefresh)

	return w, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

// handleMetricsRefreshAll fans out one refresh task per active published
// campaign. An enqueue failure on one campaign is logged and does not stop
// the sweep; the individual tasks retry independently via asynq.
func (w *Worker) handleMetricsRefreshAll(ctx context.Context, _ *asynq.Task) error {
	campaigns, err := w.repo.ListActiveWithMetaID(ctx)
	if err != nil {
		return err
	}

	for _, campaign := range campaigns {
		payload := CampaignMetricsRefreshPayload{CampaignID: campaign.ID.String()}
		if err := w.enqueuer.EnqueueCampaignMetricsRefresh(ctx, payload); err != nil {
			w.log.Error("failed to enqueue campaign metrics refresh",
				"campaign_id", campaign.ID.String(),
				"error", err.Error(),
			)
		}
	}

	return nil
}

func (w *Worker) handleMetricsRefresh(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseCampaignMetricsRefreshPayload(task)
	if err != nil {
		return err
	}

	campaignID, err := uuid.Parse(payload.CampaignID)
	if err != nil {
		return err
	}

	campaign, err := w.repo.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil
		}
		return err
	}

	return w.refreshCampaign(ctx, campaign)
}

func (w *Worker) refreshCampaign(ctx context.Context, campaign repository.Campaign) error {
	if campaign.MetaCampaignID == nil {
		return nil
	}

	insights, err := w.insights.CampaignInsights(ctx, *campaign.MetaCampaignID)
	if err != nil {
		return fmt.Errorf("fetch insights: %w", err)
	}

	conversionRate := 0.0
	if campaign.LeadsCount > 0 {
		conversionRate = float64(campaign.ConvertedCount) / float64(campaign.LeadsCount) * 100
	}

	return w.repo.UpdateDerivedMetrics(ctx, campaign.ID, insights.CTR, insights.Spend, conversionRate)
}
