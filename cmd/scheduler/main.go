package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadflow_backend/internal/meta"
	"leadflow_backend/internal/scheduler"
	"leadflow_backend/platform/config"
	"leadflow_backend/platform/db"
	"leadflow_backend/platform/logger"
)

// The scheduler binary runs the asynq worker plus a ticker that enqueues a
// metrics sweep every refresh interval. It shares the database and Redis
// with the API process but serves no HTTP traffic.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env)

	if cfg.GetRedisURL() == "" {
		panic("REDIS_URL is required for the scheduler")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	metaClient := meta.New(cfg, log)

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize scheduler client", "error", err)
		panic("failed to initialize scheduler client: " + err.Error())
	}
	defer client.Close()

	worker, err := scheduler.NewWorker(cfg, pool, metaClient, client, log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	go runRefreshTicker(ctx, client, cfg.GetMetricsRefreshInterval(), log)

	worker.Run(ctx)
	log.Info("scheduler stopped")
}

func runRefreshTicker(ctx context.Context, client *scheduler.Client, interval time.Duration, log *logger.Logger) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	// Kick off one sweep at startup so fresh deployments don't wait a full
	// interval for their first metrics.
	if err := client.EnqueueMetricsRefreshAll(ctx); err != nil {
		log.Error("failed to enqueue metrics refresh", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.EnqueueMetricsRefreshAll(ctx); err != nil {
				log.Error("failed to enqueue metrics refresh", "error", err)
			}
		}
	}
}
