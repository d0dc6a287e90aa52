// Package intake provides the lead intake bounded context module.
// This file defines the module that encapsulates pipeline setup and route
// registration.
package intake

import (
	"leadflow_backend/internal/events"
	apphttp "leadflow_backend/internal/http"
	"leadflow_backend/internal/leads/scoring"
	"leadflow_backend/platform/config"
	"leadflow_backend/platform/logger"
)

// Module is the intake bounded context module implementing http.Module.
type Module struct {
	handler  *Handler
	pipeline *Pipeline
}

// NewModule creates and initializes the intake module.
func NewModule(fetcher LeadFetcher, store LeadStore, cfg config.IntakeConfig, eventBus events.Bus, log *logger.Logger) *Module {
	pipeline := NewPipeline(fetcher, store, scoring.NewTierScorer(), eventBus, log, cfg.GetLeadFetchTimeout())
	handler := NewHandler(pipeline, cfg.GetMetaVerifyToken())

	return &Module{
		handler:  handler,
		pipeline: pipeline,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "intake"
}

// RegisterRoutes mounts the webhook routes. Both endpoints are public:
// the POST contract is always-acknowledge and the GET is the provider's
// subscription handshake.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/webhooks/meta/leads", m.handler.HandleWebhook)
	ctx.V1.GET("/webhooks/meta/leads", m.handler.HandleVerify)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
