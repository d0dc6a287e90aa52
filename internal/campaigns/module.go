// Package campaigns provides the campaigns bounded context module: campaign
// lifecycle, ad platform publishing and dashboard aggregates.
package campaigns

import (
	"leadflow_backend/internal/campaigns/handler"
	"leadflow_backend/internal/campaigns/repository"
	"leadflow_backend/internal/campaigns/service"
	"leadflow_backend/internal/events"
	apphttp "leadflow_backend/internal/http"
	"leadflow_backend/platform/logger"
	"leadflow_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the campaigns bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the campaigns module.
func NewModule(pool *pgxpool.Pool, adPlatform service.AdPlatform, leadCounts service.LeadStatusCounter, eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, adPlatform, leadCounts, eventBus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "campaigns"
}

// RegisterRoutes mounts campaign routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/campaigns", m.handler.HandleCreateCampaign)
	ctx.Protected.GET("/campaigns", m.handler.HandleListCampaigns)
	ctx.Protected.GET("/campaigns/:id", m.handler.HandleGetCampaign)
	ctx.Protected.POST("/campaigns/:id/publish", m.handler.HandlePublishCampaign)
	ctx.Protected.GET("/dashboard/stats", m.handler.HandleDashboardStats)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
