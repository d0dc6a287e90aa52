// Package adcopy provides the ad copy generation bounded context module.
package adcopy

import (
	"context"

	"leadflow_backend/internal/adcopy/handler"
	"leadflow_backend/internal/adcopy/service"
	apphttp "leadflow_backend/internal/http"
	"leadflow_backend/platform/config"
	"leadflow_backend/platform/logger"
	"leadflow_backend/platform/validator"
)

// Module is the ad copy bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the ad copy module. When no Gemini API
// key is configured the module serves static fallback copy only.
func NewModule(ctx context.Context, cfg config.AdCopyConfig, val *validator.Validator, log *logger.Logger) *Module {
	var gen service.TextGenerator
	if cfg.IsAdCopyAIEnabled() {
		gemini, err := service.NewGeminiGenerator(ctx, cfg)
		if err != nil {
			log.Warn("gemini client unavailable, ad copy falls back to static templates", "error", err.Error())
		} else {
			gen = gemini
		}
	}

	svc := service.New(gen, log)
	h := handler.New(svc, val)

	return &Module{handler: h}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "adcopy"
}

// RegisterRoutes mounts ad copy routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/ai/generate/headlines", m.handler.HandleGenerateHeadlines)
	ctx.Protected.POST("/ai/generate/descriptions", m.handler.HandleGenerateDescriptions)
	ctx.Protected.POST("/ai/generate/images", m.handler.HandleGenerateImages)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
