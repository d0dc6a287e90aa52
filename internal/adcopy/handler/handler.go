// Package handler exposes the ad copy generation HTTP endpoints.
package handler

import (
	"net/http"

	"leadflow_backend/internal/adcopy/service"
	"leadflow_backend/internal/adcopy/transport"
	"leadflow_backend/platform/httpkit"
	"leadflow_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidRequest = "invalid request body"
	errValidation     = "validation error"
)

type Handler struct {
	service *service.Service
	val     *validator.Validator
}

func New(service *service.Service, val *validator.Validator) *Handler {
	return &Handler{service: service, val: val}
}

// HandleGenerateHeadlines returns up to three ad headlines.
// POST /api/v1/ai/generate/headlines
func (h *Handler) HandleGenerateHeadlines(c *gin.Context) {
	req, ok := h.bindGenerateRequest(c)
	if !ok {
		return
	}

	headlines := h.service.Headlines(c.Request.Context(), req)
	httpkit.OK(c, transport.HeadlinesResponse{Headlines: headlines})
}

// HandleGenerateDescriptions returns templated ad descriptions.
// POST /api/v1/ai/generate/descriptions
func (h *Handler) HandleGenerateDescriptions(c *gin.Context) {
	req, ok := h.bindGenerateRequest(c)
	if !ok {
		return
	}

	httpkit.OK(c, transport.DescriptionsResponse{Descriptions: h.service.Descriptions(req)})
}

// HandleGenerateImages returns suggested creative image URLs.
// POST /api/v1/ai/generate/images
func (h *Handler) HandleGenerateImages(c *gin.Context) {
	httpkit.OK(c, transport.ImagesResponse{Images: h.service.Images()})
}

func (h *Handler) bindGenerateRequest(c *gin.Context) (transport.GenerateRequest, bool) {
	var req transport.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, errInvalidRequest, err.Error())
		return transport.GenerateRequest{}, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, errValidation, err.Error())
		return transport.GenerateRequest{}, false
	}
	return req, true
}
