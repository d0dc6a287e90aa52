// Package handler exposes the campaigns module's HTTP endpoints.
package handler

import (
	"net/http"

	"leadflow_backend/internal/campaigns/service"
	"leadflow_backend/internal/campaigns/transport"
	"leadflow_backend/platform/httpkit"
	"leadflow_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	errInvalidRequest    = "invalid request body"
	errValidation        = "validation error"
	errInvalidCampaignID = "invalid campaign ID"
	errMissingUser       = "missing authenticated user"
)

type Handler struct {
	service *service.Service
	val     *validator.Validator
}

func New(service *service.Service, val *validator.Validator) *Handler {
	return &Handler{service: service, val: val}
}

// HandleCreateCampaign stores a new draft campaign.
// POST /api/v1/campaigns
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	userID, ok := httpkit.UserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, errMissingUser, nil)
		return
	}

	var req transport.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, errInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, errValidation, err.Error())
		return
	}

	campaign, err := h.service.Create(c.Request.Context(), userID, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, campaign)
}

// HandleListCampaigns returns the caller's campaigns, newest first.
// GET /api/v1/campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	userID, ok := httpkit.UserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, errMissingUser, nil)
		return
	}

	campaigns, err := h.service.List(c.Request.Context(), userID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, campaigns)
}

// HandleGetCampaign fetches one campaign.
// GET /api/v1/campaigns/:id
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	userID, ok := httpkit.UserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, errMissingUser, nil)
		return
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, errInvalidCampaignID, nil)
		return
	}

	campaign, err := h.service.Get(c.Request.Context(), userID, campaignID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, campaign)
}

// HandlePublishCampaign creates the campaign on the ad platform.
// POST /api/v1/campaigns/:id/publish
func (h *Handler) HandlePublishCampaign(c *gin.Context) {
	userID, ok := httpkit.UserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, errMissingUser, nil)
		return
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, errInvalidCampaignID, nil)
		return
	}

	result, err := h.service.Publish(c.Request.Context(), userID, campaignID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// HandleDashboardStats returns campaign and lead aggregates for the caller.
// GET /api/v1/dashboard/stats
func (h *Handler) HandleDashboardStats(c *gin.Context) {
	userID, ok := httpkit.UserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, errMissingUser, nil)
		return
	}

	stats, err := h.service.DashboardStats(c.Request.Context(), userID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, stats)
}
