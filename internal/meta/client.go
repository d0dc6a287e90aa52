// Package meta provides the HTTP client for the Meta Graph API: lead detail
// retrieval for the intake pipeline, campaign creation for publishing, and
// insights for the metrics refresher.
package meta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"leadflow_backend/platform/config"
	"leadflow_backend/platform/logger"
)

// Client is the HTTP client for the Meta Graph API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	adAccountID string
	log         *logger.Logger
}

// New creates a new Meta Graph API client.
func New(cfg config.MetaConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     cfg.GetMetaAPIBaseURL(),
		accessToken: cfg.GetMetaAccessToken(),
		adAccountID: cfg.GetMetaAdAccountID(),
		log:         log,
	}
}

// FetchLeadDetail retrieves the full field data for a leadgen event.
func (c *Client) FetchLeadDetail(ctx context.Context, leadgenID string) (LeadDetail, error) {
	reqURL := fmt.Sprintf("%s/%s", c.baseURL, leadgenID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return LeadDetail{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("meta lead detail request failed", "error", err, "leadgenId", leadgenID)
		return LeadDetail{}, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return LeadDetail{}, fmt.Errorf("meta lead detail: status %d: %s", resp.StatusCode, body)
	}

	var detail LeadDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return LeadDetail{}, fmt.Errorf("decode response: %w", err)
	}

	return detail, nil
}

// CreateCampaign creates a paused lead-generation campaign on the ad account
// and returns its Meta campaign id.
func (c *Client) CreateCampaign(ctx context.Context, name string) (string, error) {
	reqURL := fmt.Sprintf("%s/act_%s/campaigns", c.baseURL, c.adAccountID)

	payload, err := json.Marshal(createCampaignRequest{
		Name:                name,
		Objective:           "LEAD_GENERATION",
		Status:              "PAUSED",
		SpecialAdCategories: []string{"EMPLOYMENT"},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("meta campaign create request failed", "error", err, "name", name)
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	var created createCampaignResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if created.ID == "" {
		if created.Error != nil {
			return "", fmt.Errorf("meta campaign create: %s", created.Error.Message)
		}
		return "", fmt.Errorf("meta campaign create: status %d, no campaign id", resp.StatusCode)
	}

	return created.ID, nil
}

// CampaignInsights fetches click-through metrics for a published campaign.
func (c *Client) CampaignInsights(ctx context.Context, metaCampaignID string) (Insights, error) {
	reqURL := fmt.Sprintf("%s/%s/insights?fields=ctr,spend", c.baseURL, metaCampaignID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Insights{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Insights{}, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Insights{}, fmt.Errorf("meta insights: status %d", resp.StatusCode)
	}

	var envelope insightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Insights{}, fmt.Errorf("decode response: %w", err)
	}

	if len(envelope.Data) == 0 {
		return Insights{}, nil
	}

	// The Graph API reports numeric insight values as strings.
	row := envelope.Data[0]
	insights := Insights{}
	if row.CTR != "" {
		if ctr, err := strconv.ParseFloat(row.CTR, 64); err == nil {
			insights.CTR = ctr
		}
	}
	if row.Spend != "" {
		if spend, err := strconv.ParseFloat(row.Spend, 64); err == nil {
			insights.Spend = spend
		}
	}

	return insights, nil
}
