package meta

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadflow_backend/platform/logger"
)

type testMetaConfig struct {
	baseURL string
}

func (c testMetaConfig) GetMetaAccessToken() string { return "test-token" }
func (c testMetaConfig) GetMetaAdAccountID() string { return "123456" }
func (c testMetaConfig) GetMetaAPIBaseURL() string  { return c.baseURL }
func (c testMetaConfig) IsMetaEnabled() bool        { return true }

func newTestClient(baseURL string) *Client {
	return New(testMetaConfig{baseURL: baseURL}, logger.New("development"))
}

func TestFetchLeadDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lg-123" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header %q", got)
		}
		_ = json.NewEncoder(w).Encode(LeadDetail{
			ID:     "lg-123",
			AdID:   "ad-77",
			FormID: "form-5",
			FieldData: []FieldData{
				{Name: "email", Values: []string{"jane@acme.test"}},
			},
		})
	}))
	defer server.Close()

	detail, err := newTestClient(server.URL).FetchLeadDetail(context.Background(), "lg-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.AdID != "ad-77" || detail.FormID != "form-5" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	if len(detail.FieldData) != 1 || detail.FieldData[0].Values[0] != "jane@acme.test" {
		t.Fatalf("unexpected field data: %+v", detail.FieldData)
	}
}

func TestFetchLeadDetail_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid token"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).FetchLeadDetail(context.Background(), "lg-123"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestCreateCampaign(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/act_123456/campaigns" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req createCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Objective != "LEAD_GENERATION" || req.Status != "PAUSED" {
			t.Errorf("unexpected campaign settings: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(createCampaignResponse{ID: "meta-c-1"})
	}))
	defer server.Close()

	id, err := newTestClient(server.URL).CreateCampaign(context.Background(), "Acme Launch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "meta-c-1" {
		t.Fatalf("expected meta-c-1, got %s", id)
	}
}

func TestCreateCampaign_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(createCampaignResponse{
			Error: &metaError{Message: "unsupported objective"},
		})
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).CreateCampaign(context.Background(), "Acme Launch"); err == nil {
		t.Fatal("expected error when API rejects campaign")
	}
}

func TestCampaignInsights_ParsesStringNumbers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/meta-c-1/insights" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":[{"ctr":"1.25","spend":"310.50"}]}`))
	}))
	defer server.Close()

	insights, err := newTestClient(server.URL).CampaignInsights(context.Background(), "meta-c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if insights.CTR != 1.25 || insights.Spend != 310.50 {
		t.Fatalf("unexpected insights: %+v", insights)
	}
}

func TestCampaignInsights_EmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	insights, err := newTestClient(server.URL).CampaignInsights(context.Background(), "meta-c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if insights != (Insights{}) {
		t.Fatalf("expected zero insights, got %+v", insights)
	}
}
