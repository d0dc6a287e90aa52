package intake

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"leadflow_backend/internal/leads/repository"
	"leadflow_backend/internal/leads/scoring"
	"leadflow_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestRouter(store *fakeStore, fetcher *fakeFetcher, verifyToken string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	pipeline := NewPipeline(fetcher, store, scoring.NewTierScorer(), &recordingBus{}, logger.New("development"), time.Second)
	handler := NewHandler(pipeline, verifyToken)

	engine := gin.New()
	engine.POST("/webhooks/meta/leads", handler.HandleWebhook)
	engine.GET("/webhooks/meta/leads", handler.HandleVerify)
	return engine
}

func postWebhook(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/meta/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestHandleWebhook_AlwaysAcknowledges(t *testing.T) {
	store := &fakeStore{campaign: repository.CampaignRef{ID: uuid.New(), Name: "c"}}
	fetcher := &fakeFetcher{}
	engine := newTestRouter(store, fetcher, "secret")

	bodies := []string{
		`{"object":"page","entry":[{"changes":[{"value":{"leadgen_id":"lg-1","ad_id":"ad-1"}}]}]}`,
		`{"object":"page","entry":[]}`,
		`{"object":"unexpected"}`,
		`{}`,
		`not json at all`,
		``,
	}

	for _, body := range bodies {
		rec := postWebhook(t, engine, body)
		if rec.Code != http.StatusOK {
			t.Errorf("body %q: expected 200, got %d", body, rec.Code)
		}
		if rec.Body.String() != "OK" {
			t.Errorf("body %q: expected literal OK, got %q", body, rec.Body.String())
		}
	}
}

func TestHandleWebhook_AcknowledgesInternalFailure(t *testing.T) {
	// Store errors never surface to the webhook sender.
	store := &fakeStore{findErr: repository.ErrCampaignNotFound}
	fetcher := &fakeFetcher{}
	engine := newTestRouter(store, fetcher, "secret")

	rec := postWebhook(t, engine, `{"object":"page","entry":[{"changes":[{"value":{"leadgen_id":"lg-1","ad_id":"ad-x"}}]}]}`)

	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("expected 200 OK despite dropped lead, got %d %q", rec.Code, rec.Body.String())
	}
	if len(store.captured) != 0 {
		t.Fatalf("expected zero writes, got %d", len(store.captured))
	}
}

func TestHandleVerify_EchoesChallengeOnExactTokenMatch(t *testing.T) {
	engine := newTestRouter(&fakeStore{}, &fakeFetcher{}, "secret")

	query := url.Values{
		"hub.mode":         {"subscribe"},
		"hub.verify_token": {"secret"},
		"hub.challenge":    {"challenge-42"},
	}
	req := httptest.NewRequest(http.MethodGet, "/webhooks/meta/leads?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "challenge-42" {
		t.Fatalf("expected challenge echoed verbatim, got %q", rec.Body.String())
	}
}

func TestHandleVerify_RejectsBadHandshakes(t *testing.T) {
	engine := newTestRouter(&fakeStore{}, &fakeFetcher{}, "secret")

	cases := []struct {
		name  string
		query url.Values
	}{
		{"wrong token", url.Values{"hub.mode": {"subscribe"}, "hub.verify_token": {"nope"}, "hub.challenge": {"c"}}},
		{"wrong mode", url.Values{"hub.mode": {"unsubscribe"}, "hub.verify_token": {"secret"}, "hub.challenge": {"c"}}},
		{"token prefix", url.Values{"hub.mode": {"subscribe"}, "hub.verify_token": {"secre"}, "hub.challenge": {"c"}}},
		{"token superstring", url.Values{"hub.mode": {"subscribe"}, "hub.verify_token": {"secrets"}, "hub.challenge": {"c"}}},
		{"missing params", url.Values{}},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/webhooks/meta/leads?"+tc.query.Encode(), nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("%s: expected 403, got %d", tc.name, rec.Code)
		}
		if rec.Body.String() != "Forbidden" {
			t.Errorf("%s: expected Forbidden body, got %q", tc.name, rec.Body.String())
		}
	}
}
