package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"leadflow_backend/internal/adcopy/transport"
	"leadflow_backend/platform/logger"
)

type stubGenerator struct {
	output string
	err    error
}

func (s stubGenerator) Generate(context.Context, string) (string, error) {
	return s.output, s.err
}

func testRequest() transport.GenerateRequest {
	return transport.GenerateRequest{
		Industry:       "Healthcare",
		TargetAudience: "clinic owners",
		Objective:      "lead_generation",
	}
}

func TestHeadlines_UsesModelOutput(t *testing.T) {
	svc := New(stubGenerator{output: "One\n\nTwo\nThree\nFour"}, logger.New("development"))

	headlines := svc.Headlines(context.Background(), testRequest())

	if len(headlines) != 3 {
		t.Fatalf("expected 3 headlines, got %d", len(headlines))
	}
	if headlines[0] != "One" || headlines[1] != "Two" || headlines[2] != "Three" {
		t.Fatalf("unexpected headlines: %v", headlines)
	}
}

func TestHeadlines_FallsBackOnModelError(t *testing.T) {
	svc := New(stubGenerator{err: errors.New("quota exceeded")}, logger.New("development"))

	headlines := svc.Headlines(context.Background(), testRequest())

	if len(headlines) != 3 {
		t.Fatalf("expected 3 fallback headlines, got %d", len(headlines))
	}
	for _, h := range headlines {
		if !strings.Contains(h, "Healthcare") {
			t.Errorf("fallback headline missing industry: %q", h)
		}
	}
}

func TestHeadlines_FallsBackOnEmptyOutput(t *testing.T) {
	svc := New(stubGenerator{output: "\n  \n"}, logger.New("development"))

	headlines := svc.Headlines(context.Background(), testRequest())

	if len(headlines) != 3 {
		t.Fatalf("expected fallback headlines, got %v", headlines)
	}
}

func TestHeadlines_NoGeneratorConfigured(t *testing.T) {
	svc := New(nil, logger.New("development"))

	headlines := svc.Headlines(context.Background(), testRequest())

	if len(headlines) != 3 {
		t.Fatalf("expected static headlines, got %d", len(headlines))
	}
}

func TestDescriptions_TemplatesAudienceAndObjective(t *testing.T) {
	svc := New(nil, logger.New("development"))

	descriptions := svc.Descriptions(testRequest())

	if len(descriptions) != 3 {
		t.Fatalf("expected 3 descriptions, got %d", len(descriptions))
	}
	if !strings.Contains(descriptions[0], "clinic owners") {
		t.Errorf("first description missing audience: %q", descriptions[0])
	}
	if !strings.Contains(descriptions[1], "lead_generation") {
		t.Errorf("second description missing objective: %q", descriptions[1])
	}
}

func TestImages_ReturnsStockSet(t *testing.T) {
	svc := New(nil, logger.New("development"))

	images := svc.Images()

	if len(images) != 3 {
		t.Fatalf("expected 3 images, got %d", len(images))
	}
	for _, img := range images {
		if !strings.HasPrefix(img, "https://") {
			t.Errorf("expected https image URL, got %q", img)
		}
	}
}
