// Package service implements ad copy generation. Headlines are produced by a
// language model when one is configured; everything degrades to curated
// static copy so the endpoints never fail outright.
package service

import (
	"context"
	"fmt"
	"strings"

	"leadflow_backend/internal/adcopy/transport"
	"leadflow_backend/platform/logger"
)

const maxHeadlines = 3

// TextGenerator produces a single completion for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	gen TextGenerator // nil when no model is configured
	log *logger.Logger
}

func New(gen TextGenerator, log *logger.Logger) *Service {
	return &Service{gen: gen, log: log}
}

// Headlines generates up to three ad headlines. Model failures fall back to
// static templates so the caller always gets copy.
func (s *Service) Headlines(ctx context.Context, req transport.GenerateRequest) []string {
	if s.gen == nil {
		return fallbackHeadlines(req.Industry)
	}

	prompt := fmt.Sprintf(
		"Create 3 compelling B2B ad headlines for %s companies targeting %s with the objective of %s. "+
			"Make them professional and conversion-focused. Return only the headlines, one per line.",
		req.Industry, req.TargetAudience, req.Objective,
	)

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn("headline generation failed, using fallback copy", "error", err.Error())
		return fallbackHeadlines(req.Industry)
	}

	headlines := splitLines(raw, maxHeadlines)
	if len(headlines) == 0 {
		return fallbackHeadlines(req.Industry)
	}
	return headlines
}

// Descriptions returns templated ad descriptions for the given audience.
func (s *Service) Descriptions(req transport.GenerateRequest) []string {
	return []string{
		fmt.Sprintf("Transform your %s operations with cutting-edge solutions designed for %s. Drive growth and efficiency with our proven platform.", req.Industry, req.TargetAudience),
		fmt.Sprintf("Join leading %s companies who trust our platform to achieve their %s goals. See measurable results in 30 days.", req.Industry, req.Objective),
		fmt.Sprintf("Unlock your %s potential with AI-powered tools built specifically for %s. Start your transformation today.", req.Industry, req.TargetAudience),
	}
}

// Images returns stock imagery suitable for B2B ad creatives.
func (s *Service) Images() []string {
	return []string{
		"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1551434678-e076c223a692?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=400&h=300&fit=crop",
	}
}

func fallbackHeadlines(industry string) []string {
	return []string{
		fmt.Sprintf("Transform Your %s Operations with AI-Powered Solutions", industry),
		fmt.Sprintf("Accelerate %s Growth with Advanced Technology Platform", industry),
		fmt.Sprintf("Drive %s Innovation: Join Leading Companies Using Our Platform", industry),
	}
}

func splitLines(raw string, limit int) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, limit)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
		if len(out) == limit {
			break
		}
	}
	return out
}
