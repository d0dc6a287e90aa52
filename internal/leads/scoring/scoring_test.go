package scoring

import (
	"testing"

	"leadflow_backend/internal/leads/domain"
)

func leadWith(fields ...domain.Field) domain.NormalizedLead {
	return domain.Normalize(fields)
}

func field(name, value string) domain.Field {
	return domain.Field{Name: name, Values: []string{value}}
}

func TestScore_BaseWithNoSignals(t *testing.T) {
	scorer := NewTierScorer()

	if got := scorer.Score(leadWith()); got != 50 {
		t.Fatalf("expected base score 50 for empty lead, got %d", got)
	}
	if got := scorer.Score(leadWith(field("email", "jane@acme.test"))); got != 50 {
		t.Fatalf("expected base score 50 for contact-only lead, got %d", got)
	}
}

func TestScore_CompanySizeTiers(t *testing.T) {
	scorer := NewTierScorer()

	cases := []struct {
		size string
		want int
	}{
		{"1000+ employees", 80},
		{"201-1000 employees", 70},
		{"51-200 employees", 60},
		{"1-50 employees", 50},
		{"", 50},
	}

	for _, tc := range cases {
		got := scorer.Score(leadWith(field("company_size", tc.size)))
		if got != tc.want {
			t.Errorf("company_size %q: expected %d, got %d", tc.size, tc.want, got)
		}
	}
}

func TestScore_AnnualRevenueTiers(t *testing.T) {
	scorer := NewTierScorer()

	cases := []struct {
		revenue string
		want    int
	}{
		{"$100M+", 75},
		{"$50M-100M", 70},
		{"$10M-50M", 65},
		{"$1M-10M", 50},
		{"100M+", 50},
	}

	for _, tc := range cases {
		got := scorer.Score(leadWith(field("annual_revenue", tc.revenue)))
		if got != tc.want {
			t.Errorf("annual_revenue %q: expected %d, got %d", tc.revenue, tc.want, got)
		}
	}
}

func TestScore_SeniorityMatchesSubstringCaseInsensitive(t *testing.T) {
	scorer := NewTierScorer()

	cases := []struct {
		title string
		want  int
	}{
		{"CTO", 65},
		{"VP of Engineering", 65},
		{"Senior Director, Ops", 65},
		{"deputy director", 65},
		{"Marketing Manager", 50},
		{"", 50},
	}

	for _, tc := range cases {
		got := scorer.Score(leadWith(field("job_title", tc.title)))
		if got != tc.want {
			t.Errorf("job_title %q: expected %d, got %d", tc.title, tc.want, got)
		}
	}
}

func TestScore_SeniorityBonusDoesNotStack(t *testing.T) {
	scorer := NewTierScorer()

	got := scorer.Score(leadWith(field("job_title", "VP & Director of CTO Office")))
	if got != 65 {
		t.Fatalf("expected single seniority bonus (65), got %d", got)
	}
}

func TestScore_ClampedAtHundred(t *testing.T) {
	scorer := NewTierScorer()

	// 50 + 30 + 25 + 15 = 120 before clamping.
	got := scorer.Score(leadWith(
		field("company_size", "1000+ employees"),
		field("annual_revenue", "$100M+"),
		field("job_title", "VP of Sales"),
	))
	if got != 100 {
		t.Fatalf("expected score clamped to 100, got %d", got)
	}
}

func TestScore_UnrecognizedTiersAddNothing(t *testing.T) {
	scorer := NewTierScorer()

	got := scorer.Score(leadWith(
		field("company_size", "huge"),
		field("annual_revenue", "lots"),
		field("job_title", "analyst"),
	))
	if got != 50 {
		t.Fatalf("expected 50 for unrecognized tier values, got %d", got)
	}
}

func TestScore_IgnoresFieldOrderAndUnknownFields(t *testing.T) {
	scorer := NewTierScorer()

	a := leadWith(
		field("company_size", "201-1000 employees"),
		field("job_title", "Director of IT"),
		field("favorite_color", "green"),
	)
	b := leadWith(
		field("job_title", "Director of IT"),
		field("custom_question_1", "yes"),
		field("company_size", "201-1000 employees"),
	)

	if scorer.Score(a) != scorer.Score(b) {
		t.Fatalf("expected identical scores regardless of field order, got %d and %d", scorer.Score(a), scorer.Score(b))
	}
	if got := scorer.Score(a); got != 85 {
		t.Fatalf("expected 85 (50+20+15), got %d", got)
	}
}
