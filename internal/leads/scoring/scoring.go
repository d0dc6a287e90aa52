// Package scoring computes lead quality scores from normalized lead records.
// The rule set is a deliberately simple linear policy so it can be swapped
// out without touching the intake pipeline.
package scoring

import (
	"strings"

	"leadflow_backend/internal/leads/domain"
)

const (
	baseScore = 50
	minScore  = 0
	maxScore  = 100
)

// companySizeBonuses maps recognized company-size tiers to their bonus.
// Inputs outside the tier set contribute nothing.
var companySizeBonuses = map[string]int{
	"1000+ employees":    30,
	"201-1000 employees": 20,
	"51-200 employees":   10,
}

// annualRevenueBonuses maps recognized revenue tiers to their bonus.
var annualRevenueBonuses = map[string]int{
	"$100M+":    25,
	"$50M-100M": 20,
	"$10M-50M":  15,
}

// seniorityKeywords trigger a single flat bonus when any of them appears in
// the job title, case-insensitively. Multiple matches do not stack.
var seniorityKeywords = []string{"cto", "vp", "director"}

const seniorityBonus = 15

// Scorer computes a quality score for a normalized lead. It is the one
// swappable policy object in the intake pipeline.
type Scorer interface {
	Score(lead domain.NormalizedLead) int
}

// TierScorer is the default Scorer: a weighted sum over categorical fields,
// clamped to [0, 100]. It is pure and total; missing or unrecognized values
// simply add nothing.
type TierScorer struct{}

// NewTierScorer returns the default scoring policy.
func NewTierScorer() TierScorer {
	return TierScorer{}
}

// Score computes the lead score.
func (TierScorer) Score(lead domain.NormalizedLead) int {
	score := baseScore

	score += companySizeBonuses[lead.Value(domain.FieldCompanySize)]
	score += annualRevenueBonuses[lead.Value(domain.FieldAnnualRevenue)]

	title := strings.ToLower(lead.Value(domain.FieldJobTitle))
	for _, keyword := range seniorityKeywords {
		if strings.Contains(title, keyword) {
			score += seniorityBonus
			break
		}
	}

	if score > maxScore {
		return maxScore
	}
	if score < minScore {
		return minScore
	}
	return score
}

var _ Scorer = TierScorer{}
