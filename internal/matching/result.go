package matching

import (
	"strings"

	"github.com/spigell/cv-matcher/internal/scoring"
)

// MatchQuality is the qualitative tier of an overall score.
type MatchQuality string

const (
	Poor      MatchQuality = "Poor"
	Fair      MatchQuality = "Fair"
	Good      MatchQuality = "Good"
	VeryGood  MatchQuality = "Very Good"
	Excellent MatchQuality = "Excellent"
)

// Tier thresholds, inclusive.
const (
	ExcellentFrom = 85
	VeryGoodFrom  = 70
	GoodFrom      = 60
	FairFrom      = 45
)

// Qualities lists the tiers from worst to best.
var Qualities = []MatchQuality{Poor, Fair, Good, VeryGood, Excellent}

// Quality returns the tier of score.
func Quality(score int) MatchQuality {
	switch {
	case score >= ExcellentFrom:
		return Excellent
	case score >= VeryGoodFrom:
		return VeryGood
	case score >= GoodFrom:
		return Good
	case score >= FairFrom:
		return Fair
	default:
		return Poor
	}
}

// Rank orders tiers; unknown names rank below Poor.
func (q MatchQuality) Rank() int {
	for i, known := range Qualities {
		if known == q {
			return i
		}
	}
	return -1
}

// ParseQuality resolves a tier name case-insensitively.
func ParseQuality(name string) (MatchQuality, bool) {
	for _, q := range Qualities {
		if equalFoldCompact(string(q), name) {
			return q, true
		}
	}
	return "", false
}

// Breakdown keys.
const (
	FactorTitle      = "title"
	FactorSkills     = "skills"
	FactorCareer     = "career"
	FactorExperience = "experience"
	FactorIndustry   = "industry"
	FactorLocation   = "location"
	FactorEducation  = "education"
)

// MatchResult is the outcome of scoring one candidate against one job. It is
// built once and not changed afterwards.
type MatchResult struct {
	OverallScore   int                       `json:"overallScore"`
	MatchQuality   MatchQuality              `json:"matchQuality"`
	Breakdown      map[string]scoring.Result `json:"breakdown"`
	Strengths      []string                  `json:"strengths"`
	Gaps           []string                  `json:"gaps"`
	Insights       []string                  `json:"insights"`
	Recommendation string                    `json:"recommendation"`
}

// Factor returns the sub-score for name, or zero when it is absent.
func (r *MatchResult) Factor(name string) int {
	if r == nil {
		return 0
	}
	return r.Breakdown[name].Score
}

// equalFoldCompact compares case-insensitively, ignoring spaces, '-' and '_'.
func equalFoldCompact(a, b string) bool {
	return strings.EqualFold(compact.Replace(a), compact.Replace(b))
}

var compact = strings.NewReplacer(" ", "", "-", "", "_", "")
