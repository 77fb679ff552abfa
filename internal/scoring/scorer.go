// Package scoring implements the independent sub-scorers that rate one aspect
// of a candidate against a job. Every scorer returns a 0-100 score with a
// short rationale and never fails on missing data.
package scoring

import (
	"time"

	"github.com/spigell/cv-matcher/internal/skills"
	"github.com/spigell/cv-matcher/internal/taxonomy"
)

// Result is the common part of every sub-score.
type Result struct {
	Score     int      `json:"score"`
	Rationale string   `json:"rationale"`
	Evidence  []string `json:"evidence,omitempty"`
}

// Scorer runs the sub-scorers against shared, read-only reference data.
type Scorer struct {
	skills    *skills.Normalizer
	tables    *taxonomy.Tables
	threshold int
	now       func() time.Time
}

// New returns a scorer. A nil normalizer uses the default tables, a
// non-positive threshold uses skills.DefaultThreshold, and a nil clock uses
// time.Now.
func New(normalizer *skills.Normalizer, threshold int, now func() time.Time) *Scorer {
	if normalizer == nil {
		normalizer = skills.New(nil)
	}
	if threshold <= 0 {
		threshold = skills.DefaultThreshold
	}
	if now == nil {
		now = time.Now
	}

	return &Scorer{
		skills:    normalizer,
		tables:    normalizer.Tables(),
		threshold: threshold,
		now:       now,
	}
}

func clamp(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}

// appendLimited appends value unless it is blank, already present or the
// list is full.
func appendLimited(list []string, value string, limit int) []string {
	if value == "" || len(list) >= limit {
		return list
	}
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}
