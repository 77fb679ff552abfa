package scoring

import (
	"fmt"

	"github.com/spigell/cv-matcher/internal/profile"
)

// Career progression scores by seniority delta (target minus current).
const (
	CareerLateral          = 90
	CareerPromotion        = 95
	CareerStretch          = 75
	CareerOverqualified    = 60
	CareerUnderExperienced = 40
	CareerStandard         = 70
	CareerNoExperience     = 50
)

// Career labels.
const (
	CareerLabelLateral          = "lateral move"
	CareerLabelPromotion        = "natural promotion"
	CareerLabelStretch          = "stretch role"
	CareerLabelOverqualified    = "overqualified / retention risk"
	CareerLabelUnderExperienced = "under-experienced"
	CareerLabelStandard         = "standard fit"
	CareerLabelUnknown          = "unknown"
)

// CareerResult is the career progression sub-score.
type CareerResult struct {
	Result
	Label         string `json:"label"`
	CurrentRank   int    `json:"currentRank"`
	TargetRank    int    `json:"targetRank"`
	IsPromotion   bool   `json:"isPromotion"`
	Overqualified bool   `json:"overqualified"`
}

// Career compares the seniority of the most recent role with the seniority of
// the job title.
func (s *Scorer) Career(c *profile.Candidate, j *profile.Job) CareerResult {
	if !c.HasExperience() {
		return CareerResult{
			Result: Result{Score: CareerNoExperience, Rationale: "no experience to infer seniority from"},
			Label:  CareerLabelUnknown,
		}
	}

	current, currentKeyword, _ := s.tables.SeniorityRank(c.Experience[0].Title)
	target, targetKeyword, _ := s.tables.SeniorityRank(j.Title)
	delta := target - current

	res := CareerResult{CurrentRank: current, TargetRank: target}

	switch {
	case delta == 0:
		res.Score, res.Label = CareerLateral, CareerLabelLateral
	case delta == 1:
		res.Score, res.Label = CareerPromotion, CareerLabelPromotion
		res.IsPromotion = true
	case delta == 2:
		res.Score, res.Label = CareerStretch, CareerLabelStretch
		res.IsPromotion = true
	case current > target+1:
		res.Score, res.Label = CareerOverqualified, CareerLabelOverqualified
		res.Overqualified = true
	case current < target-2:
		res.Score, res.Label = CareerUnderExperienced, CareerLabelUnderExperienced
	default:
		res.Score, res.Label = CareerStandard, CareerLabelStandard
	}

	res.Rationale = fmt.Sprintf("%s: level %d to level %d", res.Label, current, target)
	res.Evidence = []string{
		rankEvidence("current", c.Experience[0].Title, currentKeyword, current),
		rankEvidence("target", j.Title, targetKeyword, target),
	}

	return res
}

func rankEvidence(side, title, keyword string, rank int) string {
	if keyword == "" {
		return fmt.Sprintf("%s %q: level %d (default)", side, title, rank)
	}
	return fmt.Sprintf("%s %q: level %d (%s)", side, title, rank, keyword)
}
