package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/spigell/cv-matcher/internal/profile"
)

// Skills match points.
const (
	SkillsEmpty = 10

	SkillsRequiredPoints  = 80
	SkillsPreferredPoints = 20

	// Used when the job lists no required skills.
	SkillsBaselineBroad    = 50
	SkillsBaselineNarrow   = 30
	SkillsBaselineMinCount = 3

	// Used when the job lists no preferred skills.
	SkillsBonusBroad    = 10
	SkillsBonusNarrow   = 5
	SkillsBonusMinCount = 5

	maxMissingSkills = 5
)

// Transferable lists candidate skills that share a category with a missing
// required skill.
type Transferable struct {
	Missing string   `json:"missing"`
	Related []string `json:"related"`
}

// SkillsResult is the skills match sub-score.
type SkillsResult struct {
	Result
	Matched          int            `json:"matched"`
	Required         int            `json:"required"`
	PreferredMatched int            `json:"preferredMatched"`
	Preferred        int            `json:"preferred"`
	Missing          []string       `json:"missing,omitempty"`
	Transferable     []Transferable `json:"transferable,omitempty"`
}

// Skills rates the candidate's skills against the required and preferred
// skills of the job.
func (s *Scorer) Skills(c *profile.Candidate, j *profile.Job) SkillsResult {
	cv := s.skills.NormalizeAll(c.Skills)
	required := s.skills.NormalizeAll(j.RequiredSkills)
	preferred := s.skills.NormalizeAll(j.PreferredSkills)

	res := SkillsResult{Required: len(required), Preferred: len(preferred)}

	if len(cv) == 0 {
		res.Score = SkillsEmpty
		res.Rationale = "no skills listed"
		res.Missing = firstN(required, maxMissingSkills)
		return res
	}

	var points float64

	if len(required) > 0 {
		report := s.skills.MatchSkills(cv, required, s.threshold)
		res.Matched = len(report.Matches)
		points += SkillsRequiredPoints * float64(res.Matched) / float64(len(required))

		for _, m := range report.Matches {
			res.Evidence = append(res.Evidence, matchEvidence(m.JobSkill, m.CandidateSkill))
		}
		for _, m := range report.Missing {
			if len(res.Missing) < maxMissingSkills {
				res.Missing = append(res.Missing, m.JobSkill)
			}
			if related := s.transferable(m.JobSkill, cv); len(related) > 0 {
				res.Transferable = append(res.Transferable, Transferable{Missing: m.JobSkill, Related: related})
			}
		}
	} else if len(cv) >= SkillsBaselineMinCount {
		points += SkillsBaselineBroad
	} else {
		points += SkillsBaselineNarrow
	}

	if len(preferred) > 0 {
		report := s.skills.MatchSkills(cv, preferred, s.threshold)
		res.PreferredMatched = len(report.Matches)
		points += SkillsPreferredPoints * float64(res.PreferredMatched) / float64(len(preferred))
	} else if len(cv) >= SkillsBonusMinCount {
		points += SkillsBonusBroad
	} else {
		points += SkillsBonusNarrow
	}

	res.Score = clamp(int(math.Round(points)))

	switch {
	case len(required) == 0:
		res.Rationale = fmt.Sprintf("no required skills specified, %d skills listed", len(cv))
	case len(preferred) == 0:
		res.Rationale = fmt.Sprintf("%d of %d required skills matched", res.Matched, len(required))
	default:
		res.Rationale = fmt.Sprintf("%d of %d required and %d of %d preferred skills matched",
			res.Matched, len(required), res.PreferredMatched, len(preferred))
	}

	return res
}

// transferable returns candidate skills that share a category with skill.
func (s *Scorer) transferable(skill string, cv []string) []string {
	categories := s.tables.CategoriesOf(skill)
	if len(categories) == 0 {
		return nil
	}

	var related []string
	for _, have := range cv {
		if strings.EqualFold(have, skill) {
			continue
		}
		if sharesAny(categories, s.tables.CategoriesOf(have)) {
			related = append(related, have)
		}
	}
	return related
}

func sharesAny(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func matchEvidence(jobSkill, cvSkill string) string {
	if strings.EqualFold(jobSkill, cvSkill) {
		return jobSkill
	}
	return fmt.Sprintf("%s (via %s)", jobSkill, cvSkill)
}

func firstN(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
