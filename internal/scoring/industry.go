package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/cv-matcher/internal/profile"
	"github.com/spigell/cv-matcher/internal/taxonomy"
)

// Industry alignment curve.
const (
	IndustryUnspecified = 60
	IndustryNone        = 10
	IndustryDirectBase  = 70
	IndustryDirectStep  = 15
	IndustryDirectMax   = 100
	IndustryRelatedBase = 35
	IndustryRelatedStep = 10
	IndustryRelatedMax  = 60
)

// IndustryResult is the industry alignment sub-score. Company matches count
// as direct matches but are tracked separately since they are weaker.
type IndustryResult struct {
	Result
	Industry string `json:"industry,omitempty"`
	Direct   int    `json:"direct"`
	Company  int    `json:"company"`
	Related  int    `json:"related"`
}

// Industry rates how much of the candidate's history is in the job's industry
// or in one related to it.
func (s *Scorer) Industry(c *profile.Candidate, j *profile.Job) IndustryResult {
	sector := j.Sector()
	if sector == "" {
		return IndustryResult{Result: Result{Score: IndustryUnspecified, Rationale: "no industry specified"}}
	}

	target := taxonomy.Fold(sector)
	related := s.tables.RelatedIndustries(sector)

	res := IndustryResult{Industry: sector}
	for _, e := range c.Experience {
		text := taxonomy.Fold(e.Text())
		switch {
		case taxonomy.HasPhrase(text, target):
			res.Direct++
			res.Evidence = append(res.Evidence, fmt.Sprintf("%s: %s role", entryLabel(e), sector))
		case taxonomy.HasPhrase(taxonomy.Fold(e.Company), target):
			res.Company++
			res.Evidence = append(res.Evidence, fmt.Sprintf("%s: %s company", entryLabel(e), sector))
		default:
			if r := firstRelated(text, related); r != "" {
				res.Related++
				res.Evidence = append(res.Evidence, fmt.Sprintf("%s: related industry %s", entryLabel(e), r))
			}
		}
	}

	direct := res.Direct + res.Company
	switch {
	case direct > 0:
		res.Score = min(IndustryDirectMax, IndustryDirectBase+IndustryDirectStep*direct)
		res.Rationale = fmt.Sprintf("%d role(s) in %s", direct, sector)
	case res.Related > 0:
		res.Score = min(IndustryRelatedMax, IndustryRelatedBase+IndustryRelatedStep*res.Related)
		res.Rationale = fmt.Sprintf("%d role(s) in industries related to %s", res.Related, sector)
	default:
		res.Score = IndustryNone
		res.Rationale = fmt.Sprintf("no experience in %s or related industries", sector)
	}

	return res
}

func firstRelated(text string, related []string) string {
	for _, r := range related {
		if taxonomy.HasPhrase(text, taxonomy.Fold(r)) {
			return r
		}
	}
	return ""
}

func entryLabel(e profile.Experience) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{e.Title, e.Company} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "untitled role"
	}
	return strings.Join(parts, " at ")
}
