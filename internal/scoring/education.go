package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/cv-matcher/internal/profile"
)

// Education fit scores.
const (
	EducationMeets         = 100
	EducationOneShort      = 65
	EducationTwoShort      = 35
	EducationFarShort      = 15
	EducationNoRequirement = 70
	EducationUnparseable   = 60
	EducationMissing       = 15
	EducationMissingNoReq  = 40
)

// EducationResult is the education fit sub-score.
type EducationResult struct {
	Result
	CandidateLevel int `json:"candidateLevel"`
	RequiredLevel  int `json:"requiredLevel"`
}

// Education compares the candidate's highest degree with the job's
// requirement.
func (s *Scorer) Education(c *profile.Candidate, j *profile.Job) EducationResult {
	var res EducationResult

	best := ""
	for _, e := range c.Education {
		level, keyword, ok := s.tables.EducationLevel(e.Text())
		if ok && level > res.CandidateLevel {
			res.CandidateLevel = level
			best = keyword
		}
	}

	requirement := strings.TrimSpace(j.Education)

	if res.CandidateLevel == 0 {
		if requirement != "" {
			res.Score = EducationMissing
			res.Rationale = fmt.Sprintf("no recognisable degree, job asks for %q", requirement)
			return res
		}
		res.Score = EducationMissingNoReq
		res.Rationale = "no recognisable degree"
		return res
	}

	res.Evidence = []string{fmt.Sprintf("highest degree: %s (level %d)", best, res.CandidateLevel)}

	if requirement == "" {
		res.Score = EducationNoRequirement
		res.Rationale = "no education requirement specified"
		return res
	}

	required, _, ok := s.tables.EducationLevel(requirement)
	if !ok {
		res.Score = EducationUnparseable
		res.Rationale = fmt.Sprintf("could not read the requirement %q", requirement)
		return res
	}
	res.RequiredLevel = required

	switch gap := required - res.CandidateLevel; {
	case gap <= 0:
		res.Score = EducationMeets
		res.Rationale = "meets the education requirement"
	case gap == 1:
		res.Score = EducationOneShort
		res.Rationale = "one level below the education requirement"
	case gap == 2:
		res.Score = EducationTwoShort
		res.Rationale = "two levels below the education requirement"
	default:
		res.Score = EducationFarShort
		res.Rationale = "well below the education requirement"
	}

	return res
}
