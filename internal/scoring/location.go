package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/cv-matcher/internal/profile"
	"github.com/spigell/cv-matcher/internal/taxonomy"
)

// Location fit scores.
const (
	LocationRemote          = 100
	LocationMatch           = 100
	LocationHybridElsewhere = 80
	LocationJobUnknown      = 70
	LocationSameCountry     = 50
	LocationCandidateAbsent = 30
	LocationMismatch        = 20
)

// LocationResult is the location fit sub-score.
type LocationResult struct {
	Result
	Type profile.LocationType `json:"type"`
}

// Location rates whether the candidate can work where the job is.
func (s *Scorer) Location(c *profile.Candidate, j *profile.Job) LocationResult {
	kind := j.LocationType.Normalize()
	res := LocationResult{Type: kind}

	if kind == profile.Remote {
		res.Score = LocationRemote
		res.Rationale = "remote role"
		return res
	}

	have := taxonomy.Fold(c.Location)
	want := taxonomy.Fold(j.Location)
	same := have != "" && want != "" && (strings.Contains(have, want) || strings.Contains(want, have))

	if kind == profile.Hybrid {
		if same {
			res.Score = LocationMatch
			res.Rationale = fmt.Sprintf("hybrid role in %s, candidate is local", j.Location)
			return res
		}
		res.Score = LocationHybridElsewhere
		res.Rationale = "hybrid role, location could not be confirmed"
		return res
	}

	switch {
	case want == "":
		res.Score = LocationJobUnknown
		res.Rationale = "onsite role without a location"
	case have == "":
		res.Score = LocationCandidateAbsent
		res.Rationale = "onsite role, candidate location unknown"
	case same:
		res.Score = LocationMatch
		res.Rationale = fmt.Sprintf("candidate is in %s", j.Location)
	default:
		haveCountry, ok1 := s.tables.Country(c.Location)
		wantCountry, ok2 := s.tables.Country(j.Location)
		if ok1 && ok2 && haveCountry == wantCountry {
			res.Score = LocationSameCountry
			res.Rationale = fmt.Sprintf("same country (%s), different city", haveCountry)
			res.Evidence = []string{c.Location, j.Location}
			return res
		}
		res.Score = LocationMismatch
		res.Rationale = fmt.Sprintf("candidate in %s, role in %s", strings.TrimSpace(c.Location), strings.TrimSpace(j.Location))
	}

	return res
}
