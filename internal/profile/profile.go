// Package profile holds the candidate and job documents the engine scores,
// and decodes them from the loosely shaped JSON that upstream extraction
// services produce.
package profile

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultMaxExperience stands for "no upper bound" on a job's experience range.
const DefaultMaxExperience = 999

// LocationType is the work arrangement a job offers.
type LocationType string

const (
	Onsite LocationType = "onsite"
	Hybrid LocationType = "hybrid"
	Remote LocationType = "remote"
)

// Normalize maps free-form spellings to a known location type. Anything
// unrecognised is treated as onsite, the strictest arrangement.
func (l LocationType) Normalize() LocationType {
	s := strings.ToLower(strings.TrimSpace(string(l)))
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)

	switch {
	case strings.Contains(s, "remote"), s == "wfh", s == "anywhere":
		return Remote
	case strings.Contains(s, "hybrid"), s == "flexible":
		return Hybrid
	default:
		return Onsite
	}
}

// SkillList is a list of skill names. It decodes from a list, a comma
// separated string, or a map of category to skills.
type SkillList []string

// Experience is one position on a candidate's work history.
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// Period joins every field that may carry dates or a duration.
func (e Experience) Period() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.Duration, e.StartDate, e.EndDate} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Text is the title and description joined for keyword search.
func (e Experience) Text() string {
	return strings.TrimSpace(e.Title + " " + e.Description)
}

// Education is one degree or qualification.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Text is the degree and field joined for level lookup.
func (e Education) Text() string {
	return strings.TrimSpace(e.Degree + " " + e.Field)
}

// Candidate is a parsed CV. Experience is ordered most recent first. Contact
// fields are carried through but never scored.
type Candidate struct {
	ID         string       `json:"id,omitempty"`
	Name       string       `json:"name,omitempty"`
	Email      string       `json:"email,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	Skills     SkillList    `json:"skills,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Location   string       `json:"location,omitempty"`
}

// HasSkills reports whether at least one non-blank skill is listed.
func (c *Candidate) HasSkills() bool {
	for _, s := range c.Skills {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

// HasExperience reports whether at least one experience entry carries text.
func (c *Candidate) HasExperience() bool {
	for _, e := range c.Experience {
		if e != (Experience{}) {
			return true
		}
	}
	return false
}

// HasEducation reports whether at least one education entry carries text.
func (c *Candidate) HasEducation() bool {
	for _, e := range c.Education {
		if strings.TrimSpace(e.Text()+e.Institution) != "" {
			return true
		}
	}
	return false
}

// HasLocation reports whether a location is set.
func (c *Candidate) HasLocation() bool {
	return strings.TrimSpace(c.Location) != ""
}

// EnsureID assigns a stable ID derived from seed when the candidate has none.
func (c *Candidate) EnsureID(seed string) string {
	if strings.TrimSpace(c.ID) == "" {
		c.ID = StableID(seed)
	}
	return c.ID
}

// Job is the specification a candidate is scored against.
type Job struct {
	ID              string       `json:"id,omitempty"`
	Title           string       `json:"title,omitempty"`
	Company         string       `json:"company,omitempty"`
	Department      string       `json:"department,omitempty"`
	Industry        string       `json:"industry,omitempty"`
	Description     string       `json:"description,omitempty"`
	RequiredSkills  SkillList    `json:"requiredSkills,omitempty"`
	PreferredSkills SkillList    `json:"preferredSkills,omitempty"`
	MinExperience   int          `json:"minExperience,omitempty"`
	MaxExperience   int          `json:"maxExperience,omitempty"`
	Education       string       `json:"education,omitempty"`
	Location        string       `json:"location,omitempty"`
	LocationType    LocationType `json:"locationType,omitempty"`
}

// Sector is the industry the job belongs to, falling back to the department.
func (j *Job) Sector() string {
	if s := strings.TrimSpace(j.Industry); s != "" {
		return s
	}
	return strings.TrimSpace(j.Department)
}

// ExperienceRange returns the accepted years of experience. A missing or
// inverted maximum means no upper bound; a negative minimum is zero.
func (j *Job) ExperienceRange() (int, int) {
	lo, hi := j.MinExperience, j.MaxExperience
	if lo < 0 {
		lo = 0
	}
	if hi <= 0 || hi < lo {
		hi = DefaultMaxExperience
	}
	return lo, hi
}

var idNamespace = uuid.MustParse("6f1c3a52-8d0e-4b7a-9c55-2e7b1f0d4a91")

// StableID derives a deterministic UUID from seed, so the same document keeps
// the same ID across runs.
func StableID(seed string) string {
	return uuid.NewSHA1(idNamespace, []byte(strings.TrimSpace(seed))).String()
}
