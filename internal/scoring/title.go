package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/cv-matcher/internal/profile"
	"github.com/spigell/cv-matcher/internal/taxonomy"
)

// Title relevance curve.
const (
	TitleDirectBase  = 80
	TitleDirectStep  = 10
	TitleDirectMax   = 100
	TitleRelatedBase = 45
	TitleRelatedStep = 15
	TitleRelatedMax  = 70
	TitleDeptBase    = 20
	TitleDeptStep    = 10
	TitleDeptMax     = 40
	TitleNone        = 5

	// TitleRelatedCoverage is the share of job title keywords, in percent,
	// that an entry must mention to count as a related role.
	TitleRelatedCoverage = 60

	maxMatchedRoles = 3
)

// Title match kinds, strongest first.
const (
	TitleMatchDirect     = "direct"
	TitleMatchRelated    = "related"
	TitleMatchDepartment = "department"
	TitleMatchNone       = "none"
)

var titleStopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "of": {}, "for": {},
	"in": {}, "at": {}, "to": {}, "with": {}, "on": {}, "by": {},
	"senior": {}, "sr": {}, "junior": {}, "jr": {}, "mid": {}, "level": {},
	"lead": {}, "principal": {}, "staff": {}, "head": {}, "chief": {},
	"intern": {}, "trainee": {}, "associate": {}, "entry": {},
	"i": {}, "ii": {}, "iii": {}, "iv": {},
	"remote": {}, "hybrid": {}, "onsite": {}, "full": {}, "part": {}, "time": {},
	"contract": {}, "temporary": {},
}

var titleSynonyms = map[string][]string{
	"developer":     {"engineer", "programmer", "coder", "development", "dev"},
	"engineer":      {"developer", "engineering", "programmer"},
	"programmer":    {"developer", "engineer", "coder"},
	"manager":       {"management", "lead", "head", "supervisor"},
	"designer":      {"design", "ux", "ui"},
	"analyst":       {"analysis", "analytics", "analyzing"},
	"scientist":     {"science", "research", "researcher"},
	"administrator": {"admin", "administration", "sysadmin"},
	"consultant":    {"consulting", "advisor", "adviser"},
	"architect":     {"architecture"},
	"specialist":    {"expert", "specialised", "specialized"},
	"accountant":    {"accounting", "bookkeeping"},
	"marketer":      {"marketing"},
	"recruiter":     {"recruiting", "recruitment", "talent acquisition"},
}

// TitleResult is the job title relevance sub-score.
type TitleResult struct {
	Result
	MatchType    string   `json:"matchType"`
	MatchedRoles []string `json:"matchedRoles,omitempty"`
}

// Title rates how close the candidate's past roles are to the job title.
func (s *Scorer) Title(c *profile.Candidate, j *profile.Job) TitleResult {
	jobTitle := taxonomy.Fold(j.Title)
	sector := taxonomy.Fold(j.Sector())
	groups := titleKeywordGroups(jobTitle)

	var direct, related, department []string
	for _, e := range c.Experience {
		title := taxonomy.Fold(e.Title)
		text := taxonomy.Fold(e.Text())
		label := strings.TrimSpace(e.Title)

		switch {
		case title != "" && jobTitle != "" && (strings.Contains(title, jobTitle) || strings.Contains(jobTitle, title)):
			direct = append(direct, label)
		case coversKeywords(text, groups):
			related = append(related, label)
		case sector != "" && taxonomy.HasPhrase(text, sector):
			department = append(department, label)
		}
	}

	res := TitleResult{}
	switch {
	case len(direct) > 0:
		res.MatchType = TitleMatchDirect
		res.Score = min(TitleDirectMax, TitleDirectBase+TitleDirectStep*len(direct))
		res.Rationale = fmt.Sprintf("%d role(s) directly match %q", len(direct), j.Title)
		res.MatchedRoles = roles(direct)
	case len(related) > 0:
		res.MatchType = TitleMatchRelated
		res.Score = min(TitleRelatedMax, TitleRelatedBase+TitleRelatedStep*len(related))
		res.Rationale = fmt.Sprintf("%d role(s) related to %q", len(related), j.Title)
		res.MatchedRoles = roles(related)
	case len(department) > 0:
		res.MatchType = TitleMatchDepartment
		res.Score = min(TitleDeptMax, TitleDeptBase+TitleDeptStep*len(department))
		res.Rationale = fmt.Sprintf("%d role(s) in the %s area only", len(department), j.Sector())
		res.MatchedRoles = roles(department)
	default:
		res.MatchType = TitleMatchNone
		res.Score = TitleNone
		if len(c.Experience) == 0 {
			res.Rationale = "no work experience listed"
		} else {
			res.Rationale = fmt.Sprintf("no past role resembles %q", j.Title)
		}
	}

	res.Evidence = res.MatchedRoles
	return res
}

// titleKeywordGroups splits a folded job title into keywords, each grouped
// with its manual synonyms.
func titleKeywordGroups(foldedTitle string) [][]string {
	var groups [][]string
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(foldedTitle) {
		if _, stop := titleStopWords[token]; stop {
			continue
		}
		if len([]rune(token)) < 2 && !strings.ContainsAny(token, "+#") {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}

		group := append([]string{token}, titleSynonyms[token]...)
		groups = append(groups, group)
	}
	return groups
}

// coversKeywords reports whether text mentions at least
// TitleRelatedCoverage percent of the keyword groups. Coverage is counted per
// group: a keyword and its synonyms score one hit however many of them
// appear.
func coversKeywords(text string, groups [][]string) bool {
	if text == "" || len(groups) == 0 {
		return false
	}

	hits := 0
	for _, group := range groups {
		for _, word := range group {
			if taxonomy.HasPhrase(text, word) {
				hits++
				break
			}
		}
	}

	return hits*100 >= TitleRelatedCoverage*len(groups)
}

func roles(titles []string) []string {
	var out []string
	for _, t := range titles {
		out = appendLimited(out, t, maxMatchedRoles)
	}
	return out
}
