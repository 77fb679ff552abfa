// Package skills canonicalizes skill names and scores how similar two skill
// strings are.
package skills

import (
	"math"
	"strings"

	"github.com/spigell/cv-matcher/internal/taxonomy"
)

// DefaultThreshold is the similarity at which two skills count as the same.
const DefaultThreshold = 85

// Similarity scores.
const (
	ExactSimilarity    = 100
	ContainsSimilarity = 90
)

// Normalizer resolves skill variants against the synonym table.
type Normalizer struct {
	tables *taxonomy.Tables
}

// New returns a normalizer over tables. Nil tables fall back to the bundled
// defaults.
func New(tables *taxonomy.Tables) *Normalizer {
	if tables == nil {
		tables = taxonomy.Default()
	}
	return &Normalizer{tables: tables}
}

// Tables returns the reference tables the normalizer reads.
func (n *Normalizer) Tables() *taxonomy.Tables {
	return n.tables
}

// Normalize returns the canonical name of skill, or the trimmed input when the
// skill is not in any synonym set.
func (n *Normalizer) Normalize(skill string) string {
	skill = strings.TrimSpace(skill)
	if canonical, ok := n.tables.Canonical(skill); ok {
		return canonical
	}
	return skill
}

// NormalizeAll normalizes every skill, drops blanks and removes duplicates
// case-insensitively while keeping the first-seen order.
func (n *Normalizer) NormalizeAll(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		name := n.Normalize(skill)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Similarity scores a and b from 0 to 100. Equal normalized forms score 100,
// substring containment in either direction scores 90, anything else is
// scored by edit distance relative to the longer string.
func (n *Normalizer) Similarity(a, b string) int {
	na, nb := n.Normalize(a), n.Normalize(b)
	if na == "" || nb == "" {
		return 0
	}

	la, lb := strings.ToLower(na), strings.ToLower(nb)
	if la == lb {
		return ExactSimilarity
	}

	fa, fb := taxonomy.Fold(na), taxonomy.Fold(nb)
	if fa != "" && fa == fb {
		return ExactSimilarity
	}
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return ContainsSimilarity
	}

	maxLen := len([]rune(la))
	if l := len([]rune(lb)); l > maxLen {
		maxLen = l
	}

	distance := Levenshtein(la, lb)
	return int(math.Round(100 * float64(maxLen-distance) / float64(maxLen)))
}

// Match reports whether a candidate skill satisfies a job skill.
func (n *Normalizer) Match(cvSkill, jobSkill string, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	a, b := n.Normalize(cvSkill), n.Normalize(jobSkill)
	if a != "" && strings.EqualFold(a, b) {
		return true
	}

	return n.Similarity(cvSkill, jobSkill) >= threshold
}

// SkillMatch pairs a job skill with the best candidate skill found for it.
type SkillMatch struct {
	JobSkill       string `json:"jobSkill"`
	CandidateSkill string `json:"candidateSkill,omitempty"`
	Similarity     int    `json:"similarity"`
}

// MatchReport is the outcome of matching a candidate skill list against the
// skills a job asks for.
type MatchReport struct {
	Matches    []SkillMatch `json:"matches"`
	Missing    []SkillMatch `json:"missing"`
	Percentage int          `json:"matchPercentage"`
}

// MatchSkills finds the best candidate skill for every job skill. Job skills
// whose best similarity is below threshold are reported as missing together
// with the closest candidate skill. An empty job list matches fully.
func (n *Normalizer) MatchSkills(cvSkills, jobSkills []string, threshold int) MatchReport {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	cv := n.NormalizeAll(cvSkills)
	job := n.NormalizeAll(jobSkills)

	report := MatchReport{
		Matches: make([]SkillMatch, 0, len(job)),
		Missing: make([]SkillMatch, 0),
	}

	if len(job) == 0 {
		report.Percentage = 100
		return report
	}

	for _, jobSkill := range job {
		best := SkillMatch{JobSkill: jobSkill}
		for _, cvSkill := range cv {
			score := n.Similarity(cvSkill, jobSkill)
			if score > best.Similarity {
				best.CandidateSkill = cvSkill
				best.Similarity = score
			}
		}

		if best.Similarity >= threshold {
			report.Matches = append(report.Matches, best)
			continue
		}
		report.Missing = append(report.Missing, best)
	}

	report.Percentage = int(math.Round(100 * float64(len(report.Matches)) / float64(len(job))))
	return report
}
