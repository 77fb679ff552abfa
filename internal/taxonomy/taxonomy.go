// Package taxonomy holds the read-only reference tables used by the matching
// engine: skill synonyms and categories, the industry relationship graph, the
// seniority ladder, country aliases and education levels.
//
// Tables are built once from a Source and never mutated afterwards, so a
// single *Tables value can be shared by any number of concurrent evaluations.
// Every lookup that scans a table does so in a fixed order, which keeps
// "first match wins" results reproducible.
package taxonomy

import (
	"sort"
	"strings"
)

// Seniority and education bounds.
const (
	MinSeniorityRank     = 1
	MaxSeniorityRank     = 10
	DefaultSeniorityRank = 3

	MinEducationLevel = 1
	MaxEducationLevel = 5
)

// SynonymSet maps one canonical skill name to its lowercase variants.
type SynonymSet struct {
	Canonical string   `mapstructure:"canonical" json:"canonical" validate:"required"`
	Variants  []string `mapstructure:"variants" json:"variants"`
}

// Category groups canonical skill names that are considered transferable.
type Category struct {
	Name   string   `mapstructure:"name" json:"name" validate:"required"`
	Skills []string `mapstructure:"skills" json:"skills" validate:"min=1"`
}

// IndustryRelation is one directed edge list of the industry graph.
type IndustryRelation struct {
	Industry string   `mapstructure:"industry" json:"industry" validate:"required"`
	Related  []string `mapstructure:"related" json:"related"`
}

// SeniorityKeyword assigns a ladder rank to a title keyword.
type SeniorityKeyword struct {
	Keyword string `mapstructure:"keyword" json:"keyword" validate:"required"`
	Rank    int    `mapstructure:"rank" json:"rank" validate:"min=1,max=10"`
}

// Country lists the names and places that identify one country.
type Country struct {
	Name    string   `mapstructure:"name" json:"name" validate:"required"`
	Aliases []string `mapstructure:"aliases" json:"aliases"`
}

// EducationKeyword assigns an ordinal level to a degree keyword.
type EducationKeyword struct {
	Keyword string `mapstructure:"keyword" json:"keyword" validate:"required"`
	Level   int    `mapstructure:"level" json:"level" validate:"min=1,max=5"`
}

// Source is the raw, mergeable form of the tables. It is what override files
// decode into and what the tables command prints.
type Source struct {
	Synonyms   []SynonymSet       `mapstructure:"synonyms" json:"synonyms" validate:"dive"`
	Categories []Category         `mapstructure:"categories" json:"categories" validate:"dive"`
	Industries []IndustryRelation `mapstructure:"industries" json:"industries" validate:"dive"`
	Seniority  []SeniorityKeyword `mapstructure:"seniority" json:"seniority" validate:"dive"`
	Countries  []Country          `mapstructure:"countries" json:"countries" validate:"dive"`
	Education  []EducationKeyword `mapstructure:"education" json:"education" validate:"dive"`
}

type keyed struct {
	phrase string
	value  string
	rank   int
}

// Tables is the immutable, indexed form of a Source.
type Tables struct {
	source Source

	canonical  map[string]string
	categories map[string][]string
	industries map[string][]string

	industryKeys []string
	seniority    []keyed
	countries    []keyed
	education    []keyed
}

// New builds indexed tables from src. The source is copied, so later changes
// to src do not leak into the tables.
func New(src Source) *Tables {
	src = normalizeSource(src)

	t := &Tables{
		source:     src,
		canonical:  make(map[string]string),
		categories: make(map[string][]string),
		industries: make(map[string][]string),
	}

	// Canonical names first so that they always resolve to themselves.
	for _, set := range src.Synonyms {
		key := strings.ToLower(set.Canonical)
		if _, exists := t.canonical[key]; !exists {
			t.canonical[key] = set.Canonical
		}
	}
	for _, set := range src.Synonyms {
		for _, variant := range set.Variants {
			if _, exists := t.canonical[variant]; !exists {
				t.canonical[variant] = set.Canonical
			}
		}
	}

	for _, category := range src.Categories {
		for _, skill := range category.Skills {
			key := strings.ToLower(skill)
			t.categories[key] = appendUnique(t.categories[key], category.Name)
		}
	}

	for _, relation := range src.Industries {
		key := Fold(relation.Industry)
		t.industries[key] = append([]string(nil), relation.Related...)
		t.industryKeys = append(t.industryKeys, key)
	}
	sortPhrases(t.industryKeys)

	for _, kw := range src.Seniority {
		t.seniority = append(t.seniority, keyed{phrase: Fold(kw.Keyword), value: kw.Keyword, rank: kw.Rank})
	}
	sort.SliceStable(t.seniority, func(i, j int) bool {
		a, b := t.seniority[i], t.seniority[j]
		if a.rank != b.rank {
			return a.rank > b.rank
		}
		return longerFirst(a.phrase, b.phrase)
	})

	for _, country := range src.Countries {
		t.countries = append(t.countries, keyed{phrase: Fold(country.Name), value: country.Name})
		for _, alias := range country.Aliases {
			t.countries = append(t.countries, keyed{phrase: Fold(alias), value: country.Name})
		}
	}
	sort.SliceStable(t.countries, func(i, j int) bool {
		return longerFirst(t.countries[i].phrase, t.countries[j].phrase)
	})

	for _, kw := range src.Education {
		t.education = append(t.education, keyed{phrase: Fold(kw.Keyword), value: kw.Keyword, rank: kw.Level})
	}
	sort.SliceStable(t.education, func(i, j int) bool {
		return longerFirst(t.education[i].phrase, t.education[j].phrase)
	})

	return t
}

// Default returns tables built from the bundled reference data.
func Default() *Tables {
	return New(DefaultSource())
}

// Source returns a copy of the data the tables were built from.
func (t *Tables) Source() Source {
	return cloneSource(t.source)
}

// Canonical resolves a skill variant to its canonical name. The lookup is
// case-insensitive and ignores surrounding whitespace.
func (t *Tables) Canonical(skill string) (string, bool) {
	name, ok := t.canonical[strings.ToLower(strings.TrimSpace(skill))]
	return name, ok
}

// CategoriesOf returns the sorted category names that contain skill.
func (t *Tables) CategoriesOf(skill string) []string {
	return append([]string(nil), t.categories[strings.ToLower(strings.TrimSpace(skill))]...)
}

// RelatedIndustries returns the industries the graph links from industry. An
// exact key wins; otherwise the longest key contained in industry is used.
func (t *Tables) RelatedIndustries(industry string) []string {
	key := Fold(industry)
	if key == "" {
		return nil
	}

	if related, ok := t.industries[key]; ok {
		return append([]string(nil), related...)
	}

	for _, candidate := range t.industryKeys {
		if HasPhrase(key, candidate) {
			return append([]string(nil), t.industries[candidate]...)
		}
	}

	return nil
}

// SeniorityRank returns the highest ladder rank whose keyword occurs in title.
func (t *Tables) SeniorityRank(title string) (int, string, bool) {
	folded := Fold(title)
	for _, kw := range t.seniority {
		if HasPhrase(folded, kw.phrase) {
			return kw.rank, kw.value, true
		}
	}
	return DefaultSeniorityRank, "", false
}

// Country derives a country name from a free-text location. Longer aliases
// are tried first so that "new south wales" beats "wales".
func (t *Tables) Country(location string) (string, bool) {
	folded := Fold(location)
	for _, alias := range t.countries {
		if HasPhrase(folded, alias.phrase) {
			return alias.value, true
		}
	}
	return "", false
}

// EducationLevel maps a degree description to its ordinal level, matching the
// longest keyword first.
func (t *Tables) EducationLevel(text string) (int, string, bool) {
	folded := Fold(text)
	for _, kw := range t.education {
		if HasPhrase(folded, kw.phrase) {
			return kw.rank, kw.value, true
		}
	}
	return 0, "", false
}

// Merge returns base with the entries of extra appended. Entries that share a
// key (canonical name, category, industry, keyword, country) are combined, and
// numeric values from extra win.
func Merge(base, extra Source) Source {
	out := cloneSource(base)

	for _, set := range extra.Synonyms {
		idx := indexOf(len(out.Synonyms), func(i int) string { return out.Synonyms[i].Canonical }, set.Canonical)
		if idx < 0 {
			out.Synonyms = append(out.Synonyms, SynonymSet{Canonical: set.Canonical, Variants: append([]string(nil), set.Variants...)})
			continue
		}
		for _, v := range set.Variants {
			out.Synonyms[idx].Variants = appendUnique(out.Synonyms[idx].Variants, v)
		}
	}

	for _, category := range extra.Categories {
		idx := indexOf(len(out.Categories), func(i int) string { return out.Categories[i].Name }, category.Name)
		if idx < 0 {
			out.Categories = append(out.Categories, Category{Name: category.Name, Skills: append([]string(nil), category.Skills...)})
			continue
		}
		for _, s := range category.Skills {
			out.Categories[idx].Skills = appendUnique(out.Categories[idx].Skills, s)
		}
	}

	for _, relation := range extra.Industries {
		idx := indexOf(len(out.Industries), func(i int) string { return out.Industries[i].Industry }, relation.Industry)
		if idx < 0 {
			out.Industries = append(out.Industries, IndustryRelation{Industry: relation.Industry, Related: append([]string(nil), relation.Related...)})
			continue
		}
		for _, r := range relation.Related {
			out.Industries[idx].Related = appendUnique(out.Industries[idx].Related, r)
		}
	}

	for _, kw := range extra.Seniority {
		idx := indexOf(len(out.Seniority), func(i int) string { return out.Seniority[i].Keyword }, kw.Keyword)
		if idx < 0 {
			out.Seniority = append(out.Seniority, kw)
			continue
		}
		out.Seniority[idx].Rank = kw.Rank
	}

	for _, country := range extra.Countries {
		idx := indexOf(len(out.Countries), func(i int) string { return out.Countries[i].Name }, country.Name)
		if idx < 0 {
			out.Countries = append(out.Countries, Country{Name: country.Name, Aliases: append([]string(nil), country.Aliases...)})
			continue
		}
		for _, a := range country.Aliases {
			out.Countries[idx].Aliases = appendUnique(out.Countries[idx].Aliases, a)
		}
	}

	for _, kw := range extra.Education {
		idx := indexOf(len(out.Education), func(i int) string { return out.Education[i].Keyword }, kw.Keyword)
		if idx < 0 {
			out.Education = append(out.Education, kw)
			continue
		}
		out.Education[idx].Level = kw.Level
	}

	return out
}

// normalizeSource trims names, lowercases variants and sorts every list so
// that the resulting tables do not depend on the order the data arrived in.
func normalizeSource(src Source) Source {
	out := cloneSource(src)

	for i := range out.Synonyms {
		out.Synonyms[i].Canonical = strings.TrimSpace(out.Synonyms[i].Canonical)
		out.Synonyms[i].Variants = lowerSorted(out.Synonyms[i].Variants)
	}
	sort.SliceStable(out.Synonyms, func(i, j int) bool {
		return out.Synonyms[i].Canonical < out.Synonyms[j].Canonical
	})

	for i := range out.Categories {
		out.Categories[i].Name = strings.TrimSpace(out.Categories[i].Name)
		out.Categories[i].Skills = trimmedSorted(out.Categories[i].Skills)
	}
	sort.SliceStable(out.Categories, func(i, j int) bool {
		return out.Categories[i].Name < out.Categories[j].Name
	})

	// Related industries keep their declared order: the graph is ordered.
	for i := range out.Industries {
		out.Industries[i].Industry = strings.ToLower(strings.TrimSpace(out.Industries[i].Industry))
		related := make([]string, 0, len(out.Industries[i].Related))
		for _, r := range out.Industries[i].Related {
			related = appendUnique(related, strings.ToLower(strings.TrimSpace(r)))
		}
		out.Industries[i].Related = related
	}
	sort.SliceStable(out.Industries, func(i, j int) bool {
		return out.Industries[i].Industry < out.Industries[j].Industry
	})

	for i := range out.Seniority {
		out.Seniority[i].Keyword = strings.ToLower(strings.TrimSpace(out.Seniority[i].Keyword))
	}
	sort.SliceStable(out.Seniority, func(i, j int) bool {
		return out.Seniority[i].Keyword < out.Seniority[j].Keyword
	})

	for i := range out.Countries {
		out.Countries[i].Name = strings.TrimSpace(out.Countries[i].Name)
		out.Countries[i].Aliases = lowerSorted(out.Countries[i].Aliases)
	}
	sort.SliceStable(out.Countries, func(i, j int) bool {
		return out.Countries[i].Name < out.Countries[j].Name
	})

	for i := range out.Education {
		out.Education[i].Keyword = strings.ToLower(strings.TrimSpace(out.Education[i].Keyword))
	}
	sort.SliceStable(out.Education, func(i, j int) bool {
		return out.Education[i].Keyword < out.Education[j].Keyword
	})

	return out
}

func cloneSource(src Source) Source {
	out := Source{
		Synonyms:   make([]SynonymSet, len(src.Synonyms)),
		Categories: make([]Category, len(src.Categories)),
		Industries: make([]IndustryRelation, len(src.Industries)),
		Seniority:  append([]SeniorityKeyword(nil), src.Seniority...),
		Countries:  make([]Country, len(src.Countries)),
		Education:  append([]EducationKeyword(nil), src.Education...),
	}
	for i, s := range src.Synonyms {
		out.Synonyms[i] = SynonymSet{Canonical: s.Canonical, Variants: append([]string(nil), s.Variants...)}
	}
	for i, c := range src.Categories {
		out.Categories[i] = Category{Name: c.Name, Skills: append([]string(nil), c.Skills...)}
	}
	for i, r := range src.Industries {
		out.Industries[i] = IndustryRelation{Industry: r.Industry, Related: append([]string(nil), r.Related...)}
	}
	for i, c := range src.Countries {
		out.Countries[i] = Country{Name: c.Name, Aliases: append([]string(nil), c.Aliases...)}
	}
	return out
}

func indexOf(n int, key func(int) string, want string) int {
	for i := 0; i < n; i++ {
		if strings.EqualFold(strings.TrimSpace(key(i)), strings.TrimSpace(want)) {
			return i
		}
	}
	return -1
}

func appendUnique(list []string, value string) []string {
	if value == "" {
		return list
	}
	for _, existing := range list {
		if strings.EqualFold(existing, value) {
			return list
		}
	}
	return append(list, value)
}

func lowerSorted(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = appendUnique(out, strings.ToLower(strings.TrimSpace(v)))
	}
	sort.Strings(out)
	return out
}

func trimmedSorted(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = appendUnique(out, strings.TrimSpace(v))
	}
	sort.Strings(out)
	return out
}

func sortPhrases(phrases []string) {
	sort.SliceStable(phrases, func(i, j int) bool {
		return longerFirst(phrases[i], phrases[j])
	})
}

// longerFirst orders by length descending, then lexicographically.
func longerFirst(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a < b
}
