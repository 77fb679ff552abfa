package scoring

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/spigell/cv-matcher/internal/profile"
)

func newTestScorer() *Scorer {
	clock := func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) }
	return New(nil, 0, clock)
}

func TestTitle(t *testing.T) {
	t.Parallel()

	s := newTestScorer()

	tests := []struct {
		name       string
		experience []profile.Experience
		job        profile.Job
		score      int
		match      string
	}{
		{
			name:       "direct",
			experience: []profile.Experience{{Title: "Senior Backend Engineer"}},
			job:        profile.Job{Title: "Backend Engineer"},
			score:      90,
			match:      TitleMatchDirect,
		},
		{
			name:       "direct inside a compound title",
			experience: []profile.Experience{{Title: "Webdeveloper"}},
			job:        profile.Job{Title: "Developer"},
			score:      90,
			match:      TitleMatchDirect,
		},
		{
			name:       "job title inside the role",
			experience: []profile.Experience{{Title: "Dev"}},
			job:        profile.Job{Title: "DevOps Engineer"},
			score:      90,
			match:      TitleMatchDirect,
		},
		{
			name: "two direct",
			experience: []profile.Experience{
				{Title: "Senior Backend Engineer"},
				{Title: "Backend Engineer"},
			},
			job:   profile.Job{Title: "Backend Engineer"},
			score: 100,
			match: TitleMatchDirect,
		},
		{
			name:       "related through synonyms",
			experience: []profile.Experience{{Title: "Platform Engineer", Description: "built software for payments"}},
			job:        profile.Job{Title: "Software Developer"},
			score:      60,
			match:      TitleMatchRelated,
		},
		{
			name:       "department only",
			experience: []profile.Experience{{Title: "Nurse", Description: "worked in healthcare for years"}},
			job:        profile.Job{Title: "Data Scientist", Industry: "Healthcare"},
			score:      30,
			match:      TitleMatchDepartment,
		},
		{
			name:       "unrelated",
			experience: []profile.Experience{{Title: "Chef"}},
			job:        profile.Job{Title: "Pilot"},
			score:      TitleNone,
			match:      TitleMatchNone,
		},
		{
			name:  "no experience",
			job:   profile.Job{Title: "Pilot"},
			score: TitleNone,
			match: TitleMatchNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := &profile.Candidate{Experience: tt.experience}
			got := s.Title(c, &tt.job)
			if got.Score != tt.score {
				t.Fatalf("expected score %d, got %d (%s)", tt.score, got.Score, got.Rationale)
			}
			if got.MatchType != tt.match {
				t.Fatalf("expected match %q, got %q", tt.match, got.MatchType)
			}
		})
	}
}

func TestCoversKeywordsCountsGroupsOnce(t *testing.T) {
	t.Parallel()

	groups := titleKeywordGroups("software developer")
	if len(groups) != 2 {
		t.Fatalf("expected 2 keyword groups, got %v", groups)
	}

	// Three synonyms of one keyword are still one group out of two.
	if coversKeywords("engineer programmer coder", groups) {
		t.Fatal("synonyms of a single keyword must not reach the coverage share")
	}
	if !coversKeywords("software engineer", groups) {
		t.Fatal("expected both groups to be covered")
	}
}

func TestTitleMatchedRolesAreLimited(t *testing.T) {
	t.Parallel()

	s := newTestScorer()
	c := &profile.Candidate{Experience: []profile.Experience{
		{Title: "Go Developer"}, {Title: "Go Developer"}, {Title: "Senior Go Developer"},
		{Title: "Lead Go Developer"}, {Title: "Staff Go Developer"},
	}}

	got := s.Title(c, &profile.Job{Title: "Go Developer"})
	want := []string{"Go Developer", "Senior Go Developer", "Lead Go Developer"}
	if !reflect.DeepEqual(got.MatchedRoles, want) {
		t.Fatalf("expected %v, got %v", want, got.MatchedRoles)
	}
}

func TestSkills(t *testing.T) {
	t.Parallel()

	s := newTestScorer()

	tests := []struct {
		name      string
		cv        profile.SkillList
		required  profile.SkillList
		preferred profile.SkillList
		score     int
	}{
		{name: "no skills", cv: nil, required: profile.SkillList{"Go"}, score: SkillsEmpty},
		{name: "blank skills", cv: profile.SkillList{" ", ""}, required: profile.SkillList{"Go", "SQL"}, score: SkillsEmpty},
		{name: "all required via synonyms", cv: profile.SkillList{"reactjs", "nodejs"}, required: profile.SkillList{"React", "Node.js"}, score: 85},
		{name: "no requirements, broad profile", cv: profile.SkillList{"Go", "SQL", "Docker"}, score: 55},
		{name: "no requirements, narrow profile", cv: profile.SkillList{"Go"}, score: 35},
		{
			name:      "half required and all preferred",
			cv:        profile.SkillList{"Go", "Docker", "Linux", "Git", "SQL"},
			required:  profile.SkillList{"Go", "Kubernetes"},
			preferred: profile.SkillList{"docker"},
			score:     60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := &profile.Candidate{Skills: tt.cv}
			j := &profile.Job{RequiredSkills: tt.required, PreferredSkills: tt.preferred}
			got := s.Skills(c, j)
			if got.Score != tt.score {
				t.Fatalf("expected score %d, got %d (%s)", tt.score, got.Score, got.Rationale)
			}
		})
	}
}

func TestSkillsTransferable(t *testing.T) {
	t.Parallel()

	s := newTestScorer()
	c := &profile.Candidate{Skills: profile.SkillList{"Go", "Docker", "Linux", "Git", "SQL"}}
	j := &profile.Job{RequiredSkills: profile.SkillList{"Go", "Kubernetes"}}

	got := s.Skills(c, j)
	if !reflect.DeepEqual(got.Missing, []string{"Kubernetes"}) {
		t.Fatalf("unexpected missing skills: %v", got.Missing)
	}

	want := []Transferable{{Missing: "Kubernetes", Related: []string{"Docker", "Linux", "Git"}}}
	if !reflect.DeepEqual(got.Transferable, want) {
		t.Fatalf("expected %+v, got %+v", want, got.Transferable)
	}
}

func TestSkillsMonotonic(t *testing.T) {
	t.Parallel()

	s := newTestScorer()
	j := &profile.Job{
		RequiredSkills:  profile.SkillList{"Go", "Kubernetes", "PostgreSQL", "Terraform"},
		PreferredSkills: profile.SkillList{"GraphQL"},
	}

	cv := profile.SkillList{"Go"}
	prev := s.Skills(&profile.Candidate{Skills: cv}, j).Score
	for _, add := range []string{"k8s", "postgres", "graphql", "terraform", "Rust"} {
		cv = append(cv, add)
		next := s.Skills(&profile.Candidate{Skills: cv}, j).Score
		if next < prev {
			t.Fatalf("adding %q lowered the score from %d to %d", add, prev, next)
		}
		prev = next
	}
}

func TestCareer(t *testing.T) {
	t.Parallel()

	s := newTestScorer()

	tests := []struct {
		name          string
		current       string
		target        string
		score         int
		promotion     bool
		overqualified bool
	}{
		{name: "promotion", current: "Software Engineer", target: "Senior Software Engineer", score: CareerPromotion, promotion: true},
		{name: "lateral", current: "Senior Developer", target: "Senior Engineer", score: CareerLateral},
		{name: "stretch", current: "Engineer", target: "Lead Engineer", score: CareerStretch, promotion: true},
		{name: "overqualified", current: "Director of Engineering", target: "Senior Engineer", score: CareerOverqualified, overqualified: true},
		{name: "under-experienced", current: "Junior Developer", target: "Head of Engineering", score: CareerUnderExperienced},
		{name: "one step down", current: "Senior Engineer", target: "Engineer", score: CareerStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := &profile.Candidate{Experience: []profile.Experience{{Title: tt.current}, {Title: "CEO"}}}
			got := s.Career(c, &profile.Job{Title: tt.target})
			if got.Score != tt.score {
				t.Fatalf("expected score %d, got %d (%s)", tt.score, got.Score, got.Rationale)
			}
			if got.IsPromotion != tt.promotion || got.Overqualified != tt.overqualified {
				t.Fatalf("unexpected flags: %+v", got)
			}
		})
	}

	got := s.Career(&profile.Candidate{}, &profile.Job{Title: "Engineer"})
	if got.Score != CareerNoExperience {
		t.Fatalf("expected %d without experience, got %d", CareerNoExperience, got.Score)
	}
}

func TestExperience(t *testing.T) {
	t.Parallel()

	s := newTestScorer()

	tests := []struct {
		name       string
		experience []profile.Experience
		min, max   int
		score      int
		years      int
		reason     string
	}{
		{
			name:       "over by three",
			experience: []profile.Experience{{Duration: "2014 - Present"}},
			min:        5, max: 8,
			score: 85, years: 11, reason: "over-experienced",
		},
		{
			name:       "within range",
			experience: []profile.Experience{{StartDate: "2018-03", EndDate: "2024-01"}},
			min:        5, max: 8,
			score: 100, years: 6, reason: "within",
		},
		{
			name:       "under by one",
			experience: []profile.Experience{{Duration: "2021-2025"}},
			min:        5, max: 8,
			score: 85, years: 4, reason: "under-experienced",
		},
		{
			name:       "no dates assume two years",
			experience: []profile.Experience{{Title: "Developer"}},
			min:        5, max: 8,
			score: 55, years: 2, reason: "under-experienced",
		},
		{
			name:       "empty entries are skipped",
			experience: []profile.Experience{{}, {Title: "Developer"}, {}},
			min:        5, max: 8,
			score: 55, years: 2, reason: "under-experienced",
		},
		{
			name:       "far over",
			experience: []profile.Experience{{Duration: "2010 - 2025"}},
			min:        2, max: 8,
			score: 60, years: 15, reason: "over-experienced",
		},
		{
			name:       "floor",
			experience: []profile.Experience{{Duration: "1995 - 2025"}},
			min:        2, max: 8,
			score: 50, years: 30, reason: "over-experienced",
		},
		{
			name:       "explicit durations",
			experience: []profile.Experience{{Duration: "18 months"}, {Duration: "3 yrs"}},
			min:        5, max: 8,
			score: 100, years: 5, reason: "within",
		},
		{
			name:       "unbounded maximum",
			experience: []profile.Experience{{Duration: "1995 - now"}},
			min:        2, max: 0,
			score: 100, years: 30, reason: "2+ years",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := &profile.Candidate{Experience: tt.experience}
			got := s.Experience(c, &profile.Job{MinExperience: tt.min, MaxExperience: tt.max})
			if got.Score != tt.score {
				t.Fatalf("expected score %d, got %d (%s)", tt.score, got.Score, got.Rationale)
			}
			if got.Years != tt.years {
				t.Fatalf("expected %d years, got %d", tt.years, got.Years)
			}
			if !strings.Contains(got.Rationale, tt.reason) {
				t.Fatalf("expected rationale to mention %q, got %q", tt.reason, got.Rationale)
			}
		})
	}
}

func TestIndustry(t *testing.T) {
	t.Parallel()

	s := newTestScorer()

	tests := []struct {
		name       string
		experience []profile.Experience
		industry   string
		score      int
	}{
		{name: "unspecified", experience: []profile.Experience{{Title: "Engineer"}}, score: IndustryUnspecified},
		{
			name:       "direct",
			experience: []profile.Experience{{Title: "Backend Engineer", Description: "payments platform at a fintech startup"}},
			industry:   "Fintech",
			score:      85,
		},
		{
			name:       "company name",
			experience: []profile.Experience{{Title: "Engineer", Company: "Healthcare Partners"}},
			industry:   "Healthcare",
			score:      85,
		},
		{
			name:       "related",
			experience: []profile.Experience{{Title: "Engineer", Description: "core banking systems"}},
			industry:   "Fintech",
			score:      45,
		},
		{
			name:       "none",
			experience: []profile.Experience{{Title: "Chef", Description: "fine dining"}},
			industry:   "Fintech",
			score:      IndustryNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := &profile.Candidate{Experience: tt.experience}
			got := s.Industry(c, &profile.Job{Industry: tt.industry})
			if got.Score != tt.score {
				t.Fatalf("expected score %d, got %d (%s)", tt.score, got.Score, got.Rationale)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	t.Parallel()

	s := newTestScorer()

	tests := []struct {
		name      string
		candidate string
		job       string
		kind      profile.LocationType
		score     int
	}{
		{name: "remote without candidate location", candidate: "", job: "Berlin", kind: profile.Remote, score: 100},
		{name: "hybrid local", candidate: "Berlin, Germany", job: "Berlin", kind: profile.Hybrid, score: 100},
		{name: "hybrid elsewhere", candidate: "Paris", job: "Berlin", kind: profile.Hybrid, score: 80},
		{name: "onsite without job location", candidate: "Paris", job: "", kind: profile.Onsite, score: 70},
		{name: "onsite without candidate location", candidate: "", job: "Berlin", kind: profile.Onsite, score: 30},
		{name: "onsite accent folded", candidate: "München", job: "Munchen", kind: profile.Onsite, score: 100},
		{name: "onsite same country", candidate: "Munich", job: "Berlin, Germany", kind: profile.Onsite, score: 50},
		{name: "onsite mismatch", candidate: "Tokyo", job: "Berlin", kind: profile.Onsite, score: 20},
		{name: "unknown type is onsite", candidate: "Tokyo", job: "Berlin", kind: "", score: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := s.Location(&profile.Candidate{Location: tt.candidate}, &profile.Job{Location: tt.job, LocationType: tt.kind})
			if got.Score != tt.score {
				t.Fatalf("expected score %d, got %d (%s)", tt.score, got.Score, got.Rationale)
			}
		})
	}
}

func TestEducation(t *testing.T) {
	t.Parallel()

	s := newTestScorer()

	tests := []struct {
		name        string
		education   []profile.Education
		requirement string
		score       int
	}{
		{name: "one short", education: []profile.Education{{Degree: "BSc", Field: "Computer Science"}}, requirement: "Master's degree", score: EducationOneShort},
		{name: "exceeds", education: []profile.Education{{Degree: "PhD"}}, requirement: "Bachelor", score: EducationMeets},
		{name: "two short", education: []profile.Education{{Degree: "Associate degree"}}, requirement: "Master", score: EducationTwoShort},
		{name: "far short", education: []profile.Education{{Degree: "High School"}}, requirement: "PhD", score: EducationFarShort},
		{name: "highest degree wins", education: []profile.Education{{Degree: "High School"}, {Degree: "MBA"}}, requirement: "Master", score: EducationMeets},
		{name: "missing with requirement", requirement: "Bachelor", score: EducationMissing},
		{name: "missing without requirement", score: EducationMissingNoReq},
		{name: "no requirement", education: []profile.Education{{Degree: "BSc"}}, score: EducationNoRequirement},
		{name: "unparseable requirement", education: []profile.Education{{Degree: "BSc"}}, requirement: "Relevant certification", score: EducationUnparseable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := s.Education(&profile.Candidate{Education: tt.education}, &profile.Job{Education: tt.requirement})
			if got.Score != tt.score {
				t.Fatalf("expected score %d, got %d (%s)", tt.score, got.Score, got.Rationale)
			}
		})
	}
}
