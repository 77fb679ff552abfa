package matching

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spigell/cv-matcher/internal/profile"
	"github.com/spigell/cv-matcher/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fixedClock = func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) }

func newTestEngine(opts ...Option) *Engine {
	return New(nil, append([]Option{WithClock(fixedClock)}, opts...)...)
}

func strongCandidate() *profile.Candidate {
	return &profile.Candidate{
		ID:     "dana",
		Name:   "Dana",
		Skills: profile.SkillList{"Go", "PostgreSQL", "Kubernetes", "Docker", "gRPC"},
		Experience: []profile.Experience{
			{Title: "Senior Go Developer", Company: "PayCo", Description: "fintech payments platform", Duration: "2019 - Present"},
			{Title: "Go Developer", Duration: "2016 - 2019"},
		},
		Education: []profile.Education{{Degree: "BSc Computer Science"}},
		Location:  "Berlin, Germany",
	}
}

func goJob() *profile.Job {
	return &profile.Job{
		ID:              "job-1",
		Title:           "Senior Go Developer",
		Industry:        "Fintech",
		RequiredSkills:  profile.SkillList{"Go", "PostgreSQL", "Kubernetes"},
		PreferredSkills: profile.SkillList{"Docker"},
		MinExperience:   5,
		MaxExperience:   10,
		Education:       "Bachelor's degree",
		Location:        "Berlin",
		LocationType:    profile.Hybrid,
	}
}

func TestEvaluatePreconditions(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	_, err := e.Evaluate(strongCandidate(), nil)
	assert.True(t, errors.Is(err, ErrMissingJob))

	_, err = e.Evaluate(nil, goJob())
	assert.True(t, errors.Is(err, ErrMissingCandidate))
}

func TestEvaluateStrongMatch(t *testing.T) {
	t.Parallel()

	result, err := newTestEngine().Evaluate(strongCandidate(), goJob())
	require.NoError(t, err)

	assert.Equal(t, 100, result.Factor(FactorTitle))
	assert.Equal(t, 100, result.Factor(FactorSkills))
	assert.Equal(t, scoring.CareerLateral, result.Factor(FactorCareer))
	assert.Equal(t, 100, result.Factor(FactorExperience))
	assert.Equal(t, 85, result.Factor(FactorIndustry))
	assert.Equal(t, 100, result.Factor(FactorLocation))
	assert.Equal(t, 100, result.Factor(FactorEducation))

	assert.Equal(t, 97, result.OverallScore)
	assert.Equal(t, Excellent, result.MatchQuality)
	assert.Empty(t, result.Gaps)
	assert.Empty(t, result.Insights)
	require.NotEmpty(t, result.Strengths)
	assert.True(t, strings.HasPrefix(result.Strengths[0], "Job title:"))
	assert.Contains(t, result.Recommendation, "Strongly recommended")
}

func TestEvaluateSafeguardCaps(t *testing.T) {
	t.Parallel()

	candidate := &profile.Candidate{
		Experience: []profile.Experience{{Title: "Chef", Company: "Fintech Kitchen", Duration: "2018 - 2024"}},
		Education:  []profile.Education{{Degree: "PhD"}},
		Location:   "Berlin",
	}
	job := &profile.Job{
		Title:          "Pilot",
		Industry:       "Fintech",
		RequiredSkills: profile.SkillList{"Flight Planning"},
		MinExperience:  5,
		MaxExperience:  8,
		Education:      "Bachelor",
		LocationType:   profile.Remote,
	}

	result, err := newTestEngine().Evaluate(candidate, job)
	require.NoError(t, err)

	assert.Equal(t, scoring.TitleNone, result.Factor(FactorTitle))
	assert.Equal(t, scoring.SkillsEmpty, result.Factor(FactorSkills))
	assert.LessOrEqual(t, result.OverallScore, CapTitleSkillScore)
	assert.Equal(t, Poor, result.MatchQuality)

	require.GreaterOrEqual(t, len(result.Insights), 2)
	assert.Contains(t, result.Insights[0], "capped at 40")
	assert.Contains(t, result.Insights[1], "capped at 35")
	assert.Contains(t, result.Recommendation, "Not recommended")
}

func TestEvaluateEmptyInputs(t *testing.T) {
	t.Parallel()

	result, err := newTestEngine().Evaluate(&profile.Candidate{}, &profile.Job{})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
	assert.Len(t, result.Breakdown, len(factors))
	assert.LessOrEqual(t, len(result.Insights), maxListItems)
	assert.LessOrEqual(t, len(result.Gaps), maxListItems)
	assert.NotEmpty(t, result.Recommendation)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	t.Parallel()

	a, err := profile.DecodeCandidate([]byte(`{
		"skills": {"languages": ["Go", "Python"], "tools": ["Docker", "k8s"]},
		"experience": [{"title": "Backend Engineer", "description": "banking APIs", "duration": "2017 - present"}],
		"location": "Amsterdam"
	}`))
	require.NoError(t, err)

	b, err := profile.DecodeCandidate([]byte(`{
		"location": "Amsterdam",
		"experience": [{"duration": "2017 - present", "description": "banking APIs", "title": "Backend Engineer"}],
		"skills": {"tools": ["Docker", "k8s"], "languages": ["Go", "Python"]}
	}`))
	require.NoError(t, err)

	job := goJob()
	e := newTestEngine()

	first, err := e.Evaluate(a, job)
	require.NoError(t, err)
	second, err := e.Evaluate(b, job)
	require.NoError(t, err)
	again, err := e.Evaluate(a, job)
	require.NoError(t, err)

	want, err := json.Marshal(first)
	require.NoError(t, err)
	for _, r := range []*MatchResult{second, again} {
		got, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t, string(want), string(got))
	}
}

func TestQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  MatchQuality
	}{
		{100, Excellent}, {85, Excellent}, {84, VeryGood}, {70, VeryGood},
		{69, Good}, {60, Good}, {59, Fair}, {45, Fair}, {44, Poor}, {0, Poor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Quality(tt.score), "score %d", tt.score)
	}

	q, ok := ParseQuality("very-good")
	assert.True(t, ok)
	assert.Equal(t, VeryGood, q)
	assert.Greater(t, Excellent.Rank(), Good.Rank())

	_, ok = ParseQuality("stellar")
	assert.False(t, ok)
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	assert.Contains(t, recommend(Fair, FairSkillsFrom, scoring.CareerStandard), "good skills")
	assert.Contains(t, recommend(Fair, FairSkillsFrom-1, scoring.CareerStandard), "Fair overall")
	assert.Contains(t, recommend(Poor, GrowthSkillFrom, scoring.CareerPromotion), "Growth potential")
	assert.Contains(t, recommend(Poor, GrowthSkillFrom-1, scoring.CareerPromotion), "Not recommended")
	assert.Contains(t, recommend(Poor, 90, scoring.CareerStretch), "Not recommended")
}

func TestApplyCapsOnlyTighten(t *testing.T) {
	t.Parallel()

	score, insights := applyCaps(30, 5, 5, 5)
	assert.Equal(t, 30, score)
	assert.Empty(t, insights)

	score, insights = applyCaps(80, 22, 90, 10)
	assert.Equal(t, CapIndustryScore, score)
	assert.Len(t, insights, 1)
}

func TestEvaluateLogs(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.DebugLevel)
	e := newTestEngine(WithLogger(zap.New(core)))

	_, err := e.Evaluate(strongCandidate(), goJob())
	require.NoError(t, err)

	entries := observed.FilterMessage("evaluated candidate").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "dana", ctx["candidate_id"])
	assert.Equal(t, "job-1", ctx["job"])
	assert.Equal(t, int64(97), ctx["score"])
}
