// Package matching combines the sub-scores into a single match result and
// evaluates many candidate/job pairs in parallel.
package matching

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/spigell/cv-matcher/internal/logger"
	"github.com/spigell/cv-matcher/internal/profile"
	"github.com/spigell/cv-matcher/internal/scoring"
	"github.com/spigell/cv-matcher/internal/skills"
	"github.com/spigell/cv-matcher/internal/taxonomy"
	"github.com/spigell/cv-matcher/internal/utils"

	"go.uber.org/zap"
)

var (
	// ErrMissingJob is returned when no job is supplied.
	ErrMissingJob = errors.New("job specification is required")
	// ErrMissingCandidate is returned when no candidate is supplied.
	ErrMissingCandidate = errors.New("candidate profile is required")
)

// Factor weights in percent.
const (
	WeightTitle      = 25
	WeightSkills     = 25
	WeightCareer     = 15
	WeightExperience = 15
	WeightIndustry   = 10
	WeightEducation  = 5
	WeightLocation   = 5
)

// Completeness multipliers applied when a CV section is missing.
const (
	PenaltyNoSkills     = 0.85
	PenaltyNoExperience = 0.80
	PenaltyNoEducation  = 0.90
	PenaltyNoLocation   = 0.92
)

// Safeguard caps.
const (
	CapTitleBelow      = 20
	CapTitleScore      = 40
	CapTitleSkillBelow = 30
	CapTitleSkillScore = 35
	CapIndustryTitle   = 25
	CapIndustryBelow   = 35
	CapIndustryScore   = 40
)

// Recommendation branch thresholds.
const (
	FairSkillsFrom  = 70
	GrowthSkillFrom = 50

	strengthFrom = 80
	gapBelow     = 50
	maxListItems = 5
	logPreview   = 120
)

type factor struct {
	name   string
	label  string
	weight int
}

// factors is ordered by weight so strengths and gaps list the heaviest first.
var factors = []factor{
	{name: FactorTitle, label: "Job title", weight: WeightTitle},
	{name: FactorSkills, label: "Skills", weight: WeightSkills},
	{name: FactorCareer, label: "Career", weight: WeightCareer},
	{name: FactorExperience, label: "Experience", weight: WeightExperience},
	{name: FactorIndustry, label: "Industry", weight: WeightIndustry},
	{name: FactorEducation, label: "Education", weight: WeightEducation},
	{name: FactorLocation, label: "Location", weight: WeightLocation},
}

func init() {
	total := 0
	for _, f := range factors {
		total += f.weight
	}
	if total != 100 {
		panic(fmt.Sprintf("matching: factor weights sum to %d, want 100", total))
	}
}

// Engine scores candidates against jobs. It is safe for concurrent use.
type Engine struct {
	tables      *taxonomy.Tables
	scorer      *scoring.Scorer
	logger      *zap.Logger
	threshold   int
	concurrency int
	now         func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Evaluations log at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithThreshold sets the skill similarity threshold.
func WithThreshold(threshold int) Option {
	return func(e *Engine) { e.threshold = threshold }
}

// WithClock sets the clock used to resolve "present" in date ranges.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithConcurrency limits how many pairs a batch evaluates at once.
func WithConcurrency(n int) Option {
	return func(e *Engine) { e.concurrency = n }
}

// New returns an engine over tables. Nil tables use the bundled defaults.
func New(tables *taxonomy.Tables, opts ...Option) *Engine {
	if tables == nil {
		tables = taxonomy.Default()
	}

	e := &Engine{
		tables:    tables,
		threshold: skills.DefaultThreshold,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.concurrency <= 0 {
		e.concurrency = runtime.GOMAXPROCS(0)
	}

	e.scorer = scoring.New(skills.New(tables), e.threshold, e.now)
	return e
}

// Tables returns the reference tables the engine scores with.
func (e *Engine) Tables() *taxonomy.Tables {
	return e.tables
}

// Evaluate scores one candidate against one job. It only fails when either
// input is missing; incomplete data lowers the score instead.
func (e *Engine) Evaluate(c *profile.Candidate, j *profile.Job) (*MatchResult, error) {
	if j == nil {
		return nil, ErrMissingJob
	}
	if c == nil {
		return nil, ErrMissingCandidate
	}

	title := e.scorer.Title(c, j)
	skillsRes := e.scorer.Skills(c, j)
	career := e.scorer.Career(c, j)
	experience := e.scorer.Experience(c, j)
	industry := e.scorer.Industry(c, j)
	location := e.scorer.Location(c, j)
	education := e.scorer.Education(c, j)

	breakdown := map[string]scoring.Result{
		FactorTitle:      title.Result,
		FactorSkills:     skillsRes.Result,
		FactorCareer:     career.Result,
		FactorExperience: experience.Result,
		FactorIndustry:   industry.Result,
		FactorLocation:   location.Result,
		FactorEducation:  education.Result,
	}

	var weighted float64
	for _, f := range factors {
		weighted += float64(f.weight*breakdown[f.name].Score) / 100
	}

	multiplier, missing := completeness(c)
	score := int(math.Round(weighted * multiplier))

	score, capped := applyCaps(score, title.Score, skillsRes.Score, industry.Score)
	score = clamp(score)

	quality := Quality(score)

	insights := append([]string(nil), capped...)
	for _, section := range missing {
		insights = append(insights, fmt.Sprintf("CV has no %s, score reduced", section))
	}
	switch {
	case career.IsPromotion:
		insights = append(insights, fmt.Sprintf("Career: %s", career.Label))
	case career.Overqualified:
		insights = append(insights, "Career: likely overqualified, consider retention")
	}
	for _, t := range skillsRes.Transferable {
		insights = append(insights, fmt.Sprintf("Transferable skills for %s: %s", t.Missing, strings.Join(t.Related, ", ")))
	}

	result := &MatchResult{
		OverallScore:   score,
		MatchQuality:   quality,
		Breakdown:      breakdown,
		Strengths:      strengths(breakdown),
		Gaps:           gaps(breakdown, skillsRes.Missing),
		Insights:       limit(insights, maxListItems),
		Recommendation: recommend(quality, skillsRes.Score, career.Score),
	}

	log := logger.WithPairFields(e.logger, c.ID, jobLabel(j))
	if len(capped) > 0 {
		log.Debug("score capped", zap.Strings("caps", capped), zap.Float64("weighted", weighted))
	}
	log.Debug("evaluated candidate",
		zap.Int("score", score),
		zap.String("quality", string(quality)),
		zap.Float64("completeness", multiplier),
		zap.String("recommendation", utils.TruncateForLog(result.Recommendation, logPreview)),
	)

	return result, nil
}

// completeness returns the product of the penalties for missing CV sections
// and the names of those sections.
func completeness(c *profile.Candidate) (float64, []string) {
	multiplier := 1.0
	var missing []string

	if !c.HasSkills() {
		multiplier *= PenaltyNoSkills
		missing = append(missing, "skills")
	}
	if !c.HasExperience() {
		multiplier *= PenaltyNoExperience
		missing = append(missing, "experience")
	}
	if !c.HasEducation() {
		multiplier *= PenaltyNoEducation
		missing = append(missing, "education")
	}
	if !c.HasLocation() {
		multiplier *= PenaltyNoLocation
		missing = append(missing, "location")
	}

	return multiplier, missing
}

// applyCaps runs the safeguard caps in order. A cap only ever lowers the score.
func applyCaps(score, title, skillsScore, industry int) (int, []string) {
	var insights []string

	if title < CapTitleBelow && score > CapTitleScore {
		score = CapTitleScore
		insights = append(insights, fmt.Sprintf("Score capped at %d: no relevant job title experience", CapTitleScore))
	}
	if title < CapTitleSkillBelow && skillsScore < CapTitleSkillBelow && score > CapTitleSkillScore {
		score = CapTitleSkillScore
		insights = append(insights, fmt.Sprintf("Score capped at %d: weak title and skills match", CapTitleSkillScore))
	}
	if title < CapIndustryTitle && industry < CapIndustryBelow && score > CapIndustryScore {
		score = CapIndustryScore
		insights = append(insights, fmt.Sprintf("Score capped at %d: weak title and industry match", CapIndustryScore))
	}

	return score, insights
}

func strengths(breakdown map[string]scoring.Result) []string {
	var out []string
	for _, f := range factors {
		r := breakdown[f.name]
		if r.Score >= strengthFrom {
			out = append(out, fmt.Sprintf("%s: %s", f.label, r.Rationale))
		}
	}
	return limit(out, maxListItems)
}

func gaps(breakdown map[string]scoring.Result, missingSkills []string) []string {
	var out []string
	if len(missingSkills) > 0 {
		out = append(out, "Missing required skills: "+strings.Join(missingSkills, ", "))
	}
	for _, f := range factors {
		r := breakdown[f.name]
		if r.Score < gapBelow {
			out = append(out, fmt.Sprintf("%s: %s", f.label, r.Rationale))
		}
	}
	return limit(out, maxListItems)
}

func recommend(quality MatchQuality, skillsScore, careerScore int) string {
	switch quality {
	case Excellent:
		return "Strongly recommended: excellent match, proceed to interview"
	case VeryGood:
		return "Recommended: strong match, worth interviewing"
	case Good:
		return "Consider: good match, probe the gaps in an interview"
	case Fair:
		if skillsScore >= FairSkillsFrom {
			return "Consider with caution: good skills, but gaps in other areas"
		}
		return "Fair overall match: review against other candidates"
	default:
		if careerScore == scoring.CareerPromotion && skillsScore >= GrowthSkillFrom {
			return "Growth potential: a natural promotion step despite a low overall match"
		}
		return "Not recommended: low overall match"
	}
}

func limit(list []string, n int) []string {
	if list == nil {
		return []string{}
	}
	if len(list) > n {
		return list[:n]
	}
	return list
}

func clamp(score int) int {
	return max(0, min(100, score))
}

func jobLabel(j *profile.Job) string {
	if id := strings.TrimSpace(j.ID); id != "" {
		return id
	}
	return j.Title
}
