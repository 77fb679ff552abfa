package filtering

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spigell/cv-matcher/internal/matching"

	"go.uber.org/zap"
)

// toggle carries the disable state shared by every step.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

type failedFilter struct {
	toggle
}

// NewFailed creates a filter that removes evaluations which carry an error.
func NewFailed() Filter {
	return &failedFilter{}
}

func (f *failedFilter) Name() string { return "failed" }

func (f *failedFilter) Validate(*Config) error { return nil }

func (f *failedFilter) Apply(_ context.Context, deps Deps, v *matching.Evaluations) (*matching.Evaluations, Step, error) {
	initial := v.Len()
	excluded := v.Keep(func(e *matching.Evaluation) bool { return e.Result != nil })
	if len(excluded) > 0 {
		deps.Logger.Warn("excluding evaluations that failed",
			zap.Strings("excluded_candidates", excluded),
			zap.Int("candidates_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

func (f *failedFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}

type minScoreFilter struct {
	toggle
	min int
}

// NewMinScore creates a filter that removes evaluations scoring below the
// configured minimum.
func NewMinScore() Filter {
	return &minScoreFilter{}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Validate(cfg *Config) error {
	f.min = 0
	if cfg != nil {
		f.min = cfg.MinScore
	}
	if f.min < 0 || f.min > 100 {
		return fmt.Errorf("minimum score %d is outside 0-100", f.min)
	}
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, deps Deps, v *matching.Evaluations) (*matching.Evaluations, Step, error) {
	initial := v.Len()
	if f.min == 0 {
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}

	excluded := v.Keep(func(e *matching.Evaluation) bool { return e.Score() >= f.min })
	if len(excluded) > 0 {
		deps.Logger.Info("excluding candidates below minimum score",
			zap.Int("min_score", f.min),
			zap.Strings("excluded_candidates", excluded),
			zap.Int("candidates_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

func (f *minScoreFilter) Status() Status {
	details := map[string]string{}
	if f.min > 0 {
		details["min_score"] = strconv.Itoa(f.min)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type qualityFilter struct {
	toggle
	quality matching.MatchQuality
}

// NewQuality creates a filter that keeps evaluations at or above a match
// quality tier.
func NewQuality() Filter {
	return &qualityFilter{}
}

func (f *qualityFilter) Name() string { return "quality" }

func (f *qualityFilter) Validate(cfg *Config) error {
	f.quality = ""
	if cfg == nil || cfg.Quality == "" {
		return nil
	}

	q, ok := matching.ParseQuality(cfg.Quality)
	if !ok {
		return fmt.Errorf("unknown match quality %q", cfg.Quality)
	}
	f.quality = q
	return nil
}

func (f *qualityFilter) Apply(_ context.Context, deps Deps, v *matching.Evaluations) (*matching.Evaluations, Step, error) {
	initial := v.Len()
	if f.quality == "" {
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}

	floor := f.quality.Rank()
	excluded := v.Keep(func(e *matching.Evaluation) bool {
		return e.Result != nil && e.Result.MatchQuality.Rank() >= floor
	})
	if len(excluded) > 0 {
		deps.Logger.Info("excluding candidates below match quality",
			zap.String("quality", string(f.quality)),
			zap.Strings("excluded_candidates", excluded),
			zap.Int("candidates_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

func (f *qualityFilter) Status() Status {
	details := map[string]string{}
	if f.quality != "" {
		details["quality"] = string(f.quality)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type topFilter struct {
	toggle
	top int
}

// NewTop creates a filter that sorts evaluations best first and keeps the
// configured number of them.
func NewTop() Filter {
	return &topFilter{}
}

func (f *topFilter) Name() string { return "top" }

func (f *topFilter) Validate(cfg *Config) error {
	f.top = 0
	if cfg != nil {
		f.top = cfg.Top
	}
	if f.top < 0 {
		return fmt.Errorf("top must not be negative, got %d", f.top)
	}
	return nil
}

func (f *topFilter) Apply(_ context.Context, deps Deps, v *matching.Evaluations) (*matching.Evaluations, Step, error) {
	initial := v.Len()
	v.SortByScore()
	if f.top == 0 || v.Len() <= f.top {
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}

	kept := 0
	excluded := v.Keep(func(*matching.Evaluation) bool {
		kept++
		return kept <= f.top
	})
	deps.Logger.Info("keeping best candidates only",
		zap.Int("top", f.top),
		zap.Strings("excluded_candidates", excluded),
	)

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

func (f *topFilter) Status() Status {
	details := map[string]string{}
	if f.top > 0 {
		details["top"] = strconv.Itoa(f.top)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
