package matching

import (
	"context"
	"fmt"
	"strings"

	"github.com/spigell/cv-matcher/internal/profile"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Evaluation is one scored candidate/job pair. Error is set instead of
// Result when the pair could not be evaluated.
type Evaluation struct {
	CandidateID string       `json:"candidateId"`
	Name        string       `json:"name,omitempty"`
	JobID       string       `json:"jobId,omitempty"`
	JobTitle    string       `json:"jobTitle,omitempty"`
	Result      *MatchResult `json:"result,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// Score returns the overall score, or -1 for failed evaluations.
func (e *Evaluation) Score() int {
	if e.Result == nil {
		return -1
	}
	return e.Result.OverallScore
}

// EvaluateBatch scores every candidate against job. Results keep the order of
// candidates and do not depend on the concurrency level. A nil candidate
// yields a failed evaluation rather than aborting the batch.
func (e *Engine) EvaluateBatch(ctx context.Context, candidates []*profile.Candidate, job *profile.Job) (*Evaluations, error) {
	if job == nil {
		return nil, ErrMissingJob
	}

	e.logger.Info("evaluating candidates",
		zap.Int("candidates", len(candidates)),
		zap.String("job", jobLabel(job)),
		zap.Int("concurrency", e.concurrency),
	)

	items, err := e.fanOut(ctx, len(candidates), func(i int) *Evaluation {
		return e.evaluatePair(candidateID(candidates[i], i), candidates[i], job)
	})
	if err != nil {
		return nil, err
	}

	return e.done(items), nil
}

// EvaluateJobs scores one candidate against every job, in the order of jobs.
func (e *Engine) EvaluateJobs(ctx context.Context, candidate *profile.Candidate, jobs []*profile.Job) (*Evaluations, error) {
	if candidate == nil {
		return nil, ErrMissingCandidate
	}

	id := candidateID(candidate, 0)
	e.logger.Info("evaluating jobs",
		zap.String("candidate_id", id),
		zap.Int("jobs", len(jobs)),
		zap.Int("concurrency", e.concurrency),
	)

	items, err := e.fanOut(ctx, len(jobs), func(i int) *Evaluation {
		return e.evaluatePair(id, candidate, jobs[i])
	})
	if err != nil {
		return nil, err
	}

	return e.done(items), nil
}

// fanOut runs eval for every index with at most e.concurrency in flight.
// Cancelling ctx stops further submissions.
func (e *Engine) fanOut(ctx context.Context, n int, eval func(int) *Evaluation) ([]*Evaluation, error) {
	items := make([]*Evaluation, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i] = eval(i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (e *Engine) evaluatePair(id string, c *profile.Candidate, j *profile.Job) *Evaluation {
	ev := &Evaluation{CandidateID: id}
	if c != nil {
		ev.Name = c.Name
	}
	if j != nil {
		ev.JobID = j.ID
		ev.JobTitle = j.Title
	}

	result, err := e.Evaluate(c, j)
	if err != nil {
		ev.Error = err.Error()
		e.logger.Warn("evaluation failed", zap.String("candidate_id", id), zap.Error(err))
		return ev
	}

	ev.Result = result
	return ev
}

func (e *Engine) done(items []*Evaluation) *Evaluations {
	out := &Evaluations{Items: items}
	e.logger.Info("evaluation finished",
		zap.Int("evaluated", out.Len()),
		zap.Int("failed", out.Failed()),
	)
	return out
}

func candidateID(c *profile.Candidate, index int) string {
	if c != nil {
		if id := strings.TrimSpace(c.ID); id != "" {
			return id
		}
	}
	return profile.StableID(fmt.Sprintf("candidate-%d", index))
}
