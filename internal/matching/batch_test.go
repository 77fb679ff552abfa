package matching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/spigell/cv-matcher/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchCandidates(n int) []*profile.Candidate {
	titles := []string{"Go Developer", "Chef", "Senior Backend Engineer", "Data Analyst", "Junior Developer"}
	skills := [][]string{{"Go", "SQL"}, {"Cooking"}, {"golang", "postgres", "k8s"}, {"Excel", "SQL"}, nil}

	out := make([]*profile.Candidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &profile.Candidate{
			ID:         fmt.Sprintf("c-%02d", i),
			Skills:     skills[i%len(skills)],
			Experience: []profile.Experience{{Title: titles[i%len(titles)], Duration: fmt.Sprintf("%d - present", 2010+i%10)}},
			Location:   "Berlin",
		})
	}
	return out
}

func TestEvaluateBatchIsOrderedAndIndependentOfConcurrency(t *testing.T) {
	t.Parallel()

	candidates := batchCandidates(23)
	job := goJob()

	serial, err := newTestEngine(WithConcurrency(1)).EvaluateBatch(context.Background(), candidates, job)
	require.NoError(t, err)
	parallel, err := newTestEngine(WithConcurrency(8)).EvaluateBatch(context.Background(), candidates, job)
	require.NoError(t, err)

	require.Equal(t, len(candidates), serial.Len())
	for i, item := range parallel.Items {
		assert.Equal(t, candidates[i].ID, item.CandidateID)
	}

	a, err := json.Marshal(serial)
	require.NoError(t, err)
	b, err := json.Marshal(parallel)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestEvaluateBatchFailures(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	_, err := e.EvaluateBatch(context.Background(), batchCandidates(2), nil)
	assert.True(t, errors.Is(err, ErrMissingJob))

	list, err := e.EvaluateBatch(context.Background(), []*profile.Candidate{nil, {Name: "Anon"}}, goJob())
	require.NoError(t, err)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, 1, list.Failed())
	assert.Equal(t, ErrMissingCandidate.Error(), list.Items[0].Error)
	assert.Equal(t, -1, list.Items[0].Score())
	assert.NotNil(t, list.Items[1].Result)
	assert.Equal(t, profile.StableID("candidate-1"), list.Items[1].CandidateID)
}

func TestEvaluateBatchCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEngine().EvaluateBatch(ctx, batchCandidates(5), goJob())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEvaluateJobs(t *testing.T) {
	t.Parallel()

	jobs := []*profile.Job{
		{ID: "a", Title: "Chef"},
		goJob(),
		nil,
	}

	list, err := newTestEngine().EvaluateJobs(context.Background(), strongCandidate(), jobs)
	require.NoError(t, err)
	require.Equal(t, 3, list.Len())

	assert.Equal(t, "a", list.Items[0].JobID)
	assert.Equal(t, "job-1", list.Items[1].JobID)
	assert.Equal(t, 97, list.Items[1].Score())
	assert.Equal(t, ErrMissingJob.Error(), list.Items[2].Error)
	for _, item := range list.Items {
		assert.Equal(t, "dana", item.CandidateID)
	}

	_, err = newTestEngine().EvaluateJobs(context.Background(), nil, jobs)
	assert.True(t, errors.Is(err, ErrMissingCandidate))
}

func TestEvaluationsHelpers(t *testing.T) {
	t.Parallel()

	list := &Evaluations{Items: []*Evaluation{
		{CandidateID: "low", Result: &MatchResult{OverallScore: 30, MatchQuality: Poor, Recommendation: "no"}},
		{CandidateID: "broken", Error: "boom"},
		{CandidateID: "high", Name: "Hi", JobTitle: "Go Developer", Result: &MatchResult{OverallScore: 90, MatchQuality: Excellent, Recommendation: "yes"}},
		{CandidateID: "mid", Result: &MatchResult{OverallScore: 30, MatchQuality: Poor}},
	}}

	report := list.ReportByQuality()
	require.Len(t, report[string(Excellent)], 1)
	assert.Equal(t, "90", report[string(Excellent)][0]["score"])
	assert.Equal(t, "Go Developer", report[string(Excellent)][0]["job"])
	assert.Equal(t, "boom", report[ReportFailed][0]["error"])
	assert.Len(t, report[string(Poor)], 2)

	list.SortByScore()
	ids := make([]string, 0, list.Len())
	for _, item := range list.Items {
		ids = append(ids, item.CandidateID)
	}
	assert.Equal(t, []string{"high", "low", "mid", "broken"}, ids)

	dropped := list.Keep(func(e *Evaluation) bool { return e.Score() >= 30 })
	assert.Equal(t, []string{"broken"}, dropped)
	assert.Equal(t, 3, list.Len())
	assert.NotNil(t, list.FindByID("mid"))
	assert.Nil(t, list.FindByID("broken"))
}

func TestEvaluationsDumpToTmpFile(t *testing.T) {
	t.Parallel()

	list := &Evaluations{Items: []*Evaluation{
		{CandidateID: "c-1", Result: &MatchResult{OverallScore: 77, MatchQuality: VeryGood}},
	}}

	name, err := list.DumpToTmpFile()
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(name) })

	data, err := os.ReadFile(name)
	require.NoError(t, err)

	var decoded Evaluations
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, 1, decoded.Len())
	assert.Equal(t, 77, decoded.Items[0].Score())
}
