package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spigell/cv-matcher/internal/input"
	"github.com/spigell/cv-matcher/internal/profile"
	"github.com/spigell/cv-matcher/internal/schemas"

	"go.uber.org/zap"
)

// loadJob reads, validates and decodes a job. A job that breaks the schema
// is an error.
func loadJob(src input.Source) (*profile.Job, error) {
	doc, err := input.Load(src)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateJob(doc.Data); err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Origin, err)
	}
	job, err := profile.DecodeJob(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Origin, err)
	}
	return job, nil
}

// loadJobs loads every job file named by paths, directories included.
func loadJobs(paths []string) ([]*profile.Job, error) {
	files, err := input.Expand(paths)
	if err != nil {
		return nil, err
	}

	jobs := make([]*profile.Job, 0, len(files))
	for _, file := range files {
		job, err := loadJob(input.Source{Name: "job", File: file})
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// decodeCandidates decodes documents that hold one candidate or an array of
// them. Schema violations are only logged.
func decodeCandidates(logger *zap.Logger, docs []*input.Document) ([]*profile.Candidate, error) {
	var out []*profile.Candidate
	for _, doc := range docs {
		if err := schemas.ValidateCandidate(doc.Data); err != nil {
			logger.Warn("candidate does not match schema", zap.String("origin", doc.Origin), zap.Error(err))
		}

		candidates, err := profile.DecodeCandidates(doc.Data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", doc.Origin, err)
		}
		// IDs derived from the file keep reruns comparable.
		for i, c := range candidates {
			c.EnsureID(fmt.Sprintf("%s#%d", doc.Origin, i))
		}
		out = append(out, candidates...)
	}
	return out, nil
}

func loadCandidate(logger *zap.Logger, src input.Source) (*profile.Candidate, error) {
	doc, err := input.Load(src)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateCandidate(doc.Data); err != nil {
		logger.Warn("candidate does not match schema", zap.String("origin", doc.Origin), zap.Error(err))
	}

	candidate, err := profile.DecodeCandidate(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Origin, err)
	}
	return candidate, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
