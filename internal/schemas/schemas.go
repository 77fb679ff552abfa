// Package schemas checks candidate and job documents against the bundled
// JSON Schemas before they are decoded.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed candidate.schema.json
var candidateSchema []byte

//go:embed job.schema.json
var jobSchema []byte

// Kind names a document type.
type Kind string

const (
	Candidate Kind = "candidate"
	Job       Kind = "job"
)

var compiled = map[Kind]*gojsonschema.Schema{
	Candidate: mustCompile(Candidate, candidateSchema),
	Job:       mustCompile(Job, jobSchema),
}

func mustCompile(kind Kind, raw []byte) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("schemas: compiling %s schema: %v", kind, err))
	}
	return schema
}

// ValidationError lists the schema violations of one document.
type ValidationError struct {
	Kind   Kind
	Errors []FieldError
}

// FieldError is a single violation at a field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s document is invalid:", ve.Kind)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// Validate checks doc against the schema of kind. Schema violations are
// returned as *ValidationError; documents that are not JSON at all produce
// a plain error.
func Validate(kind Kind, doc []byte) error {
	schema, ok := compiled[kind]
	if !ok {
		return fmt.Errorf("unknown document kind %q", kind)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("reading %s document: %w", kind, err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Kind:   kind,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}

// ValidateCandidate checks a candidate document or an array of them.
func ValidateCandidate(doc []byte) error {
	return Validate(Candidate, doc)
}

// ValidateJob checks a job document.
func ValidateJob(doc []byte) error {
	return Validate(Job, doc)
}
