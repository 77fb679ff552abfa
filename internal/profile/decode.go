package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/mitchellh/mapstructure"
)

// ErrEmptyDocument is returned when a document is blank or JSON null.
var ErrEmptyDocument = errors.New("empty document")

// keyAliases maps squashed field names (lowercase, no separators) that
// extraction services commonly emit onto the names this package uses.
var keyAliases = map[string]string{
	"position":             "title",
	"role":                 "title",
	"jobtitle":             "title",
	"employer":             "company",
	"organization":         "company",
	"dates":                "duration",
	"daterange":            "duration",
	"period":               "duration",
	"from":                 "startdate",
	"start":                "startdate",
	"to":                   "enddate",
	"end":                  "enddate",
	"school":               "institution",
	"university":           "institution",
	"fieldofstudy":         "field",
	"major":                "field",
	"qualification":        "degree",
	"graduationyear":       "year",
	"workexperience":       "experience",
	"skillset":             "skills",
	"sector":               "industry",
	"departmentorindustry": "department",
	"required":             "requiredskills",
	"musthave":             "requiredskills",
	"preferred":            "preferredskills",
	"nicetohave":           "preferredskills",
	"minyears":             "minexperience",
	"maxyears":             "maxexperience",
	"educationrequirement": "education",
	"worktype":             "locationtype",
	"workplacetype":        "locationtype",
	"fullname":             "name",
}

// DecodeCandidate decodes a single candidate document.
func DecodeCandidate(data []byte) (*Candidate, error) {
	raw, err := parse(data)
	if err != nil {
		return nil, err
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("candidate must be a JSON object, got %T", raw)
	}

	return CandidateFromMap(m)
}

// DecodeCandidates decodes either a single candidate object or an array of
// them.
func DecodeCandidates(data []byte) ([]*Candidate, error) {
	raw, err := parse(data)
	if err != nil {
		return nil, err
	}

	switch doc := raw.(type) {
	case map[string]any:
		c, err := CandidateFromMap(doc)
		if err != nil {
			return nil, err
		}
		return []*Candidate{c}, nil
	case []any:
		out := make([]*Candidate, 0, len(doc))
		for i, item := range doc {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("candidate #%d must be a JSON object, got %T", i, item)
			}
			c, err := CandidateFromMap(m)
			if err != nil {
				return nil, fmt.Errorf("candidate #%d: %w", i, err)
			}
			out = append(out, c)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("candidates must be a JSON object or array, got %T", raw)
	}
}

// CandidateFromMap decodes an already parsed candidate document.
func CandidateFromMap(m map[string]any) (*Candidate, error) {
	var c Candidate
	if err := decode(m, &c); err != nil {
		return nil, fmt.Errorf("decoding candidate: %w", err)
	}
	return &c, nil
}

// DecodeJob decodes a job document.
func DecodeJob(data []byte) (*Job, error) {
	raw, err := parse(data)
	if err != nil {
		return nil, err
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("job must be a JSON object, got %T", raw)
	}

	return JobFromMap(m)
}

// JobFromMap decodes an already parsed job document.
func JobFromMap(m map[string]any) (*Job, error) {
	var j Job
	if err := decode(m, &j); err != nil {
		return nil, fmt.Errorf("decoding job: %w", err)
	}
	j.LocationType = j.LocationType.Normalize()
	if _, ok := squashKeys(m).(map[string]any)["maxexperience"]; !ok {
		j.MaxExperience = DefaultMaxExperience
	}
	return &j, nil
}

func parse(data []byte) (any, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if raw == nil {
		return nil, ErrEmptyDocument
	}
	return raw, nil
}

func decode(input map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			skillListHook,
			educationHook,
			experienceHook,
			intHook,
			joinStringsHook,
		),
	})
	if err != nil {
		return err
	}

	return decoder.Decode(squashKeys(input))
}

// squashKeys lowercases map keys, strips '_', '-' and spaces, and resolves
// aliases, recursively.
func squashKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		// Sorted so that colliding spellings resolve the same way every time.
		sort.Strings(keys)
		for _, k := range keys {
			key := squash(k)
			if alias, ok := keyAliases[key]; ok {
				key = alias
			}
			if _, exists := out[key]; exists {
				continue
			}
			out[key] = squashKeys(val[k])
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = squashKeys(item)
		}
		return out
	default:
		return v
	}
}

func squash(key string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(key) {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var (
	skillListType  = reflect.TypeOf(SkillList(nil))
	educationType  = reflect.TypeOf([]Education(nil))
	experienceType = reflect.TypeOf([]Experience(nil))
)

func skillListHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != skillListType {
		return data, nil
	}
	return flattenSkills(data), nil
}

func flattenSkills(data any) []string {
	switch val := data.(type) {
	case nil:
		return nil
	case string:
		return SplitList(val)
	case []any:
		var out []string
		for _, item := range val {
			out = append(out, flattenSkills(item)...)
		}
		return out
	case map[string]any:
		// {"name": "Go", "level": "expert"} is a single skill.
		if name, ok := val["name"].(string); ok {
			return SplitList(name)
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var out []string
		for _, k := range keys {
			out = append(out, flattenSkills(val[k])...)
		}
		return out
	default:
		return []string{fmt.Sprint(val)}
	}
}

// SplitList splits a comma, semicolon or newline separated string, dropping
// blank items.
func SplitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func educationHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != educationType {
		return data, nil
	}

	switch val := data.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			return []any{}, nil
		}
		return []any{map[string]any{"degree": val}}, nil
	case map[string]any:
		return []any{val}, nil
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			switch entry := item.(type) {
			case string:
				if strings.TrimSpace(entry) != "" {
					out = append(out, map[string]any{"degree": entry})
				}
			case map[string]any:
				out = append(out, entry)
			}
		}
		return out, nil
	default:
		return data, nil
	}
}

func experienceHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != experienceType {
		return data, nil
	}

	switch val := data.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			return []any{}, nil
		}
		return []any{map[string]any{"description": val}}, nil
	case map[string]any:
		return []any{val}, nil
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			switch entry := item.(type) {
			case string:
				if strings.TrimSpace(entry) != "" {
					out = append(out, map[string]any{"description": entry})
				}
			case map[string]any:
				out = append(out, entry)
			}
		}
		return out, nil
	default:
		return data, nil
	}
}

// intHook reads the leading number out of strings such as "5+ years".
func intHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}

	s, ok := data.(string)
	if !ok {
		return data, nil
	}

	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, nil
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// joinStringsHook accepts a list where a single string is expected.
func joinStringsHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}

	list, ok := data.([]any)
	if !ok {
		return data, nil
	}

	parts := make([]string, 0, len(list))
	for _, item := range list {
		if s := strings.TrimSpace(fmt.Sprint(item)); s != "" && item != nil {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", "), nil
}
