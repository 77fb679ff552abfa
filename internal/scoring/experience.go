package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spigell/cv-matcher/internal/profile"
)

// Experience duration curve.
const (
	ExperienceInRange = 100

	ExperienceUnderSlight = 85
	ExperienceUnderStep   = 15

	ExperienceOverSlight   = 95
	ExperienceOverModerate = 85
	ExperienceOverLarge    = 70
	ExperienceOverStep     = 5
	ExperienceOverFloor    = 50

	// DefaultEntryYears is assumed for an entry without parseable dates.
	DefaultEntryYears = 2.0
)

var (
	yearPattern     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	presentPattern  = regexp.MustCompile(`\b(present|current|currently|now|today|ongoing)\b`)
	durationPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(years?|yrs?|months?|mos?)\b`)
)

// ExperienceResult is the experience duration sub-score.
type ExperienceResult struct {
	Result
	Years int `json:"years"`
	Min   int `json:"min"`
	Max   int `json:"max"`
}

// Experience rates the candidate's total years of experience against the
// job's accepted range. An entry without dates counts as two years, but an
// entry with no fields set at all is skipped and adds nothing.
func (s *Scorer) Experience(c *profile.Candidate, j *profile.Job) ExperienceResult {
	currentYear := s.now().Year()

	var (
		total    float64
		evidence []string
	)
	for _, e := range c.Experience {
		if e == (profile.Experience{}) {
			continue
		}
		y, how := entryYears(e.Period(), currentYear)
		total += y
		evidence = append(evidence, entryEvidence(e, y, how))
	}

	lo, hi := j.ExperienceRange()
	years := int(math.Round(total))

	res := ExperienceResult{Years: years, Min: lo, Max: hi}
	res.Evidence = evidence

	switch {
	case years < lo:
		d := lo - years
		if d <= 1 {
			res.Score = ExperienceUnderSlight
		} else {
			res.Score = max(0, ExperienceInRange-ExperienceUnderStep*d)
		}
		res.Rationale = fmt.Sprintf("%d years, %d below the minimum of %d (under-experienced)", years, d, lo)
	case years > hi:
		d := years - hi
		switch {
		case d <= 1:
			res.Score = ExperienceOverSlight
		case d <= 3:
			res.Score = ExperienceOverModerate
		case d <= 5:
			res.Score = ExperienceOverLarge
		default:
			res.Score = max(ExperienceOverFloor, ExperienceOverLarge-ExperienceOverStep*(d-5))
		}
		res.Rationale = fmt.Sprintf("%d years, %d above the maximum of %d (over-experienced)", years, d, hi)
	default:
		res.Score = ExperienceInRange
		res.Rationale = fmt.Sprintf("%d years within the required %s", years, rangeLabel(lo, hi))
	}

	return res
}

// entryYears estimates the length of one entry and reports how it was read.
func entryYears(period string, currentYear int) (float64, string) {
	text := strings.ToLower(period)

	var years []int
	for _, token := range yearPattern.FindAllString(text, -1) {
		if y, err := strconv.Atoi(token); err == nil {
			years = append(years, y)
		}
	}
	if presentPattern.MatchString(text) {
		years = append(years, currentYear)
	}
	if len(years) > 0 {
		lo, hi := years[0], years[0]
		for _, y := range years[1:] {
			lo = min(lo, y)
			hi = max(hi, y)
		}
		return float64(hi - lo), "dates"
	}

	var total float64
	for _, m := range durationPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if strings.HasPrefix(m[2], "m") {
			n /= 12
		}
		total += n
	}
	if total > 0 {
		return total, "duration"
	}

	return DefaultEntryYears, "assumed"
}

func entryEvidence(e profile.Experience, years float64, how string) string {
	label := strings.TrimSpace(e.Title)
	if label == "" {
		label = strings.TrimSpace(e.Company)
	}
	if label == "" {
		label = "untitled role"
	}
	return fmt.Sprintf("%s: %s years (%s)", label, strconv.FormatFloat(years, 'f', -1, 64), how)
}

func rangeLabel(lo, hi int) string {
	if hi >= profile.DefaultMaxExperience {
		return fmt.Sprintf("%d+ years", lo)
	}
	return fmt.Sprintf("%d-%d years", lo, hi)
}
