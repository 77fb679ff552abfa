package matching

import (
	"encoding/json"
	"os"
	"sort"
	"strconv"
)

// ReportFailed is the report key for pairs that could not be evaluated.
const ReportFailed = "Failed"

// Evaluations is an ordered list of batch results.
type Evaluations struct {
	Items []*Evaluation `json:"items"`
}

func (v *Evaluations) Len() int {
	return len(v.Items)
}

// Failed counts the evaluations that carry an error.
func (v *Evaluations) Failed() int {
	n := 0
	for _, item := range v.Items {
		if item.Result == nil {
			n++
		}
	}
	return n
}

// Keep removes every evaluation for which keep returns false and returns the
// candidate IDs it removed. Order is preserved.
func (v *Evaluations) Keep(keep func(*Evaluation) bool) []string {
	var dropped []string
	kept := v.Items[:0]
	for _, item := range v.Items {
		if keep(item) {
			kept = append(kept, item)
			continue
		}
		dropped = append(dropped, item.CandidateID)
	}
	v.Items = kept
	return dropped
}

// SortByScore orders evaluations best first. Ties keep their input order.
func (v *Evaluations) SortByScore() {
	sort.SliceStable(v.Items, func(i, j int) bool {
		return v.Items[i].Score() > v.Items[j].Score()
	})
}

// FindByID returns the first evaluation of the candidate with id.
func (v *Evaluations) FindByID(id string) *Evaluation {
	for _, item := range v.Items {
		if item.CandidateID == id {
			return item
		}
	}
	return nil
}

// ReportByQuality groups a summary of each evaluation by match quality.
func (v *Evaluations) ReportByQuality() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, item := range v.Items {
		if item.Result == nil {
			report[ReportFailed] = append(report[ReportFailed], map[string]string{
				"candidate": item.CandidateID,
				"name":      item.Name,
				"error":     item.Error,
			})
			continue
		}

		key := string(item.Result.MatchQuality)
		entry := map[string]string{
			"candidate":      item.CandidateID,
			"name":           item.Name,
			"score":          strconv.Itoa(item.Result.OverallScore),
			"recommendation": item.Result.Recommendation,
		}
		if item.JobTitle != "" {
			entry["job"] = item.JobTitle
		}
		report[key] = append(report[key], entry)
	}
	return report
}

// DumpToTmpFile writes the evaluations as indented JSON to a new temporary
// file and returns its name.
func (v *Evaluations) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "evaluations_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return file.Name(), nil
}
