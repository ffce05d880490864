// Package analytics computes aggregate answers over an already-filtered set
// of vacancy records. All functions are pure: no I/O, no shared state.
package analytics

import (
	"sort"
	"strings"

	"github.com/Roups939/HotSecjobBot/internal/store"
	"github.com/Roups939/HotSecjobBot/internal/taxonomy"
)

// SalaryStats summarizes the salaries of a record set.
type SalaryStats struct {
	Min float64 // smallest lower bound among contributing records
	Max float64 // largest upper bound among contributing records
	Avg float64 // mean of per-record midpoints (from+to)/2
}

// Salaries computes SalaryStats over records. A record contributes only when
// both salary bounds are present; the average is the mean of each
// contributing record's own midpoint, so it is order-independent. ok is
// false when nothing contributes.
func Salaries(records []store.Record) (SalaryStats, bool) {
	var stats SalaryStats
	var sum float64
	var n int

	for _, rec := range records {
		if !rec.Salary.Contributes() {
			continue
		}
		from, to := float64(*rec.Salary.From), float64(*rec.Salary.To)
		if n == 0 || from < stats.Min {
			stats.Min = from
		}
		if n == 0 || to > stats.Max {
			stats.Max = to
		}
		sum += rec.Salary.Midpoint()
		n++
	}
	if n == 0 {
		return SalaryStats{}, false
	}
	stats.Avg = sum / float64(n)
	return stats, true
}

// SkillCount is one vocabulary term with the number of records mentioning it.
type SkillCount struct {
	Skill string
	Count int
}

// TopSkills ranks vocabulary terms by how many records mention them in their
// requirements text. A term counts once per record regardless of how often
// it occurs there. Ties go to the term listed first in the vocabulary.
func TopSkills(records []store.Record, vocabulary []string, n int) []SkillCount {
	counts := make([]int, len(vocabulary))
	for _, rec := range records {
		req := strings.ToLower(rec.Requirements)
		if req == "" {
			continue
		}
		for i, skill := range vocabulary {
			if strings.Contains(req, skill) {
				counts[i]++
			}
		}
	}

	ranked := make([]SkillCount, 0, len(vocabulary))
	for i, skill := range vocabulary {
		if counts[i] > 0 {
			ranked = append(ranked, SkillCount{Skill: skill, Count: counts[i]})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// BucketCount is one experience label with its record count.
type BucketCount struct {
	Label string
	Count int
}

// ExperienceHistogram counts records per stored experience label, descending
// by count. Records with an empty label fall under the explicit "Не указан"
// bucket. Only labels that actually occur appear in the result.
func ExperienceHistogram(records []store.Record) []BucketCount {
	counts := make(map[string]int)
	for _, rec := range records {
		label := rec.Experience
		if label == "" {
			label = taxonomy.ExperienceUnknown
		}
		counts[label]++
	}

	// Enumeration order first, then the unknown label, so equal counts come
	// out in a stable, meaningful order.
	order := append(append([]string{}, taxonomy.ExperienceBuckets...), taxonomy.ExperienceUnknown)
	var hist []BucketCount
	for _, label := range order {
		if c, ok := counts[label]; ok {
			hist = append(hist, BucketCount{Label: label, Count: c})
			delete(counts, label)
		}
	}
	for label, c := range counts { // labels outside the enumeration, legacy rows
		hist = append(hist, BucketCount{Label: label, Count: c})
	}
	sort.SliceStable(hist, func(i, j int) bool { return hist[i].Count > hist[j].Count })
	return hist
}

// Filter selects records whose profession contains the category
// (case-insensitive substring) and, when experience is non-empty, whose
// experience bucket matches it exactly.
func Filter(records []store.Record, category, experience string) []store.Record {
	cat := strings.ToLower(category)
	var out []store.Record
	for _, rec := range records {
		if !strings.Contains(strings.ToLower(rec.Profession), cat) {
			continue
		}
		if experience != "" && rec.Experience != experience {
			continue
		}
		out = append(out, rec)
	}
	return out
}
