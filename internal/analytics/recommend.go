package analytics

import (
	"strings"

	"github.com/Roups939/HotSecjobBot/internal/taxonomy"
)

// NoRecommendationData is returned when there is nothing to recommend from.
const NoRecommendationData = "Нет данных для рекомендаций."

// Recommend composes advice text for a profession from the ranked skills of
// its postings and the fixed per-category advice table. With no ranked
// skills there is no data to speak from. A category without an advice entry
// still gets the top-skills line; the other sections are omitted.
func Recommend(topSkills []SkillCount, category string) string {
	if len(topSkills) == 0 {
		return NoRecommendationData
	}

	top := topSkills
	if len(top) > 3 {
		top = top[:3]
	}
	names := make([]string, len(top))
	for i, sc := range top {
		names[i] = sc.Skill
	}

	lines := []string{"Самые востребованные навыки: " + strings.Join(names, ", ") + "."}

	if advice, ok := taxonomy.AdviceFor(category); ok {
		lines = append(lines,
			"Базовые навыки: "+strings.Join(advice.Basic, ", ")+".",
			"Продвинутые навыки: "+strings.Join(advice.Advanced, ", ")+".",
			"Рекомендуемые сертификации: "+strings.Join(advice.Certifications, ", ")+".",
		)
	}
	return strings.Join(lines, "\n")
}
