package bot

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Roups939/HotSecjobBot/internal/analytics"
	"github.com/Roups939/HotSecjobBot/internal/store"
	"github.com/Roups939/HotSecjobBot/internal/taxonomy"
)

func modeMenu() string {
	return "Привет! Выбери режим:\n" +
		"1. Анализ вакансий по региону\n" +
		"2. Сравнение зарплат по регионам\n\n" +
		"Введи номер режима (1-2)."
}

func vacancyMenu() string {
	var b strings.Builder
	b.WriteString("Выбери вакансию из списка:\n")
	for i, p := range taxonomy.Professions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title(p))
	}
	fmt.Fprintf(&b, "\nВведи номер вакансии (1-%d).", len(taxonomy.Professions))
	return b.String()
}

func regionPrompt() string {
	names := make([]string, len(taxonomy.RegionNames))
	for i, name := range taxonomy.RegionNames {
		names[i] = title(name)
	}
	return "Теперь введи регион из доступных:\n" + strings.Join(names, ", ") + "."
}

func experienceMenu() string {
	var b strings.Builder
	b.WriteString("Укажи опыт работы:\n")
	for i, bucket := range taxonomy.ExperienceBuckets {
		fmt.Fprintf(&b, "%d. %s\n", i+1, bucket)
	}
	fmt.Fprintf(&b, "\nВведи номер (1-%d).", len(taxonomy.ExperienceBuckets))
	return b.String()
}

// regionSummary composes the mode-1 answer: counts, salary stats, skill
// ranking, experience histogram and recommendations for the filtered set.
func regionSummary(profession, region string, filtered []store.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Специальность: %s\n", title(profession))
	fmt.Fprintf(&b, "Регион: %s\n", title(region))
	fmt.Fprintf(&b, "Найдено вакансий: %d\n\n", len(filtered))

	if stats, ok := analytics.Salaries(filtered); ok {
		fmt.Fprintf(&b, "Зарплатная вилка: от %.0f до %.0f руб.\n", stats.Min, stats.Max)
		fmt.Fprintf(&b, "Средняя зарплата: %.2f руб.\n", stats.Avg)
	} else {
		b.WriteString("Зарплата не указана.\n")
	}

	if hist := analytics.ExperienceHistogram(filtered); len(hist) > 0 {
		b.WriteString("\nОпыт работы:\n")
		for _, bc := range hist {
			fmt.Fprintf(&b, "• %s — %d\n", bc.Label, bc.Count)
		}
	}

	topSkills := analytics.TopSkills(filtered, taxonomy.SkillVocabulary, 5)
	if len(topSkills) > 0 {
		b.WriteString("\nВостребованные навыки:\n")
		for _, sc := range topSkills {
			fmt.Fprintf(&b, "• %s — %d\n", sc.Skill, sc.Count)
		}
	}

	b.WriteString("\nРекомендации:\n")
	b.WriteString(analytics.Recommend(topSkills, profession))
	return b.String()
}

func comparisonCaption(profession, experience string, entries []regionAverage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Средняя зарплата — %s, опыт: %s\n", title(profession), experience)
	for _, e := range entries {
		fmt.Fprintf(&b, "• %s — %.0f руб.\n", title(e.Region), e.Avg)
	}
	return strings.TrimRight(b.String(), "\n")
}

// title upper-cases the first letter of every word, including after hyphens:
// "ростов-на-дону" → "Ростов-На-Дону".
func title(s string) string {
	prev := rune(' ')
	return strings.Map(func(r rune) rune {
		mapped := r
		if prev == ' ' || prev == '-' {
			mapped = unicode.ToUpper(r)
		}
		prev = r
		return mapped
	}, s)
}
