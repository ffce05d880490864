package analytics

import (
	"strings"
	"testing"
)

func TestRecommendNoData(t *testing.T) {
	if got := Recommend(nil, "кибербезопасность"); got != NoRecommendationData {
		t.Errorf("Recommend(nil) = %q", got)
	}
	if got := Recommend([]SkillCount{}, "пентестер"); got != NoRecommendationData {
		t.Errorf("Recommend(empty) = %q", got)
	}
}

func TestRecommendKnownCategory(t *testing.T) {
	top := []SkillCount{
		{Skill: "python", Count: 4},
		{Skill: "linux", Count: 3},
		{Skill: "docker", Count: 2},
		{Skill: "aws", Count: 1}, // beyond top-3, must not appear in the first line
	}

	got := Recommend(top, "кибербезопасность")
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), got)
	}
	if lines[0] != "Самые востребованные навыки: python, linux, docker." {
		t.Errorf("top skills line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Базовые навыки:") ||
		!strings.HasPrefix(lines[2], "Продвинутые навыки:") ||
		!strings.HasPrefix(lines[3], "Рекомендуемые сертификации:") {
		t.Errorf("unexpected advice sections:\n%s", got)
	}
	if !strings.Contains(lines[3], "CISSP") {
		t.Errorf("certifications line = %q", lines[3])
	}
}

// A category outside the advice table still gets the top-skills line; the
// other sections are simply omitted.
func TestRecommendUnknownCategoryTopSkillsOnly(t *testing.T) {
	got := Recommend([]SkillCount{{Skill: "sql", Count: 1}}, "неизвестная профессия")
	if got != "Самые востребованные навыки: sql." {
		t.Errorf("Recommend() = %q", got)
	}
}
