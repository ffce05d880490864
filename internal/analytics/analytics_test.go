package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roups939/HotSecjobBot/internal/store"
	"github.com/Roups939/HotSecjobBot/internal/taxonomy"
)

func salaryRecord(text string) store.Record {
	return store.Record{Salary: store.ParseSalary(text), Profession: "кибербезопасность"}
}

// Region "москва" scenario: of "80000 - 120000 RUR" and "None - 150000 RUR"
// only the first record contributes, so the average is its own midpoint.
func TestSalariesPartialBoundExcluded(t *testing.T) {
	records := []store.Record{
		salaryRecord("80000 - 120000 RUR"),
		salaryRecord("None - 150000 RUR"),
	}

	stats, ok := Salaries(records)
	require.True(t, ok)
	assert.Equal(t, 100000.0, stats.Avg)
	assert.Equal(t, 80000.0, stats.Min)
	assert.Equal(t, 120000.0, stats.Max)
}

// The average is the mean of per-record midpoints, not a midpoint of
// aggregated bounds, and it is invariant under reordering.
func TestSalariesAverageOfMidpoints(t *testing.T) {
	records := []store.Record{
		salaryRecord("100000 - 100000 RUR"), // midpoint 100000
		salaryRecord("50000 - 250000 RUR"),  // midpoint 150000
		salaryRecord("Не указана"),
	}

	stats, ok := Salaries(records)
	require.True(t, ok)
	assert.Equal(t, 125000.0, stats.Avg)
	assert.Equal(t, 50000.0, stats.Min)
	assert.Equal(t, 250000.0, stats.Max)

	reversed := []store.Record{records[2], records[1], records[0]}
	reversedStats, ok := Salaries(reversed)
	require.True(t, ok)
	assert.Equal(t, stats, reversedStats)
}

func TestSalariesAllAbsent(t *testing.T) {
	records := []store.Record{
		salaryRecord("Не указана"),
		salaryRecord("None - 90000 RUR"),
		{},
	}
	_, ok := Salaries(records)
	assert.False(t, ok)

	_, ok = Salaries(nil)
	assert.False(t, ok)
}

func TestTopSkillsPresencePerRecord(t *testing.T) {
	vocabulary := []string{"python", "docker", "aws"}
	records := []store.Record{
		{Requirements: "Нужны Python и docker. Python обязателен."},
		{Requirements: "только python"},
	}

	got := TopSkills(records, vocabulary, 5)
	require.Len(t, got, 2)
	assert.Equal(t, SkillCount{Skill: "python", Count: 2}, got[0])
	assert.Equal(t, SkillCount{Skill: "docker", Count: 1}, got[1])
}

func TestTopSkillsTieBrokenByVocabularyOrder(t *testing.T) {
	vocabulary := []string{"linux", "sql", "git"}
	records := []store.Record{
		{Requirements: "git, sql и linux"},
	}

	got := TopSkills(records, vocabulary, 5)
	require.Len(t, got, 3)
	assert.Equal(t, "linux", got[0].Skill)
	assert.Equal(t, "sql", got[1].Skill)
	assert.Equal(t, "git", got[2].Skill)
}

func TestTopSkillsLimitsToN(t *testing.T) {
	records := []store.Record{
		{Requirements: "python java c++ c# javascript go typescript security"},
	}
	got := TopSkills(records, taxonomy.SkillVocabulary, 5)
	assert.Len(t, got, 5)
}

func TestTopSkillsEmptyRequirements(t *testing.T) {
	records := []store.Record{{Requirements: ""}, {Requirements: "   "}}
	assert.Empty(t, TopSkills(records, taxonomy.SkillVocabulary, 5))
}

func TestExperienceHistogram(t *testing.T) {
	records := []store.Record{
		{Experience: "От 1 года до 3 лет"},
		{Experience: "От 1 года до 3 лет"},
		{Experience: "Нет опыта"},
		{Experience: ""},
	}

	got := ExperienceHistogram(records)
	require.Len(t, got, 3)
	assert.Equal(t, BucketCount{Label: "От 1 года до 3 лет", Count: 2}, got[0])
	// equal counts keep enumeration order, unknown label last
	assert.Equal(t, BucketCount{Label: "Нет опыта", Count: 1}, got[1])
	assert.Equal(t, BucketCount{Label: taxonomy.ExperienceUnknown, Count: 1}, got[2])
}

func TestFilter(t *testing.T) {
	records := []store.Record{
		{Profession: "Кибербезопасность", Experience: "Нет опыта"},
		{Profession: "кибербезопасность", Experience: "От 3 до 6 лет"},
		{Profession: "пентестер", Experience: "Нет опыта"},
	}

	byProfession := Filter(records, "КИБЕРбезопасность", "")
	assert.Len(t, byProfession, 2)

	byBoth := Filter(records, "кибербезопасность", "Нет опыта")
	require.Len(t, byBoth, 1)
	assert.Equal(t, "Кибербезопасность", byBoth[0].Profession)

	assert.Empty(t, Filter(records, "devsecops", ""))
}
