package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roups939/HotSecjobBot/internal/hh"
	"github.com/Roups939/HotSecjobBot/internal/store"
)

// fakeFetcher serves canned vacancies per search term.
type fakeFetcher struct {
	bySynonym  map[string][]hh.Vacancy
	details    map[string]*hh.VacancyDetail
	failSearch map[string]bool
	searches   []string
}

func (f *fakeFetcher) SearchVacancies(_ context.Context, text string, _, _, _ int) ([]hh.Vacancy, error) {
	f.searches = append(f.searches, text)
	if f.failSearch[text] {
		return nil, errors.New("hh API status 500")
	}
	return f.bySynonym[text], nil
}

func (f *fakeFetcher) Detail(_ context.Context, id string) (*hh.VacancyDetail, error) {
	d, ok := f.details[id]
	if !ok {
		return nil, errors.New("hh API status 404")
	}
	return d, nil
}

func vacancy(id, name string) hh.Vacancy {
	v := hh.Vacancy{ID: id, Name: name, AlternateURL: "https://hh.ru/vacancy/" + id}
	v.Area.Name = "Москва"
	return v
}

func detail(desc, experience string) *hh.VacancyDetail {
	d := &hh.VacancyDetail{Description: desc}
	d.Experience.Name = experience
	return d
}

func TestCollectRegionTagsCategoryBySearch(t *testing.T) {
	f := &fakeFetcher{
		bySynonym: map[string][]hh.Vacancy{
			"пентестер": {vacancy("1", "Специалист по тестированию на проникновение")},
		},
		details: map[string]*hh.VacancyDetail{
			"1": detail("<p>python, burp</p>", "От 1 года до 3 лет"),
		},
	}

	records, err := New(f, 10, 3).CollectRegion(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	// category comes from the search that produced the hit, not the title
	assert.Equal(t, "пентестер", rec.Profession)
	assert.Equal(t, "Специалист по тестированию на проникновение", rec.Title)
	assert.Equal(t, "https://hh.ru/vacancy/1", rec.Link)
	assert.Equal(t, "Москва", rec.Location)
	assert.Equal(t, "python, burp", rec.Requirements)
	assert.Equal(t, "От 1 года до 3 лет", rec.Experience)
}

// One posting matched under synonyms of two categories is recorded twice,
// under both categories.
func TestCollectRegionDuplicatesAcrossCategories(t *testing.T) {
	hit := vacancy("7", "Application Security Engineer")
	f := &fakeFetcher{
		bySynonym: map[string][]hh.Vacancy{
			"application Security Engineer": {hit}, // кибербезопасность synonym
			"application security engineer": {hit}, // DevSecOps synonym
		},
		details: map[string]*hh.VacancyDetail{
			"7": detail("appsec", "От 3 до 6 лет"),
		},
	}

	records, err := New(f, 10, 3).CollectRegion(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 2)

	categories := []string{records[0].Profession, records[1].Profession}
	assert.Contains(t, categories, "кибербезопасность")
	assert.Contains(t, categories, "DevSecOps")
}

func TestCollectRegionSkipsFailedDetail(t *testing.T) {
	f := &fakeFetcher{
		bySynonym: map[string][]hh.Vacancy{
			"пентестер": {vacancy("1", "Пентестер"), vacancy("2", "Пентестер-стажер")},
		},
		details: map[string]*hh.VacancyDetail{
			"2": detail("nmap", "Нет опыта"),
		},
	}

	records, err := New(f, 10, 3).CollectRegion(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Пентестер-стажер", records[0].Title)
}

// A failed search skips only that synonym; the rest of the sweep proceeds.
func TestCollectRegionSkipsFailedSynonym(t *testing.T) {
	f := &fakeFetcher{
		bySynonym: map[string][]hh.Vacancy{
			"pentester": {vacancy("3", "Pentester")},
		},
		failSearch: map[string]bool{"пентестер": true},
		details: map[string]*hh.VacancyDetail{
			"3": detail("", "Более 6 лет"),
		},
	}

	records, err := New(f, 10, 3).CollectRegion(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Pentester", records[0].Title)
}

func TestCollectRegionNormalizesUnknownExperience(t *testing.T) {
	f := &fakeFetcher{
		bySynonym: map[string][]hh.Vacancy{
			"пентестер": {vacancy("1", "Пентестер")},
		},
		details: map[string]*hh.VacancyDetail{
			"1": detail("", "какой-то стаж"),
		},
	}

	records, err := New(f, 10, 3).CollectRegion(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Не указан", records[0].Experience)
}

func TestCollectRegionConvertsSalary(t *testing.T) {
	from, to := 80000, 120000
	hit := vacancy("1", "Пентестер")
	hit.Salary = &hh.Salary{From: &from, To: &to, Currency: "RUR"}

	f := &fakeFetcher{
		bySynonym: map[string][]hh.Vacancy{"пентестер": {hit}},
		details:   map[string]*hh.VacancyDetail{"1": detail("", "Нет опыта")},
	}

	records, err := New(f, 10, 3).CollectRegion(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "80000 - 120000 RUR", store.FormatSalary(records[0].Salary))
}

func TestCollectRegionStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &fakeFetcher{}
	records, err := New(f, 10, 3).CollectRegion(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, records)
	assert.Empty(t, f.searches)
}
