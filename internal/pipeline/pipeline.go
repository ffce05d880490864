// Package pipeline turns hh.ru search results into normalized vacancy
// records. For every profession category it issues one search per synonym,
// detail-fetches each hit and extracts the requirements text.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/Roups939/HotSecjobBot/internal/hh"
	"github.com/Roups939/HotSecjobBot/internal/store"
	"github.com/Roups939/HotSecjobBot/internal/taxonomy"
)

// Fetcher is the slice of the hh client the pipeline needs.
type Fetcher interface {
	SearchVacancies(ctx context.Context, text string, area, perPage, pageLimit int) ([]hh.Vacancy, error)
	Detail(ctx context.Context, id string) (*hh.VacancyDetail, error)
}

// Pipeline runs synonym sweeps against a Fetcher.
type Pipeline struct {
	fetcher   Fetcher
	perPage   int
	pageLimit int
}

// New builds a Pipeline. perPage and pageLimit bound each synonym search.
func New(f Fetcher, perPage, pageLimit int) *Pipeline {
	return &Pipeline{fetcher: f, perPage: perPage, pageLimit: pageLimit}
}

// CollectRegion sweeps every profession×synonym search for one region and
// returns the normalized records. Failure policy: a failed search skips that
// synonym, a failed detail fetch skips that posting — both logged, neither
// aborts the sweep. Only context cancellation stops it early, returning the
// records gathered so far alongside ctx.Err().
//
// A posting matched by synonyms of two categories is recorded twice, once
// per category: attribution follows the search that produced the hit, never
// the posting's own title. Nothing deduplicates, here or downstream.
func (p *Pipeline) CollectRegion(ctx context.Context, regionID int) ([]store.Record, error) {
	var records []store.Record

	for _, category := range taxonomy.Professions {
		for _, synonym := range taxonomy.Synonyms[category] {
			if err := ctx.Err(); err != nil {
				return records, err
			}

			vacancies, err := p.fetcher.SearchVacancies(ctx, synonym, regionID, p.perPage, p.pageLimit)
			if err != nil {
				slog.Warn("pipeline: search failed, skipping synonym",
					slog.String("synonym", synonym),
					slog.Int("region", regionID),
					slog.Any("error", err),
				)
				continue
			}

			for _, v := range vacancies {
				if err := ctx.Err(); err != nil {
					return records, err
				}
				rec, ok := p.normalize(ctx, v, category)
				if !ok {
					continue
				}
				records = append(records, rec)
			}

			slog.Debug("pipeline: synonym done",
				slog.String("synonym", synonym),
				slog.Int("region", regionID),
				slog.Int("hits", len(vacancies)),
			)
		}
	}
	return records, nil
}

// normalize detail-fetches one hit and builds its record. A detail failure
// degrades to "no detail": the posting is skipped, not retried.
func (p *Pipeline) normalize(ctx context.Context, v hh.Vacancy, category string) (store.Record, bool) {
	detail, err := p.fetcher.Detail(ctx, v.ID)
	if err != nil {
		slog.Warn("pipeline: detail fetch failed, skipping posting",
			slog.String("id", v.ID),
			slog.Any("error", err),
		)
		return store.Record{}, false
	}

	return store.Record{
		Title:        v.Name,
		Link:         v.AlternateURL,
		Salary:       convertSalary(v.Salary),
		Location:     v.Area.Name,
		Requirements: hh.ExtractText(detail.Description),
		Profession:   category,
		Experience:   experienceBucket(detail.Experience.Name),
	}, true
}

func convertSalary(s *hh.Salary) *store.Salary {
	if s == nil {
		return nil
	}
	return &store.Salary{From: s.From, To: s.To, Currency: s.Currency}
}

// experienceBucket enforces the closed enumeration at write time: anything
// the API reports outside the four buckets is stored as "Не указан".
func experienceBucket(label string) string {
	if taxonomy.IsExperienceBucket(label) {
		return label
	}
	return taxonomy.ExperienceUnknown
}
