// Package vacancies implements job vacancy listing, substring search, and
// the one-time seeding of the initial openings.
package vacancies

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mathsmania/backend/internal/models"
	"github.com/mathsmania/backend/internal/store"
)

// Service encapsulates vacancy business logic over the document store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// seedVacancies returns the fixed initial openings, each with a fresh
// identity. Values are fixed at build time.
func seedVacancies() []models.Vacancy {
	return []models.Vacancy{
		{
			ID:          uuid.NewString(),
			Title:       "Maths Faculty (Part Time)",
			Location:    "Lucknow",
			Type:        "Teaching",
			Description: "Teach quantitative aptitude and reasoning. 2 years experience preferred.",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Content Writer",
			Location:    "Remote",
			Type:        "Content",
			Description: "Create practice questions and explanations for SSC & Bank exams.",
		},
	}
}

// EnsureSeed inserts the fixed vacancies when the collection is empty and
// persists. It only acts on an empty collection, so repeated runs across
// restarts are no-ops.
func (s *Service) EnsureSeed(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if len(doc.Vacancies) > 0 {
		return nil
	}
	return s.store.Update(ctx, func(d *store.Document) error {
		if len(d.Vacancies) == 0 {
			d.Vacancies = append(d.Vacancies, seedVacancies()...)
		}
		return nil
	})
}

// Search returns vacancies whose title, description, or location contains
// the query, case-insensitively. An empty query returns the full collection.
// Insertion order is preserved; zero matches is a valid result, not an error.
func (s *Service) Search(ctx context.Context, query string) ([]models.Vacancy, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	list := doc.Vacancies
	if query == "" {
		return list, nil
	}
	q := strings.ToLower(query)
	out := []models.Vacancy{}
	for _, v := range list {
		hay := strings.ToLower(v.Title + " " + v.Description + " " + v.Location)
		if strings.Contains(hay, q) {
			out = append(out, v)
		}
	}
	return out, nil
}
