package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mathsmania/backend/internal/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "db.json"))
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, doc.Inquiries)
	require.NotNil(t, doc.Users)
	require.NotNil(t, doc.Vacancies)
	require.Empty(t, doc.Inquiries)
	require.Empty(t, doc.Users)
	require.Empty(t, doc.Vacancies)
}

func TestFileStore_RoundTripPreservesOrderAndValues(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	err := s.Update(ctx, func(doc *Document) error {
		doc.Inquiries = append(doc.Inquiries,
			models.Inquiry{ID: "i1", Name: "A", Phone: "111", Course: "SSC", CreatedAt: created, Status: "new"},
			models.Inquiry{ID: "i2", Name: "B", Phone: "222", Course: "Bank", CreatedAt: created, Status: "contacted"},
		)
		doc.Users = append(doc.Users,
			models.User{ID: "u1", Name: "X", Email: "x@example.com", Password: "pw", CreatedAt: created},
		)
		doc.Vacancies = append(doc.Vacancies,
			models.Vacancy{ID: "v1", Title: "Maths Faculty", Location: "Lucknow", Type: "Teaching", Description: "teach"},
		)
		return nil
	})
	require.NoError(t, err)

	doc, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Inquiries, 2)
	require.Equal(t, "i1", doc.Inquiries[0].ID)
	require.Equal(t, "i2", doc.Inquiries[1].ID)
	require.Equal(t, "contacted", doc.Inquiries[1].Status)
	require.True(t, doc.Inquiries[0].CreatedAt.Equal(created))
	require.Len(t, doc.Users, 1)
	require.Equal(t, "x@example.com", doc.Users[0].Email)
	require.Equal(t, "pw", doc.Users[0].Password)
	require.Len(t, doc.Vacancies, 1)
	require.Equal(t, "Maths Faculty", doc.Vacancies[0].Title)
}

func TestFileStore_LoadReturnsSnapshot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, func(doc *Document) error {
		doc.Vacancies = append(doc.Vacancies, models.Vacancy{ID: "v1", Title: "Original"})
		return nil
	}))

	doc, err := s.Load(ctx)
	require.NoError(t, err)
	doc.Vacancies[0].Title = "Mutated"

	again, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "Original", again.Vacancies[0].Title)
}

func TestFileStore_UpdateErrorSkipsPersist(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, func(doc *Document) error {
		doc.Users = append(doc.Users, models.User{ID: "u1", Email: "a@b.c"})
		return nil
	}))

	boom := errors.New("boom")
	err := s.Update(ctx, func(doc *Document) error {
		doc.Users = append(doc.Users, models.User{ID: "u2", Email: "d@e.f"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	doc, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
}

func TestFileStore_WriteReplacesWholesale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	s := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, func(doc *Document) error {
		doc.Inquiries = append(doc.Inquiries, models.Inquiry{ID: "i1"})
		return nil
	}))
	require.NoError(t, s.Update(ctx, func(doc *Document) error {
		doc.Inquiries = doc.Inquiries[:0]
		return nil
	}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(b), "i1")
}
