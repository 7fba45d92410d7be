// Package inquiries implements submission and admin management of course
// inquiries.
package inquiries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mathsmania/backend/internal/models"
	"github.com/mathsmania/backend/internal/store"
)

// Sentinel error text doubles as the wire message returned to clients.
var (
	ErrMissingFields = errors.New("Name, phone and course required")
	ErrNotFound      = errors.New("Not found")
)

// CreateInput carries an inquiry submission. Email and Message are optional.
type CreateInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Course  string `json:"course"`
	Message string `json:"message"`
}

// Service encapsulates inquiry business logic over the document store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Create validates the submission, appends a new inquiry with a fresh
// identity and status "new", and persists the document.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Inquiry, error) {
	if in.Name == "" || in.Phone == "" || in.Course == "" {
		return nil, ErrMissingFields
	}
	it := models.Inquiry{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Course:    in.Course,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
		Status:    "new",
	}
	err := s.store.Update(ctx, func(doc *store.Document) error {
		doc.Inquiries = append(doc.Inquiries, it)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// ListNewestFirst returns all inquiries, most recently appended first.
func (s *Service) ListNewestFirst(ctx context.Context) ([]models.Inquiry, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Inquiry, 0, len(doc.Inquiries))
	for i := len(doc.Inquiries) - 1; i >= 0; i-- {
		out = append(out, doc.Inquiries[i])
	}
	return out, nil
}

// UpdateStatus overwrites the status of the inquiry with the given identity.
// An empty status leaves the record unchanged; the updated record is
// returned either way. Returns ErrNotFound for an unknown identity.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*models.Inquiry, error) {
	var updated models.Inquiry
	err := s.store.Update(ctx, func(doc *store.Document) error {
		for i := range doc.Inquiries {
			if doc.Inquiries[i].ID != id {
				continue
			}
			if status != "" {
				doc.Inquiries[i].Status = status
			}
			updated = doc.Inquiries[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
