// Package users implements account registration and login.
//
// Credentials are stored and compared as given, without hashing. This
// mirrors the original service and is a known weakness of the design.
package users

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
	ErrMissingFields      = errors.New("Name, email, password required")
	ErrEmailExists        = errors.New("Email exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// RegisterInput carries a registration request. Phone is optional.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Service encapsulates user business logic over the document store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Register appends a new user after checking email uniqueness (case-sensitive
// exact match). The uniqueness scan runs before the record is constructed.
// Returns the reduced public view; password and phone are withheld.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.PublicUser, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}
	var created models.User
	err := s.store.Update(ctx, func(doc *store.Document) error {
		for i := range doc.Users {
			if doc.Users[i].Email == in.Email {
				return ErrEmailExists
			}
		}
		created = models.User{
			ID:        uuid.NewString(),
			Name:      in.Name,
			Email:     in.Email,
			Phone:     in.Phone,
			Password:  in.Password,
			CreatedAt: time.Now().UTC(),
		}
		doc.Users = append(doc.Users, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	pub := created.Public()
	return &pub, nil
}

// Login returns the public view of the first user whose email and password
// both match exactly. Registration's uniqueness invariant makes at most one
// match possible.
func (s *Service) Login(ctx context.Context, email, password string) (*models.PublicUser, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.Users {
		if doc.Users[i].Email == email && doc.Users[i].Password == password {
			pub := doc.Users[i].Public()
			return &pub, nil
		}
	}
	return nil, ErrInvalidCredentials
}
