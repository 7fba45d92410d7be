// Package store implements whole-document persistence for the site data.
// All state lives in a single Document aggregate that is read and rewritten
// in full on every mutation; there is no partial read or partial write.
package store

import (
	"context"

	"github.com/mathsmania/backend/internal/models"
)

// Document is the single persisted aggregate holding all three record
// collections. Insertion order is preserved within each collection.
type Document struct {
	Inquiries []models.Inquiry `json:"inquiries" bson:"inquiries"`
	Users     []models.User    `json:"users" bson:"users"`
	Vacancies []models.Vacancy `json:"vacancies" bson:"vacancies"`
}

// Store is the whole-document persistence contract. Load returns a private
// snapshot of the document (mutating the result never touches stored state).
// Update runs mutate against a freshly loaded document and persists the
// result wholesale; the load→mutate→persist cycle is serialized per store,
// so concurrent updates cannot lose each other's writes. If mutate returns
// an error nothing is persisted and the error is returned unchanged.
type Store interface {
	Load(ctx context.Context) (*Document, error)
	Update(ctx context.Context, mutate func(*Document) error) error
}

// normalize replaces nil collections with empty ones so a freshly created or
// partially populated backing document always exposes all three collections.
func normalize(d *Document) *Document {
	if d.Inquiries == nil {
		d.Inquiries = []models.Inquiry{}
	}
	if d.Users == nil {
		d.Users = []models.User{}
	}
	if d.Vacancies == nil {
		d.Vacancies = []models.Vacancy{}
	}
	return d
}

// emptyDocument returns a document with three empty collections.
func emptyDocument() *Document {
	return normalize(&Document{})
}
