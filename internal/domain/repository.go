package domain

import (
	"context"

	"github.com/google/uuid"
)

// StudentRepository defines the interface for student persistence
type StudentRepository interface {
	FindByEmail(ctx context.Context, email string) (*Student, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Student, error)
	Create(ctx context.Context, student *Student) error
	Update(ctx context.Context, student *Student) error
}

// InternshipRepository defines the interface for the internship catalog
type InternshipRepository interface {
	List(ctx context.Context) ([]Internship, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, internships []Internship) error
}

// FileStore defines the interface for resume file storage.
// Store persists the file under the owner's namespace and returns a
// public URL for serving it back to clients.
type FileStore interface {
	Store(ctx context.Context, ownerID, filename string, data []byte) (string, error)
}

// Pinger reports whether the underlying store is reachable.
// Used by the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}
