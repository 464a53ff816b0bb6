package memstore

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/internmatch/backend/internal/domain"
)

// Store is a thread-safe in-memory implementation of the student and
// internship repositories. It is the default store for development and
// the store used throughout the handler tests.
type Store struct {
	mu          sync.RWMutex
	students    map[uuid.UUID]domain.Student
	emailIndex  map[string]uuid.UUID
	internships []domain.Internship
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		students:   make(map[uuid.UUID]domain.Student),
		emailIndex: make(map[string]uuid.UUID),
	}
}

// FindByEmail looks up a student by email, case-insensitively.
func (s *Store) FindByEmail(ctx context.Context, email string) (*domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.emailIndex[normalizeEmail(email)]
	if !exists {
		return nil, domain.ErrStudentNotFound
	}

	student := s.students[id]
	return cloneStudent(student), nil
}

// FindByID looks up a student by ID.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, exists := s.students[id]
	if !exists {
		return nil, domain.ErrStudentNotFound
	}

	return cloneStudent(student), nil
}

// Create inserts a new student. Returns ErrDuplicateEmail when the email
// is already registered.
func (s *Store) Create(ctx context.Context, student *domain.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(student.Email)
	if _, exists := s.emailIndex[email]; exists {
		return domain.ErrDuplicateEmail
	}

	s.students[student.ID] = *cloneStudent(*student)
	s.emailIndex[email] = student.ID
	return nil
}

// Update replaces a stored student record.
func (s *Store) Update(ctx context.Context, student *domain.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.students[student.ID]
	if !exists {
		return domain.ErrStudentNotFound
	}

	// Keep the email index consistent if the email ever changes
	oldEmail := normalizeEmail(existing.Email)
	newEmail := normalizeEmail(student.Email)
	if oldEmail != newEmail {
		delete(s.emailIndex, oldEmail)
		s.emailIndex[newEmail] = student.ID
	}

	s.students[student.ID] = *cloneStudent(*student)
	return nil
}

// List returns every internship in insertion order.
func (s *Store) List(ctx context.Context) ([]domain.Internship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Internship, len(s.internships))
	copy(out, s.internships)
	return out, nil
}

// Count returns the number of internships in the catalog.
func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.internships)), nil
}

// CreateBatch appends internships to the catalog.
func (s *Store) CreateBatch(ctx context.Context, internships []domain.Internship) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.internships = append(s.internships, internships...)
	return nil
}

// Ping reports store reachability. An in-memory store is always reachable.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// Size returns the current number of students (for debugging/monitoring)
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.students)
}

// Clear removes all stored records.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = make(map[uuid.UUID]domain.Student)
	s.emailIndex = make(map[string]uuid.UUID)
	s.internships = nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// cloneStudent copies a record so callers cannot mutate stored state
// through shared slices.
func cloneStudent(student domain.Student) *domain.Student {
	out := student
	out.Preferences = append([]string(nil), student.Preferences...)
	if student.ResumeURL != nil {
		url := *student.ResumeURL
		out.ResumeURL = &url
	}
	return &out
}
