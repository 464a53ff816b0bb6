package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/internmatch/backend/internal/domain"
)

const studentColumns = "id, name, email, password_hash, preferences, resume_url, role, created_at, updated_at"

// FindByEmail looks up a student by email, case-insensitively.
func (s *Store) FindByEmail(ctx context.Context, email string) (*domain.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students WHERE email = $1", studentColumns)
	row := s.pool.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email)))
	return scanStudent(row)
}

// FindByID looks up a student by ID.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students WHERE id = $1", studentColumns)
	row := s.pool.QueryRow(ctx, query, id)
	return scanStudent(row)
}

// Create inserts a new student. Returns ErrDuplicateEmail on a unique
// constraint violation.
func (s *Store) Create(ctx context.Context, student *domain.Student) error {
	const query = `
INSERT INTO students (id, name, email, password_hash, preferences, resume_url, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.pool.Exec(ctx, query,
		student.ID,
		student.Name,
		strings.ToLower(strings.TrimSpace(student.Email)),
		student.PasswordHash,
		nonNil(student.Preferences),
		student.ResumeURL,
		student.Role,
		student.CreatedAt,
		student.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// Update replaces a stored student record.
func (s *Store) Update(ctx context.Context, student *domain.Student) error {
	const query = `
UPDATE students
SET name = $2, email = $3, password_hash = $4, preferences = $5, resume_url = $6, updated_at = $7
WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query,
		student.ID,
		student.Name,
		strings.ToLower(strings.TrimSpace(student.Email)),
		student.PasswordHash,
		nonNil(student.Preferences),
		student.ResumeURL,
		student.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

// nonNil maps a nil slice to an empty one so NOT NULL array columns never
// receive SQL NULL.
func nonNil(tokens []string) []string {
	if tokens == nil {
		return []string{}
	}
	return tokens
}

func scanStudent(row pgx.Row) (*domain.Student, error) {
	var student domain.Student
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.PasswordHash,
		&student.Preferences,
		&student.ResumeURL,
		&student.Role,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to scan student: %w", err)
	}
	return &student, nil
}
