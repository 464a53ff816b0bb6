package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/internmatch/backend/internal/domain"
)

// List returns every internship in insertion order. The matcher relies on
// this order for deterministic tie-breaking.
func (s *Store) List(ctx context.Context) ([]domain.Internship, error) {
	const query = `
SELECT id, title, company, description, location, stipend, skills
FROM internships
ORDER BY seq`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list internships: %w", err)
	}
	defer rows.Close()

	var internships []domain.Internship
	for rows.Next() {
		var internship domain.Internship
		err := rows.Scan(
			&internship.ID,
			&internship.Title,
			&internship.Company,
			&internship.Description,
			&internship.Location,
			&internship.Stipend,
			&internship.Skills,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan internship: %w", err)
		}
		internships = append(internships, internship)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read internships: %w", err)
	}

	return internships, nil
}

// Count returns the number of internships in the catalog.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM internships").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count internships: %w", err)
	}
	return count, nil
}

// CreateBatch inserts internships in a single batch.
func (s *Store) CreateBatch(ctx context.Context, internships []domain.Internship) error {
	if len(internships) == 0 {
		return nil
	}

	const query = `
INSERT INTO internships (id, title, company, description, location, stipend, skills)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	batch := &pgx.Batch{}
	for _, internship := range internships {
		batch.Queue(query,
			internship.ID,
			internship.Title,
			internship.Company,
			internship.Description,
			internship.Location,
			internship.Stipend,
			nonNil(internship.Skills),
		)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range internships {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert internship: %w", err)
		}
	}
	return nil
}
