package usecase

import (
	"context"

	"github.com/internmatch/backend/internal/domain"
)

// MatchServiceConfig holds configuration for the match service.
type MatchServiceConfig struct {
	DefaultLimit int
}

// MatchService resolves a student's stored preference set and ranks the
// internship catalog against it.
type MatchService struct {
	students     domain.StudentRepository
	internships  domain.InternshipRepository
	matcher      *Matcher
	defaultLimit int
}

// NewMatchService creates a new match service with dependencies.
func NewMatchService(
	students domain.StudentRepository,
	internships domain.InternshipRepository,
	config MatchServiceConfig,
) *MatchService {
	limit := config.DefaultLimit
	if limit <= 0 {
		limit = 5
	}

	return &MatchService{
		students:     students,
		internships:  internships,
		matcher:      NewMatcher(),
		defaultLimit: limit,
	}
}

// TopMatches looks up the student by email, lists the catalog and returns
// the ranked matches. A limit <= 0 falls back to the configured default.
// Returns ErrStudentNotFound when no account exists for the email.
func (s *MatchService) TopMatches(ctx context.Context, email string, limit int) ([]domain.MatchResult, error) {
	if email == "" {
		return nil, domain.ErrInvalidRequest
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	student, err := s.students.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	catalog, err := s.internships.List(ctx)
	if err != nil {
		return nil, err
	}

	return s.matcher.Rank(student.Preferences, catalog, limit), nil
}
