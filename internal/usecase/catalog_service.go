package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/internmatch/backend/internal/domain"
)

// CatalogService manages the internship catalog.
type CatalogService struct {
	internships domain.InternshipRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(internships domain.InternshipRepository) *CatalogService {
	return &CatalogService{internships: internships}
}

// List returns every internship in the catalog.
func (s *CatalogService) List(ctx context.Context) ([]domain.Internship, error) {
	return s.internships.List(ctx)
}

// Seed inserts the demo postings if the catalog is empty. Returns true
// when postings were inserted, false when the catalog was already seeded.
func (s *CatalogService) Seed(ctx context.Context) (bool, error) {
	count, err := s.internships.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if err := s.internships.CreateBatch(ctx, SampleInternships()); err != nil {
		return false, err
	}
	return true, nil
}

// SampleInternships returns the demo catalog used by the seed endpoint.
func SampleInternships() []domain.Internship {
	return []domain.Internship{
		{
			ID:          uuid.New(),
			Title:       "Data Analyst Intern",
			Company:     "Insight Labs",
			Description: "Work with data pipelines and dashboards",
			Location:    "Remote",
			Stipend:     "₹15,000",
			Skills:      []string{"python", "sql", "pandas", "analytics"},
		},
		{
			ID:          uuid.New(),
			Title:       "Frontend Developer Intern",
			Company:     "WebWorks",
			Description: "Build UI components with React",
			Location:    "Delhi",
			Stipend:     "₹12,000",
			Skills:      []string{"react", "javascript", "css", "ui"},
		},
		{
			ID:          uuid.New(),
			Title:       "Cybersecurity Intern",
			Company:     "SecureNet",
			Description: "Assist in vulnerability assessments",
			Location:    "Bangalore",
			Stipend:     "₹18,000",
			Skills:      []string{"security", "network", "linux", "python"},
		},
		{
			ID:          uuid.New(),
			Title:       "Machine Learning Intern",
			Company:     "AI Forge",
			Description: "Model training and experimentation",
			Location:    "Remote",
			Stipend:     "₹20,000",
			Skills:      []string{"ml", "python", "scikit", "numpy"},
		},
		{
			ID:          uuid.New(),
			Title:       "Backend Developer Intern",
			Company:     "CloudStack",
			Description: "APIs and microservices",
			Location:    "Hyderabad",
			Stipend:     "₹17,000",
			Skills:      []string{"python", "fastapi", "mongodb", "docker"},
		},
	}
}
