package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/internmatch/backend/internal/domain"
)

// AuthServiceConfig holds configuration for the auth service.
type AuthServiceConfig struct {
	BcryptCost int
}

// AuthService implements the register-or-login flow: an unknown email with
// a name creates an account, a known email verifies the password and
// applies any profile updates carried on the same request.
type AuthService struct {
	students   domain.StudentRepository
	files      domain.FileStore
	tokens     *TokenService
	bcryptCost int
}

// NewAuthService creates a new auth service with dependencies.
func NewAuthService(
	students domain.StudentRepository,
	files domain.FileStore,
	tokens *TokenService,
	config AuthServiceConfig,
) *AuthService {
	cost := config.BcryptCost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}

	return &AuthService{
		students:   students,
		files:      files,
		tokens:     tokens,
		bcryptCost: cost,
	}
}

// SignInInput carries the signin form fields. Name, Preferences and the
// resume file are optional; preferences replace the stored set when
// non-empty, they are never merged.
type SignInInput struct {
	Email       string
	Password    string
	Name        string
	Preferences []string
	ResumeName  string
	ResumeData  []byte
}

// Profile is the signin response view of a student account.
type Profile struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Preferences []string `json:"preferences"`
	ResumeURL   *string  `json:"resume_url,omitempty"`
	Token       string   `json:"token,omitempty"`
}

// SignIn registers a new student or authenticates an existing one and
// applies profile updates. Returns ErrNameRequired for an unknown email
// without a name and ErrInvalidCredentials on a password mismatch.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*Profile, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidRequest
	}

	student, err := s.students.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return s.update(ctx, student, input)
	case errors.Is(err, domain.ErrStudentNotFound):
		return s.register(ctx, input)
	default:
		return nil, err
	}
}

// FindProfileByID returns the profile view for an authenticated student.
func (s *AuthService) FindProfileByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.profile(student, ""), nil
}

func (s *AuthService) register(ctx context.Context, input SignInInput) (*Profile, error) {
	if input.Name == "" {
		return nil, domain.ErrNameRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	student := &domain.Student{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Preferences:  NormalizePreferences(input.Preferences),
		Role:         domain.RoleStudent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	if len(input.ResumeData) > 0 {
		url, err := s.files.Store(ctx, student.ID.String(), input.ResumeName, input.ResumeData)
		if err != nil {
			return nil, fmt.Errorf("failed to store resume: %w", err)
		}
		student.ResumeURL = &url
		student.UpdatedAt = time.Now().UTC()
		if err := s.students.Update(ctx, student); err != nil {
			return nil, err
		}
	}

	return s.issueProfile(student)
}

func (s *AuthService) update(ctx context.Context, student *domain.Student, input SignInInput) (*Profile, error) {
	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(input.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	changed := false
	if input.Name != "" && input.Name != student.Name {
		student.Name = input.Name
		changed = true
	}
	if len(input.Preferences) > 0 {
		student.Preferences = NormalizePreferences(input.Preferences)
		changed = true
	}
	if len(input.ResumeData) > 0 {
		url, err := s.files.Store(ctx, student.ID.String(), input.ResumeName, input.ResumeData)
		if err != nil {
			return nil, fmt.Errorf("failed to store resume: %w", err)
		}
		student.ResumeURL = &url
		changed = true
	}

	if changed {
		student.UpdatedAt = time.Now().UTC()
		if err := s.students.Update(ctx, student); err != nil {
			return nil, err
		}
	}

	return s.issueProfile(student)
}

func (s *AuthService) issueProfile(student *domain.Student) (*Profile, error) {
	token := ""
	if s.tokens != nil {
		signed, err := s.tokens.Issue(student.ID)
		if err != nil {
			return nil, err
		}
		token = signed
	}
	return s.profile(student, token), nil
}

func (s *AuthService) profile(student *domain.Student, token string) *Profile {
	prefs := student.Preferences
	if prefs == nil {
		prefs = []string{}
	}
	return &Profile{
		Name:        student.Name,
		Email:       student.Email,
		Preferences: prefs,
		ResumeURL:   student.ResumeURL,
		Token:       token,
	}
}
