package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/internmatch/backend/internal/domain"
	"github.com/internmatch/backend/internal/infrastructure/memstore"
)

// fakeFileStore records stored files and returns predictable URLs.
type fakeFileStore struct {
	stored map[string][]byte
	err    error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{stored: make(map[string][]byte)}
}

func (f *fakeFileStore) Store(ctx context.Context, ownerID, filename string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	name := ownerID + "_" + filename
	f.stored[name] = data
	return "/uploads/" + name, nil
}

func newTestAuthService(store *memstore.Store, files domain.FileStore) *AuthService {
	tokens := NewTokenService(TokenServiceConfig{Secret: "test-secret", ExpirationHours: 1})
	// Minimum cost keeps the test suite fast
	return NewAuthService(store, files, tokens, AuthServiceConfig{BcryptCost: bcrypt.MinCost})
}

func TestSignInRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new student", func(t *testing.T) {
		store := memstore.NewStore()
		svc := newTestAuthService(store, newFakeFileStore())

		profile, err := svc.SignIn(ctx, SignInInput{
			Email:       "ada@example.com",
			Password:    "hunter2",
			Name:        "Ada",
			Preferences: []string{"Python", "SQL"},
		})
		if err != nil {
			t.Fatalf("SignIn() error = %v", err)
		}
		if profile.Name != "Ada" {
			t.Errorf("Name = %s, want Ada", profile.Name)
		}
		if profile.Token == "" {
			t.Error("Token is empty, want signed token")
		}
		if len(profile.Preferences) != 2 || profile.Preferences[0] != "python" {
			t.Errorf("Preferences = %v, want normalized [python sql]", profile.Preferences)
		}

		stored, err := store.FindByEmail(ctx, "ada@example.com")
		if err != nil {
			t.Fatalf("FindByEmail() error = %v", err)
		}
		if stored.PasswordHash == "hunter2" || stored.PasswordHash == "" {
			t.Error("password stored without hashing")
		}
		if stored.Role != domain.RoleStudent {
			t.Errorf("Role = %s, want %s", stored.Role, domain.RoleStudent)
		}
	})

	t.Run("requires a name for unknown emails", func(t *testing.T) {
		svc := newTestAuthService(memstore.NewStore(), newFakeFileStore())

		_, err := svc.SignIn(ctx, SignInInput{Email: "new@example.com", Password: "pw"})
		if !errors.Is(err, domain.ErrNameRequired) {
			t.Errorf("error = %v, want ErrNameRequired", err)
		}
	})

	t.Run("stores resume and persists its URL", func(t *testing.T) {
		store := memstore.NewStore()
		files := newFakeFileStore()
		svc := newTestAuthService(store, files)

		profile, err := svc.SignIn(ctx, SignInInput{
			Email:      "ada@example.com",
			Password:   "pw",
			Name:       "Ada",
			ResumeName: "resume.pdf",
			ResumeData: []byte("%PDF-"),
		})
		if err != nil {
			t.Fatalf("SignIn() error = %v", err)
		}
		if profile.ResumeURL == nil {
			t.Fatal("ResumeURL = nil, want stored URL")
		}
		if len(files.stored) != 1 {
			t.Errorf("stored files = %d, want 1", len(files.stored))
		}

		stored, _ := store.FindByEmail(ctx, "ada@example.com")
		if stored.ResumeURL == nil || *stored.ResumeURL != *profile.ResumeURL {
			t.Error("resume URL not persisted on the student record")
		}
	})

	t.Run("rejects empty credentials", func(t *testing.T) {
		svc := newTestAuthService(memstore.NewStore(), newFakeFileStore())

		_, err := svc.SignIn(ctx, SignInInput{Email: "", Password: ""})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})
}

func TestSignInExisting(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, svc *AuthService) {
		t.Helper()
		_, err := svc.SignIn(ctx, SignInInput{
			Email:       "ada@example.com",
			Password:    "hunter2",
			Name:        "Ada",
			Preferences: []string{"python"},
		})
		if err != nil {
			t.Fatalf("setup SignIn() error = %v", err)
		}
	}

	t.Run("authenticates with the right password", func(t *testing.T) {
		svc := newTestAuthService(memstore.NewStore(), newFakeFileStore())
		register(t, svc)

		profile, err := svc.SignIn(ctx, SignInInput{Email: "ada@example.com", Password: "hunter2"})
		if err != nil {
			t.Fatalf("SignIn() error = %v", err)
		}
		if profile.Name != "Ada" {
			t.Errorf("Name = %s, want Ada", profile.Name)
		}
		if len(profile.Preferences) != 1 || profile.Preferences[0] != "python" {
			t.Errorf("Preferences = %v, want [python]", profile.Preferences)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		svc := newTestAuthService(memstore.NewStore(), newFakeFileStore())
		register(t, svc)

		_, err := svc.SignIn(ctx, SignInInput{Email: "ada@example.com", Password: "wrong"})
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("replaces preferences instead of merging", func(t *testing.T) {
		store := memstore.NewStore()
		svc := newTestAuthService(store, newFakeFileStore())
		register(t, svc)

		profile, err := svc.SignIn(ctx, SignInInput{
			Email:       "ada@example.com",
			Password:    "hunter2",
			Preferences: []string{"ml", "numpy"},
		})
		if err != nil {
			t.Fatalf("SignIn() error = %v", err)
		}
		want := []string{"ml", "numpy"}
		if len(profile.Preferences) != len(want) {
			t.Fatalf("Preferences = %v, want %v", profile.Preferences, want)
		}
		for i := range want {
			if profile.Preferences[i] != want[i] {
				t.Errorf("Preferences[%d] = %s, want %s", i, profile.Preferences[i], want[i])
			}
		}
	})

	t.Run("keeps preferences when none are supplied", func(t *testing.T) {
		svc := newTestAuthService(memstore.NewStore(), newFakeFileStore())
		register(t, svc)

		profile, err := svc.SignIn(ctx, SignInInput{Email: "ada@example.com", Password: "hunter2"})
		if err != nil {
			t.Fatalf("SignIn() error = %v", err)
		}
		if len(profile.Preferences) != 1 || profile.Preferences[0] != "python" {
			t.Errorf("Preferences = %v, want stored [python]", profile.Preferences)
		}
	})

	t.Run("updates the name when it changes", func(t *testing.T) {
		store := memstore.NewStore()
		svc := newTestAuthService(store, newFakeFileStore())
		register(t, svc)

		_, err := svc.SignIn(ctx, SignInInput{
			Email:    "ada@example.com",
			Password: "hunter2",
			Name:     "Ada Lovelace",
		})
		if err != nil {
			t.Fatalf("SignIn() error = %v", err)
		}

		stored, _ := store.FindByEmail(ctx, "ada@example.com")
		if stored.Name != "Ada Lovelace" {
			t.Errorf("Name = %s, want Ada Lovelace", stored.Name)
		}
	})
}
