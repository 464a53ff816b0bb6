package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/internmatch/backend/internal/domain"
)

func testStudent(email string) *domain.Student {
	now := time.Now().UTC()
	return &domain.Student{
		ID:           uuid.New(),
		Name:         "Test Student",
		Email:        email,
		PasswordHash: "hash",
		Preferences:  []string{"python"},
		Role:         domain.RoleStudent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestStudents(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find by email", func(t *testing.T) {
		store := NewStore()
		student := testStudent("ada@example.com")

		if err := store.Create(ctx, student); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		found, err := store.FindByEmail(ctx, "ada@example.com")
		if err != nil {
			t.Fatalf("FindByEmail() error = %v", err)
		}
		if found.ID != student.ID {
			t.Errorf("ID = %v, want %v", found.ID, student.ID)
		}
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		store := NewStore()
		if err := store.Create(ctx, testStudent("Ada@Example.com")); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if _, err := store.FindByEmail(ctx, "ada@example.com"); err != nil {
			t.Errorf("FindByEmail(lowercase) error = %v", err)
		}
	})

	t.Run("find by id", func(t *testing.T) {
		store := NewStore()
		student := testStudent("ada@example.com")
		if err := store.Create(ctx, student); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		found, err := store.FindByID(ctx, student.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.Email != student.Email {
			t.Errorf("Email = %s, want %s", found.Email, student.Email)
		}
	})

	t.Run("missing student yields ErrStudentNotFound", func(t *testing.T) {
		store := NewStore()

		if _, err := store.FindByEmail(ctx, "ghost@example.com"); !errors.Is(err, domain.ErrStudentNotFound) {
			t.Errorf("FindByEmail error = %v, want ErrStudentNotFound", err)
		}
		if _, err := store.FindByID(ctx, uuid.New()); !errors.Is(err, domain.ErrStudentNotFound) {
			t.Errorf("FindByID error = %v, want ErrStudentNotFound", err)
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		store := NewStore()
		if err := store.Create(ctx, testStudent("ada@example.com")); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		err := store.Create(ctx, testStudent("ada@example.com"))
		if !errors.Is(err, domain.ErrDuplicateEmail) {
			t.Errorf("error = %v, want ErrDuplicateEmail", err)
		}
	})

	t.Run("update replaces the record", func(t *testing.T) {
		store := NewStore()
		student := testStudent("ada@example.com")
		if err := store.Create(ctx, student); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		student.Preferences = []string{"ml", "numpy"}
		if err := store.Update(ctx, student); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		found, _ := store.FindByEmail(ctx, "ada@example.com")
		if len(found.Preferences) != 2 || found.Preferences[0] != "ml" {
			t.Errorf("Preferences = %v, want [ml numpy]", found.Preferences)
		}
	})

	t.Run("update of unknown student fails", func(t *testing.T) {
		store := NewStore()
		err := store.Update(ctx, testStudent("ghost@example.com"))
		if !errors.Is(err, domain.ErrStudentNotFound) {
			t.Errorf("error = %v, want ErrStudentNotFound", err)
		}
	})

	t.Run("returned records are copies", func(t *testing.T) {
		store := NewStore()
		student := testStudent("ada@example.com")
		if err := store.Create(ctx, student); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		found, _ := store.FindByEmail(ctx, "ada@example.com")
		found.Preferences[0] = "mutated"

		again, _ := store.FindByEmail(ctx, "ada@example.com")
		if again.Preferences[0] != "python" {
			t.Error("stored record mutated through returned slice")
		}
	})
}

func TestInternships(t *testing.T) {
	ctx := context.Background()

	t.Run("list preserves insertion order", func(t *testing.T) {
		store := NewStore()
		batch := []domain.Internship{
			{ID: uuid.New(), Title: "First"},
			{ID: uuid.New(), Title: "Second"},
			{ID: uuid.New(), Title: "Third"},
		}
		if err := store.CreateBatch(ctx, batch); err != nil {
			t.Fatalf("CreateBatch() error = %v", err)
		}

		listed, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(listed) != 3 {
			t.Fatalf("len(listed) = %d, want 3", len(listed))
		}
		for i, want := range []string{"First", "Second", "Third"} {
			if listed[i].Title != want {
				t.Errorf("listed[%d].Title = %s, want %s", i, listed[i].Title, want)
			}
		}
	})

	t.Run("count tracks the catalog size", func(t *testing.T) {
		store := NewStore()
		count, err := store.Count(ctx)
		if err != nil {
			t.Fatalf("Count() error = %v", err)
		}
		if count != 0 {
			t.Errorf("Count = %d, want 0", count)
		}

		if err := store.CreateBatch(ctx, []domain.Internship{{ID: uuid.New()}}); err != nil {
			t.Fatalf("CreateBatch() error = %v", err)
		}
		count, _ = store.Count(ctx)
		if count != 1 {
			t.Errorf("Count = %d, want 1", count)
		}
	})
}

func TestConcurrentAccess(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			email := fmt.Sprintf("student%d@example.com", n)
			if err := store.Create(ctx, testStudent(email)); err != nil {
				t.Errorf("Create(%s) error = %v", email, err)
				return
			}
			if _, err := store.FindByEmail(ctx, email); err != nil {
				t.Errorf("FindByEmail(%s) error = %v", email, err)
			}
		}(i)
	}
	wg.Wait()

	if store.Size() != 20 {
		t.Errorf("Size = %d, want 20", store.Size())
	}
}

func TestClear(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Create(ctx, testStudent("ada@example.com")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.CreateBatch(ctx, []domain.Internship{{ID: uuid.New()}}); err != nil {
		t.Fatalf("CreateBatch() error = %v", err)
	}

	store.Clear()

	if store.Size() != 0 {
		t.Errorf("Size = %d after Clear, want 0", store.Size())
	}
	count, _ := store.Count(ctx)
	if count != 0 {
		t.Errorf("Count = %d after Clear, want 0", count)
	}
}
