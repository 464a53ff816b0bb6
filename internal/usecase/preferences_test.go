package usecase

import (
	"reflect"
	"testing"
)

func TestParsePreferences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty string", "", nil},
		{"single token", "python", []string{"python"}},
		{"multiple tokens", "python,sql,ml", []string{"python", "sql", "ml"}},
		{"trims whitespace", " python , sql ", []string{"python", "sql"}},
		{"lowercases", "Python,SQL", []string{"python", "sql"}},
		{"drops empty entries", "python,,sql,", []string{"python", "sql"}},
		{"deduplicates keeping first occurrence", "python,sql,Python", []string{"python", "sql"}},
		{"only separators", ", ,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePreferences(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePreferences(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizePreferences(t *testing.T) {
	t.Run("normalizes mixed input", func(t *testing.T) {
		got := NormalizePreferences([]string{" Python", "SQL ", "python", ""})
		want := []string{"python", "sql"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("NormalizePreferences = %v, want %v", got, want)
		}
	})

	t.Run("nil input yields nil", func(t *testing.T) {
		if got := NormalizePreferences(nil); got != nil {
			t.Errorf("NormalizePreferences(nil) = %v, want nil", got)
		}
	})
}

func TestNormalizeTokenSet(t *testing.T) {
	t.Run("builds lowercase deduplicated set", func(t *testing.T) {
		set := normalizeTokenSet([]string{"Python", "python ", " SQL", ""})
		if len(set) != 2 {
			t.Fatalf("len(set) = %d, want 2", len(set))
		}
		if !set["python"] || !set["sql"] {
			t.Errorf("set = %v, want python and sql", set)
		}
	})
}
