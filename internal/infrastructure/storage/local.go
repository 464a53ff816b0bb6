package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes uploaded files to a directory on disk. Files are
// served back under /uploads by the HTTP layer.
type LocalStore struct {
	dir        string
	publicBase string
}

// NewLocalStore creates the uploads directory if needed.
func NewLocalStore(dir, publicBase string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &LocalStore{
		dir:        dir,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}, nil
}

// Dir returns the directory files are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Store writes the file as {ownerID}_{filename} and returns its public URL.
func (s *LocalStore) Store(ctx context.Context, ownerID, filename string, data []byte) (string, error) {
	name := objectName(ownerID, filename)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write resume file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s", s.publicBase, name), nil
}

// objectName builds a flat object name from the owner ID and the uploaded
// filename, stripping any path components from the client-supplied name.
func objectName(ownerID, filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "resume"
	}
	return fmt.Sprintf("%s_%s", ownerID, base)
}
