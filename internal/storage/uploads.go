package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// Store is the upload store: a flat local directory holding uploaded media,
// served back over HTTP under /uploads/.
type Store struct {
	dir string
}

// NewStore ensures the upload directory exists and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes an uploaded file to disk under a unique generated name and
// returns that name. Names are the upload time in unix milliseconds joined
// with the sanitized original filename.
func (s *Store) Save(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), SanitizeFilename(header.Filename))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", name, err)
	}
	return name, nil
}

// FilePath resolves a stored name to its path on disk. Any path components
// in the name are stripped so a stored URL can never escape the directory.
func (s *Store) FilePath(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// SanitizeFilename strips path components and replaces characters outside
// [A-Za-z0-9._-] with underscores.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	if base == "" || base == "." || base == ".." {
		return "file"
	}
	return base
}
