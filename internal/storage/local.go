// Package storage persists uploaded media on the local filesystem and hands
// back stable reference names. The rest of the application only ever stores
// the reference, never the bytes.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store accepts named binary blobs and returns stable references.
type Store interface {
	Save(name string, r io.Reader) (string, error)
	Remove(ref string) error
	Path(ref string) string
}

// LocalStore writes blobs into a single directory. References are
// uuid-based so uploads can never collide or traverse paths.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the blob and returns its reference. Only the extension of the
// original name is kept.
func (s *LocalStore) Save(name string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	ref := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.dir, ref))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("writing upload: %w", err)
	}
	return ref, nil
}

// Remove deletes a stored blob by reference. Unknown references are not an error.
func (s *LocalStore) Remove(ref string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path resolves a reference to its on-disk location for serving.
func (s *LocalStore) Path(ref string) string {
	return filepath.Join(s.dir, filepath.Base(ref))
}
