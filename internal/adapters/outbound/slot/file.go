package slot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileSlot is a file-based implementation of domain.BlobSlot.
// Each key is stored as <dir>/<key>.json.
type FileSlot struct {
	dir string
}

// NewFile creates a file slot rooted at dir. The directory is created on first write.
func NewFile(dir string) *FileSlot {
	return &FileSlot{dir: dir}
}

// Read returns the blob for key. Returns (nil, nil) if no blob exists.
func (s *FileSlot) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // absent slot is not an error
		}
		return nil, err
	}
	return data, nil
}

// Write replaces the blob for key. The data goes to a temp file in the same
// directory first and is renamed over the old blob.
func (s *FileSlot) Write(_ context.Context, key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path(key))
}

// Remove deletes the blob for key.
func (s *FileSlot) Remove(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileSlot) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
