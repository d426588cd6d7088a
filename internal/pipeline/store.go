package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore writes uploaded label photos under a flat directory,
// keyed by a fresh UUID so concurrent uploads never collide.
type ImageStore struct {
	Dir     string
	MaxSize int64
}

func NewImageStore(dir string, maxSize int64) *ImageStore {
	return &ImageStore{Dir: dir, MaxSize: maxSize}
}

// Save persists image bytes and returns the stored path. The original
// filename only contributes its extension.
func (s *ImageStore) Save(data []byte, filename string) (string, error) {
	if s.MaxSize > 0 && int64(len(data)) > s.MaxSize {
		return "", fmt.Errorf("image exceeds %d bytes", s.MaxSize)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	path := filepath.Join(s.Dir, uuid.New().String()+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}

// Remove deletes a stored image, tolerating already-gone files.
func (s *ImageStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
