package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend abstracts where the serialized document lives.
type Backend interface {
	// Load returns the raw document, or nil when none has been saved yet.
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileBackend keeps the document in a single file on disk.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend rooted at the given path.
func NewFileBackend(path string) *FileBackend {
	if path == "" {
		path = "./data/portal.json"
	}
	return &FileBackend{path: path}
}

func (b *FileBackend) Load() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read portal document: %w", err)
	}
	return data, nil
}

// Save writes the document to a temp sibling and renames it over the
// target; a partial write never reaches the document path.
func (b *FileBackend) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("prepare data directory: %w", err)
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write portal document: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("replace portal document: %w", err)
	}
	return nil
}

// MemoryBackend keeps the document in memory. Used by tests and ephemeral
// sessions.
type MemoryBackend struct {
	data []byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load() ([]byte, error) {
	return b.data, nil
}

func (b *MemoryBackend) Save(data []byte) error {
	b.data = append([]byte(nil), data...)
	return nil
}
