package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/amirasaad/fxcli/pkg/storage"
)

// JSONFile implements storage.Store on top of a single JSON file.
type JSONFile struct {
	path string
}

// NewJSONFile creates a store backed by the file at path.
// The file is not touched until the first Load or Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the backing file path.
func (f *JSONFile) Path() string {
	return f.path
}

// Load reads and decodes the file into v.
func (f *JSONFile) Load(v any) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %w", storage.ErrMalformed, f.path, err)
	}
	return nil
}

// Save encodes v with two-space indentation and writes it to the file,
// creating the parent directory when needed.
func (f *JSONFile) Save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f.path, err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", f.path, err)
		}
	}
	data = append(data, '\n')
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return nil
}
