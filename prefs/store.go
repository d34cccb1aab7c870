package prefs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Store is the durable key-value capability behind user preferences. Values
// are plain strings; collection-valued preferences serialise themselves.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Clear() error
}

// ---------------- FileStore ----------------

// FileStore keeps preferences in a single JSON object file. Every operation
// is a full read-modify-write: writes are synchronous and immediately
// consistent within the session, and there are no concurrent writers.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns ~/.config/estante/prefs.json, creating the directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "estante")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs.json"), nil
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, err
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		// A corrupt preference file is not worth failing the session over;
		// start from defaults and overwrite on the next Set.
		return make(map[string]string), nil
	}
	return values, nil
}

func (s *FileStore) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func (s *FileStore) Get(key string) (string, bool) {
	values, err := s.load()
	if err != nil {
		return "", false
	}
	v, ok := values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ---------------- MemStore ----------------

// MemStore is an in-memory Store for tests.
type MemStore struct {
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *MemStore) Clear() error {
	s.values = make(map[string]string)
	return nil
}
