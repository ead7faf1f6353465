// Package config persists the rn settings record.
//
// The record lives in a single YAML file named FileName directly under a
// configuration root. Every Store operation takes its root from the Store,
// never from the process working directory, so callers (and tests) can point
// it anywhere.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	rnerrors "git.home.luguber.info/inful/rn/internal/errors"
)

// FileName is the name of the settings file inside the configuration root.
const FileName = ".rn"

// Store loads and saves Settings under a configuration root.
type Store struct {
	root string
}

// NewStore returns a Store rooted at root. An empty root means the current directory.
func NewStore(root string) *Store {
	if root == "" {
		root = "."
	}
	return &Store{root: root}
}

// Root returns the configuration root.
func (s *Store) Root() string {
	return s.root
}

// Path returns the location of the settings file.
func (s *Store) Path() string {
	return filepath.Join(s.root, FileName)
}

// Exists reports whether the settings file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Load reads and decodes the settings file.
func (s *Store) Load() (*Settings, error) {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rnerrors.NotInitialized(path, err)
	}

	settings, err := Decode(data)
	if err != nil {
		return nil, rnerrors.ConfigCorrupt(path, err)
	}
	return settings, nil
}

// Save writes settings to the settings file, replacing it atomically.
// On failure the previous file, if any, is left untouched.
func (s *Store) Save(settings *Settings) error {
	path := s.Path()

	data, err := Encode(settings)
	if err != nil {
		return rnerrors.ConfigWriteFailed(path, err)
	}

	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return rnerrors.ConfigWriteFailed(path, err)
	}
	return nil
}

// Print renders settings to w in the same format Save writes.
func (s *Store) Print(w io.Writer, settings *Settings) error {
	data, err := Encode(settings)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Encode marshals settings to YAML.
func Encode(settings *Settings) ([]byte, error) {
	if settings == nil {
		return nil, errors.New("nil settings")
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}

// Decode parses a settings record, rejecting unknown keys and missing mandatory fields.
func Decode(data []byte) (*Settings, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var settings Settings
	if err := dec.Decode(&settings); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("file is empty")
		}
		return nil, err
	}

	if settings.Directory == "" {
		return nil, errors.New("default_dir is missing")
	}
	if settings.Binary == "" {
		return nil, errors.New("default_bin is missing")
	}
	return &settings, nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	// Rename is atomic on the same filesystem.
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
