package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Store loads and saves the task list at a fixed path.
type Store struct {
	path string
}

// Open returns a store backed by the JSON file at path. The file is not
// touched until Load or Save is called.
func Open(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task list. A missing file yields an empty list; a file
// that cannot be read or parsed is an error.
func (s *Store) Load() ([]Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return tasks, nil
}

// Save writes the task list as an indented JSON array, overwriting the
// file in place. An empty list is written as [].
func (s *Store) Save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "    ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
