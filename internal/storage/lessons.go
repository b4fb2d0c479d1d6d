package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/kubikrubik/kubreminder/internal/domain/entity"
)

// Store persists the lesson collection as a single JSON file. Every Save
// rewrites the file wholesale; the last full write wins.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted collection. A missing, unreadable or corrupt
// file is logged and degrades to an empty collection so command handling
// keeps working.
func (s *Store) Load() []entity.Lesson {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Error loading lessons from %s: %v", s.path, err)
		}
		return nil
	}

	var lessons []entity.Lesson
	if err := json.Unmarshal(data, &lessons); err != nil {
		log.Printf("Error parsing lessons file %s: %v", s.path, err)
		return nil
	}

	return lessons
}

// Save serializes the full collection, replacing prior on-disk state.
func (s *Store) Save(lessons []entity.Lesson) error {
	if lessons == nil {
		lessons = []entity.Lesson{}
	}

	data, err := json.MarshalIndent(lessons, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode lessons: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write lessons file: %w", err)
	}

	return nil
}
