package contract

import "github.com/kubikrubik/kubreminder/internal/domain/entity"

//go:generate mockgen -package mocks -destination ../../../mocks/repo.go -source=repo.go

// LessonStore is the persistence contract for the lesson collection. The
// whole collection is read and written wholesale; there is no incremental
// update.
type LessonStore interface {
	// Load returns the persisted collection. A missing or unreadable file
	// degrades to an empty collection; it never returns an error.
	Load() []entity.Lesson

	// Save replaces the persisted collection with lessons.
	Save(lessons []entity.Lesson) error
}
