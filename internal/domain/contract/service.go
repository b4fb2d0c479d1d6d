package contract

import (
	"time"

	"github.com/kubikrubik/kubreminder/internal/domain/entity"
)

//go:generate mockgen -package mocks -destination ../../../mocks/service.go -source=service.go

// LessonService is the command-facing contract over the lesson collection.
type LessonService interface {
	// AddLesson parses dateStr ("2006-01-02") and timeStr ("15:04") in the
	// fixed zone, appends a new lesson and persists the re-sorted
	// collection. It returns the created lesson and the full listing.
	AddLesson(dateStr, timeStr, description string) (entity.Lesson, []entity.Lesson, error)

	// ListUpcoming returns up to 10 lessons at or after now, ascending,
	// plus the total size of the collection so callers can tell "nothing
	// scheduled" apart from "nothing upcoming".
	ListUpcoming(now time.Time) (upcoming []entity.Lesson, total int, err error)

	// ListToday returns the lessons on now's calendar date, ascending.
	ListToday(now time.Time) ([]entity.Lesson, error)

	// DeleteLesson removes the lesson at the 1-based position in the
	// current sorted collection and returns it.
	DeleteLesson(position int) (entity.Lesson, error)
}

// ReminderService runs the reminder dispatch policy.
type ReminderService interface {
	// CheckReminders evaluates the pre-lesson and daily digest rules
	// against the current collection at the given instant.
	CheckReminders(now time.Time)
}
