package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kubikrubik/kubreminder/internal/config"
	"github.com/kubikrubik/kubreminder/internal/domain"
	"github.com/kubikrubik/kubreminder/internal/domain/contract"
	"github.com/kubikrubik/kubreminder/internal/domain/entity"
)

const maxUpcoming = 10

type lessonService struct {
	store contract.LessonStore
	cfg   *config.Config
}

func newLesson(store contract.LessonStore, cfg *config.Config) *lessonService {
	return &lessonService{
		store: store,
		cfg:   cfg,
	}
}

func (s *lessonService) AddLesson(dateStr, timeStr, description string) (entity.Lesson, []entity.Lesson, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entity.Lesson{}, nil, domain.ErrInvalidArguments
	}

	occursAt, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, s.cfg.Location)
	if err != nil {
		return entity.Lesson{}, nil, fmt.Errorf("%w: %v", domain.ErrInvalidDateTime, err)
	}

	lesson := entity.Lesson{
		Date:        dateStr,
		Time:        timeStr,
		Description: description,
		OccursAt:    occursAt,
		Reminded:    false,
	}

	lessons := s.store.Load()
	lessons = append(lessons, lesson)
	sortLessons(lessons)

	if err := s.store.Save(lessons); err != nil {
		return lesson, lessons, fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
	}

	return lesson, lessons, nil
}

func (s *lessonService) ListUpcoming(now time.Time) ([]entity.Lesson, int, error) {
	lessons := s.store.Load()

	var upcoming []entity.Lesson
	for _, l := range lessons {
		if !l.OccursAt.Before(now) {
			upcoming = append(upcoming, l)
		}
	}
	sortLessons(upcoming)

	if len(upcoming) > maxUpcoming {
		upcoming = upcoming[:maxUpcoming]
	}

	return upcoming, len(lessons), nil
}

func (s *lessonService) ListToday(now time.Time) ([]entity.Lesson, error) {
	now = now.In(s.cfg.Location)

	var today []entity.Lesson
	for _, l := range s.store.Load() {
		if l.OccursOn(now) {
			today = append(today, l)
		}
	}
	sortLessons(today)

	return today, nil
}

func (s *lessonService) DeleteLesson(position int) (entity.Lesson, error) {
	lessons := s.store.Load()

	idx := position - 1
	if idx < 0 || idx >= len(lessons) {
		return entity.Lesson{}, domain.ErrPositionOutOfRange
	}

	removed := lessons[idx]
	lessons = append(lessons[:idx], lessons[idx+1:]...)

	if err := s.store.Save(lessons); err != nil {
		return removed, fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
	}

	return removed, nil
}

func sortLessons(lessons []entity.Lesson) {
	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].OccursAt.Before(lessons[j].OccursAt)
	})
}
