package service

import (
	"github.com/kubikrubik/kubreminder/internal/config"
	"github.com/kubikrubik/kubreminder/internal/domain/contract"
)

type Instance struct {
	Lessons   *lessonService
	Reminders *reminderService
}

func NewInstance(store contract.LessonStore, slackClient contract.SlackClient, cfg *config.Config) *Instance {
	return &Instance{
		Lessons:   newLesson(store, cfg),
		Reminders: newReminder(store, slackClient, cfg),
	}
}
