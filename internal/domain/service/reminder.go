package service

import (
	"fmt"
	"log"
	"time"

	"github.com/kubikrubik/kubreminder/internal/config"
	"github.com/kubikrubik/kubreminder/internal/domain/contract"
	"github.com/slack-go/slack"
)

type reminderService struct {
	store       contract.LessonStore
	slackClient contract.SlackClient
	cfg         *config.Config

	// lastDigestDay makes the daily digest idempotent per calendar day, so
	// an extra trigger within the digest minute cannot send duplicates.
	lastDigestDay string
}

func newReminder(store contract.LessonStore, slackClient contract.SlackClient, cfg *config.Config) *reminderService {
	return &reminderService{
		store:       store,
		slackClient: slackClient,
		cfg:         cfg,
	}
}

// CheckReminders evaluates both notification rules against the current
// collection: the one-shot pre-lesson reminder and the once-per-day digest.
// The collection is persisted at most once, after all lessons are processed.
func (r *reminderService) CheckReminders(now time.Time) {
	now = now.In(r.cfg.Location)
	lessons := r.store.Load()
	targets := r.cfg.NotificationTargets()
	changed := false

	digestDue := r.digestDue(now)

	for i := range lessons {
		lesson := &lessons[i]
		occursAt := lesson.OccursAt.In(r.cfg.Location)

		untilLesson := occursAt.Sub(now)
		if !lesson.Reminded && untilLesson >= 0 && untilLesson <= r.cfg.ReminderLead {
			message := fmt.Sprintf("⏰ Reminder, lesson in %d minutes:\n📝 %s at %s",
				int(r.cfg.ReminderLead.Minutes()), lesson.Description, occursAt.Format("15:04"))
			r.broadcast(targets, message)

			lesson.Reminded = true
			changed = true
		}

		if digestDue && lesson.OccursOn(now) {
			message := fmt.Sprintf("🔔 Lesson today at %s:\n📝 %s",
				occursAt.Format("15:04"), lesson.Description)
			r.broadcast(targets, message)
		}
	}

	if digestDue {
		r.lastDigestDay = now.Format("2006-01-02")
	}

	if changed {
		if err := r.store.Save(lessons); err != nil {
			log.Printf("Error saving lessons after reminders: %v", err)
		}
	}
}

// digestDue reports whether now sits in the digest minute of a day whose
// digest has not been sent yet.
func (r *reminderService) digestDue(now time.Time) bool {
	hour, minute := r.cfg.DigestClock()
	if now.Hour() != hour || now.Minute() != minute {
		return false
	}
	return r.lastDigestDay != now.Format("2006-01-02")
}

// broadcast delivers message to every target channel. Delivery is
// best-effort per channel: one failure is logged and must not abort the
// remaining targets.
func (r *reminderService) broadcast(targets []string, message string) {
	for _, channelID := range targets {
		_, _, err := r.slackClient.PostMessage(
			channelID,
			slack.MsgOptionText(message, false),
			slack.MsgOptionAsUser(false),
		)
		if err != nil {
			log.Printf("Error sending notification to channel %s: %v", channelID, err)
		}
	}
}
