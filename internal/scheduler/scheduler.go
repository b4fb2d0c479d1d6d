package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/kubikrubik/kubreminder/internal/config"
	"github.com/kubikrubik/kubreminder/internal/domain/contract"
	"github.com/robfig/cron/v3"
)

// Scheduler drives the reminder policy: a fixed-cadence poll for the
// pre-lesson window checks, and a daily entry aligned to the digest minute.
type Scheduler struct {
	reminders contract.ReminderService
	cfg       *config.Config
	cron      *cron.Cron
}

func New(reminders contract.ReminderService, cfg *config.Config) *Scheduler {
	return &Scheduler{
		reminders: reminders,
		cfg:       cfg,
		cron:      cron.New(cron.WithLocation(cfg.Location)),
	}
}

func (s *Scheduler) Start() error {
	check := func() {
		s.reminders.CheckReminders(time.Now().In(s.cfg.Location))
	}

	// Poll cadence must stay under the reminder lead window so the
	// edge-triggered condition cannot be skipped between samples.
	pollSpec := fmt.Sprintf("@every %s", s.cfg.PollInterval)
	if _, err := s.cron.AddFunc(pollSpec, check); err != nil {
		return fmt.Errorf("failed to register reminder poll: %w", err)
	}

	hour, minute := s.cfg.DigestClock()
	digestSpec := fmt.Sprintf("%d %d * * *", minute, hour)
	if _, err := s.cron.AddFunc(digestSpec, check); err != nil {
		return fmt.Errorf("failed to register daily digest: %w", err)
	}

	s.cron.Start()
	log.Printf("Scheduler started: poll every %s, digest at %s %s",
		s.cfg.PollInterval, s.cfg.DigestTime, s.cfg.TimezoneName)
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Scheduler stopped")
}
