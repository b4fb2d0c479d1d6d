package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every runtime setting. It is built once at startup and
// passed by reference; nothing re-reads the environment after Load.
type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	Port               string

	PrimaryChannelID string
	AdminUserIDs     []string
	AllowedChannels  []string

	TimezoneName string
	Location     *time.Location
	DigestTime   string // HH:MM in the fixed zone
	ReminderLead time.Duration
	PollInterval time.Duration

	LessonsPath string
}

func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		Port:               getEnv("PORT", "3000"),
		PrimaryChannelID:   getEnv("PRIMARY_CHANNEL_ID", ""),
		AdminUserIDs:       splitList(getEnv("ADMIN_USER_IDS", "")),
		AllowedChannels:    splitList(getEnv("ALLOWED_CHANNELS", "")),
		TimezoneName:       getEnv("TIMEZONE", "Asia/Tbilisi"),
		DigestTime:         getEnv("DIGEST_TIME", "10:00"),
		LessonsPath:        getEnv("LESSONS_FILE", "./lessons.json"),
	}

	loc, err := time.LoadLocation(cfg.TimezoneName)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.TimezoneName, err)
	}
	cfg.Location = loc

	if _, err := time.Parse("15:04", cfg.DigestTime); err != nil {
		return nil, fmt.Errorf("invalid DIGEST_TIME %q: %w", cfg.DigestTime, err)
	}

	leadMinutes, err := getEnvInt("REMINDER_LEAD_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	cfg.ReminderLead = time.Duration(leadMinutes) * time.Minute

	pollSeconds, err := getEnvInt("POLL_INTERVAL_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.PollInterval = time.Duration(pollSeconds) * time.Second

	return cfg, nil
}

// IsAdmin reports whether the given Slack user ID may run privileged commands.
func (c *Config) IsAdmin(userID string) bool {
	for _, id := range c.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// IsAllowedChannel reports whether a command may originate from the given
// channel. An empty allow-list means any channel is accepted.
func (c *Config) IsAllowedChannel(channelID string) bool {
	if len(c.AllowedChannels) == 0 {
		return true
	}
	if channelID == c.PrimaryChannelID {
		return true
	}
	for _, id := range c.AllowedChannels {
		if id == channelID {
			return true
		}
	}
	return false
}

// NotificationTargets returns the primary channel plus the allow-listed
// channels, deduplicated, with empty entries dropped.
func (c *Config) NotificationTargets() []string {
	seen := make(map[string]bool)
	var targets []string
	for _, id := range append([]string{c.PrimaryChannelID}, c.AllowedChannels...) {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		targets = append(targets, id)
	}
	return targets
}

// DigestClock returns the digest hour and minute in the fixed zone.
func (c *Config) DigestClock() (hour, minute int) {
	t, _ := time.Parse("15:04", c.DigestTime)
	return t.Hour(), t.Minute()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
