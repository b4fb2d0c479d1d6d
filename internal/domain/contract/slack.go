package contract

import "github.com/slack-go/slack"

//go:generate mockgen -package mocks -destination ../../../mocks/slack.go -source=slack.go

// SlackClient defines the Slack operations the bot needs.
// This allows mocking in tests while keeping the real implementation simple.
type SlackClient interface {
	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
