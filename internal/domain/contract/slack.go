package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Notifier delivers a fired reminder back into its channel
type Notifier interface {
	Deliver(ctx context.Context, channelID, userID, message string) error
}
