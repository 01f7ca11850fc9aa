package notifier

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type SlackNotifier struct {
	client  contract.SlackClient
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewSlack posts at most ratePerSec messages per second. Slack allows about
// one message per second per channel.
func NewSlack(client contract.SlackClient, ratePerSec int, log *zap.Logger) *SlackNotifier {
	if ratePerSec <= 0 {
		ratePerSec = 1
	}

	return &SlackNotifier{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec),
		log:     log,
	}
}

// Deliver posts the reminder text mentioning its owner
func (n *SlackNotifier) Deliver(ctx context.Context, channelID, userID, message string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %w", domain.ErrDelivery, err)
	}

	_, ts, err := n.client.PostMessageContext(ctx, channelID,
		slack.MsgOptionText(FormatReminder(userID, message), false),
	)
	if err != nil {
		return fmt.Errorf("%w: channel %s: %w", domain.ErrDelivery, channelID, err)
	}

	n.log.Debug("message posted", zap.String("channel", channelID), zap.String("ts", ts))
	return nil
}

func FormatReminder(userID, message string) string {
	return fmt.Sprintf("<@%s> ⏰ Reminder: %s", userID, message)
}
