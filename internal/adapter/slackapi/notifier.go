package slackapi

import (
	"context"
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

const errAlreadyReacted = "already_reacted"

// PostEphemeral sends a message visible only to actorID in channelID.
func (c *Client) PostEphemeral(ctx context.Context, channelID, actorID, text string) error {
	return c.withRetry(ctx, "chat.postEphemeral", func() error {
		_, err := c.api.PostEphemeralContext(ctx, channelID, actorID, slack.MsgOptionText(text, false))
		return err
	})
}

// PromptCategory asks actorID to pick a category for the pending selection
// identified by correlationKey.
func (c *Client) PromptCategory(ctx context.Context, channelID, actorID, correlationKey, suggested string, categories []string) error {
	blocks := categoryPromptBlocks(correlationKey, suggested, categories)
	err := c.withRetry(ctx, "chat.postEphemeral", func() error {
		_, err := c.api.PostEphemeralContext(ctx, channelID, actorID,
			slack.MsgOptionText(promptFallbackText, false),
			slack.MsgOptionBlocks(blocks...),
		)
		return err
	})
	if err != nil {
		return err
	}

	c.log.DebugContext(ctx, "category prompt sent",
		slog.String("channel_id", channelID),
		slog.String("correlation_key", correlationKey),
		slog.Int("options", len(categories)+1),
	)
	return nil
}

// OpenCategoryForm opens the create-category form for triggerID.
func (c *Client) OpenCategoryForm(ctx context.Context, triggerID, suggested string, meta domain.FormMetadata) error {
	view := categoryFormView(suggested, meta)
	return c.withRetry(ctx, "views.open", func() error {
		_, err := c.api.OpenViewContext(ctx, triggerID, view)
		return err
	})
}

// Acknowledge reacts to the original message. A reaction that already exists
// counts as success.
func (c *Client) Acknowledge(ctx context.Context, channelID, messageTS string) error {
	err := c.withRetry(ctx, "reactions.add", func() error {
		return c.api.AddReactionContext(ctx, c.ackEmoji, slack.NewRefToMessage(channelID, messageTS))
	})
	if apiErrorCode(err) == errAlreadyReacted {
		c.log.DebugContext(ctx, "message already acknowledged", slog.String("message_ts", messageTS))
		return nil
	}
	return err
}
