package slackapi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/heartmarshall/timelog-bot/internal/domain"
)

// Profile looks up a user in the workspace directory. Unknown users yield
// domain.ErrNotFound.
func (c *Client) Profile(ctx context.Context, externalID string) (*domain.DirectoryProfile, error) {
	var user *slack.User
	err := c.withRetry(ctx, "users.info", func() error {
		var err error
		user, err = c.api.GetUserInfoContext(ctx, externalID)
		return err
	})
	if err != nil {
		switch apiErrorCode(err) {
		case "user_not_found", "user_not_visible":
			return nil, fmt.Errorf("user %s: %w", externalID, domain.ErrNotFound)
		}
		return nil, err
	}

	name := user.Profile.DisplayName
	if name == "" {
		name = user.Name
	}
	return &domain.DirectoryProfile{
		ExternalID:  user.ID,
		DisplayName: name,
		Timezone:    user.TZ,
		IsBot:       user.IsBot,
		Deleted:     user.Deleted,
	}, nil
}

// BotUserID returns the bot's own user id, resolved once via auth.test.
// Concurrent callers share one in-flight lookup and no lock is held while it
// runs; each caller stops waiting when its own ctx is done.
func (c *Client) BotUserID(ctx context.Context) (string, error) {
	if id := c.cachedBotUserID(); id != "" {
		return id, nil
	}

	ch := c.authFlight.DoChan("auth.test", func() (any, error) {
		if id := c.cachedBotUserID(); id != "" {
			return id, nil
		}

		lookupCtx := context.WithoutCancel(ctx)
		var resp *slack.AuthTestResponse
		err := c.withRetry(lookupCtx, "auth.test", func() error {
			var err error
			resp, err = c.api.AuthTestContext(lookupCtx)
			return err
		})
		if err != nil {
			return "", err
		}

		c.mu.Lock()
		c.botUserID = resp.UserID
		c.mu.Unlock()
		c.log.InfoContext(lookupCtx, "bot identity resolved", slog.String("bot_user_id", resp.UserID))
		return resp.UserID, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *Client) cachedBotUserID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.botUserID
}
