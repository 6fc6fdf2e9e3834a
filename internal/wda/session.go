package wda

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

var sessionCapabilities = map[string]any{
	"capabilities": map[string]any{
		"alwaysMatch": map[string]any{
			"platformName": "iOS",
		},
	},
}

func (c *Client) createSession(ctx context.Context) (string, error) {
	res, err := c.do(ctx, http.MethodPost, "/session", sessionCapabilities)
	if err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}

	id := res.Get("value.sessionId").String()
	if id == "" {
		id = res.Get("sessionId").String()
	}
	if id == "" {
		return "", fmt.Errorf("creating session: reply carries no session id")
	}
	return id, nil
}

func (c *Client) deleteSession(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/session/"+id, nil)
	return err
}

// withinSession creates a session, runs fn with the session path
// ("/session/<id>") and deletes the session on every exit path.
func (c *Client) withinSession(ctx context.Context, fn func(sessionPath string) error) error {
	id, err := c.createSession(ctx)
	if err != nil {
		return err
	}
	c.log.Debug("session created", zap.String("session", id))

	defer func() {
		// The caller's context may already be cancelled; the delete must still go out.
		if err := c.deleteSession(context.WithoutCancel(ctx), id); err != nil {
			c.log.Warn("failed to delete session", zap.String("session", id), zap.Error(err))
			return
		}
		c.log.Debug("session deleted", zap.String("session", id))
	}()

	return fn("/session/" + id)
}
