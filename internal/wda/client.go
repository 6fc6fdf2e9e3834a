// Package wda drives the WebDriverAgent HTTP service that automates iOS
// devices and simulators. Stateful operations run inside a session that
// is created and deleted around each call.
package wda

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// StatusError is returned when the agent answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("WebDriverAgent %s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
	if body := strings.TrimSpace(e.Body); body != "" {
		if len(body) > 200 {
			body = body[:200] + "..."
		}
		msg += ": " + body
	}
	return msg
}

// Client talks to one WebDriverAgent instance.
type Client struct {
	http *resty.Client
	log  *zap.Logger
}

// NewClient creates a Client for the agent at baseURL, e.g.
// "http://localhost:8100". Requests are never retried.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &Client{http: rc, log: log}
}

// NewLocalClient creates a Client for an agent listening on host:port.
func NewLocalClient(host string, port int, timeout time.Duration, log *zap.Logger) *Client {
	return NewClient(fmt.Sprintf("http://%s:%d", host, port), timeout, log)
}

// IsRunning probes GET /status. Any failure, including a refused
// connection, reports false.
func (c *Client) IsRunning(ctx context.Context) bool {
	resp, err := c.http.R().SetContext(ctx).Get("/status")
	if err != nil {
		c.log.Debug("agent status probe failed", zap.Error(err))
		return false
	}
	return resp.StatusCode() == http.StatusOK
}

// do issues one request and returns the parsed JSON reply. A nil body
// sends no payload.
func (c *Client) do(ctx context.Context, method, path string, body any) (gjson.Result, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("WebDriverAgent %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return gjson.Result{}, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	raw := resp.Body()
	if len(raw) == 0 {
		return gjson.Result{}, nil
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("WebDriverAgent %s %s: invalid JSON reply", method, path)
	}
	return gjson.ParseBytes(raw), nil
}
