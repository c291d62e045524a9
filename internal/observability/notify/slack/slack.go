// Package slack delivers outage notifications to a Slack incoming webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/minegocio/pos-web/internal/observability/notify"
)

// Config captures the subset of Slack webhook behaviour we need.
type Config struct {
	WebhookURL string
	Channel    string
	Username   string
	Timeout    time.Duration
	RetryLimit int
	Client     *http.Client
}

// Client posts outage notifications to a Slack webhook.
type Client struct {
	webhookURL string
	channel    string
	username   string
	retryLimit int
	client     *http.Client
}

// NewClient builds a Slack webhook client.
func NewClient(cfg Config) (*Client, error) {
	webhookURL := strings.TrimSpace(cfg.WebhookURL)
	if webhookURL == "" {
		return nil, errors.New("slack webhook url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	retries := cfg.RetryLimit
	if retries < 0 {
		retries = 0
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	username := strings.TrimSpace(cfg.Username)
	if username == "" {
		username = "pos-web"
	}

	return &Client{
		webhookURL: webhookURL,
		channel:    strings.TrimSpace(cfg.Channel),
		username:   username,
		retryLimit: retries,
		client:     hc,
	}, nil
}

// SendOutage posts a formatted message to Slack.
func (c *Client) SendOutage(ctx context.Context, event notify.OutageEvent) error {
	body, err := json.Marshal(c.formatMessage(event))
	if err != nil {
		return fmt.Errorf("encode slack payload: %w", err)
	}

	attempts := c.retryLimit + 1
	var lastErr error
	for attempt := range attempts {
		err = c.post(ctx, body)
		if err == nil {
			return nil
		}
		lastErr = err
		if attempt < attempts-1 {
			// Linear backoff to avoid thundering retries.
			delay := time.Duration(attempt+1) * 200 * time.Millisecond
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	return lastErr
}

func (c *Client) formatMessage(event notify.OutageEvent) map[string]any {
	timestamp := event.OccurredAt
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	var text strings.Builder
	text.WriteString("*POS backend outage*")
	if event.Component != "" {
		text.WriteString(" `")
		text.WriteString(event.Component)
		text.WriteByte('`')
	}
	text.WriteByte('\n')

	severity := event.Severity
	if severity == "" {
		severity = notify.SeverityCritical
	}
	appendField(&text, "Severity", severity)
	appendField(&text, "Error class", event.ErrorClass)
	appendField(&text, "Error", event.Error)
	appendMetadata(&text, event.Metadata)
	appendField(&text, "At", timestamp.UTC().Format(time.RFC3339))

	msg := map[string]any{
		"text":     text.String(),
		"username": c.username,
	}
	if c.channel != "" {
		msg["channel"] = c.channel
	}
	return msg
}

func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("slack request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("slack webhook returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func appendField(text *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	text.WriteString(label)
	text.WriteString(": ")
	text.WriteString(value)
	text.WriteByte('\n')
}

func appendMetadata(text *strings.Builder, metadata map[string]string) {
	if len(metadata) == 0 {
		return
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		appendField(text, k, metadata[k])
	}
}
