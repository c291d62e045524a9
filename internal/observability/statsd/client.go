// Package statsd emits application metrics using the StatsD line protocol
// with DogStatsD-style tags over UDP.
package statsd

import (
	"fmt"
	"log/slog"
	"net"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Sink is the minimal metrics surface the rest of the application depends on.
// A nil *Client satisfies it as a no-op, so callers never need to branch on
// whether metrics are enabled.
type Sink interface {
	Count(name string, value int64, tags map[string]string)
	Gauge(name string, value float64, tags map[string]string)
	Timing(name string, value time.Duration, tags map[string]string)
}

// Config configures the StatsD client.
type Config struct {
	Enabled bool
	Address string
	Prefix  string
	Logger  *slog.Logger
	// GlobalTags are attached to every metric the client emits.
	GlobalTags map[string]string
}

// Client sends metrics to a StatsD daemon. A disabled or nil client drops
// everything silently. Safe for concurrent use.
type Client struct {
	prefix     string
	globalTags string // pre-rendered "|#k:v,..." suffix, "" when no tags

	logger *slog.Logger

	mu     sync.Mutex
	conn   net.Conn
	closed bool
}

var _ Sink = (*Client)(nil)

// NewClient dials the StatsD endpoint. When cfg.Enabled is false or no
// address is configured it returns a client that discards all metrics.
func NewClient(cfg Config) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		prefix:     strings.Trim(strings.TrimSpace(cfg.Prefix), "."),
		globalTags: renderTags(cfg.GlobalTags, nil),
		logger:     logger,
	}

	addr := strings.TrimSpace(cfg.Address)
	if !cfg.Enabled || addr == "" {
		return c, nil
	}

	conn, err := net.DialTimeout("udp", addr, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("statsd dial %s: %w", addr, err)
	}
	c.conn = conn
	return c, nil
}

// Enabled reports whether the client has a live connection.
func (c *Client) Enabled() bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil && !c.closed
}

// Count increments a counter.
func (c *Client) Count(name string, value int64, tags map[string]string) {
	c.emit(name, strconv.FormatInt(value, 10), "c", tags)
}

// Gauge reports the current value of a gauge.
func (c *Client) Gauge(name string, value float64, tags map[string]string) {
	c.emit(name, formatFloat(value), "g", tags)
}

// Timing reports a duration in milliseconds.
func (c *Client) Timing(name string, value time.Duration, tags map[string]string) {
	ms := float64(value) / float64(time.Millisecond)
	c.emit(name, formatFloat(ms), "ms", tags)
}

// Close shuts the UDP connection. Further emits become no-ops.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Client) emit(name, value, unit string, tags map[string]string) {
	if c == nil {
		return
	}

	metric := cleanName(name)
	if metric == "" {
		return
	}
	if c.prefix != "" {
		metric = c.prefix + "." + metric
	}

	line := metric + ":" + value + "|" + unit + mergeTagSuffix(c.globalTags, tags)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.closed {
		return
	}
	if _, err := c.conn.Write([]byte(line)); err != nil {
		c.logger.Debug("statsd write failed", "metric", metric, "error", err)
	}
}

// cleanName makes a metric name safe for the line protocol: spaces and
// slashes become underscores, stray dots are trimmed.
func cleanName(name string) string {
	n := strings.TrimSpace(name)
	if n == "" {
		return ""
	}
	n = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', ':', '|':
			return '_'
		default:
			return r
		}
	}, n)
	for strings.Contains(n, "..") {
		n = strings.ReplaceAll(n, "..", ".")
	}
	return strings.Trim(n, ".")
}

// renderTags builds the "|#k:v,k:v" suffix from the union of both maps,
// local entries winning over global ones. Keys are sorted so output is
// deterministic. Returns "" when there is nothing to emit.
func renderTags(global, local map[string]string) string {
	merged := make(map[string]string, len(global)+len(local))
	for _, m := range []map[string]string{global, local} {
		for k, v := range m {
			key := strings.TrimSpace(k)
			if key == "" {
				continue
			}
			merged[key] = strings.TrimSpace(v)
		}
	}
	if len(merged) == 0 {
		return ""
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("|#")
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(merged[k])
	}
	return b.String()
}

// mergeTagSuffix combines a pre-rendered global suffix with local tags.
// Local keys override global ones.
func mergeTagSuffix(globalSuffix string, local map[string]string) string {
	if len(local) == 0 {
		return globalSuffix
	}
	global := parseTagSuffix(globalSuffix)
	return renderTags(global, local)
}

func parseTagSuffix(suffix string) map[string]string {
	body := strings.TrimPrefix(suffix, "|#")
	if body == "" {
		return nil
	}
	out := make(map[string]string)
	for _, pair := range strings.Split(body, ",") {
		k, v, _ := strings.Cut(pair, ":")
		if k != "" {
			out[k] = v
		}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
