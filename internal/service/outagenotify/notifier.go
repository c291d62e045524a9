// Package outagenotify fans backend outage events out to notification sinks,
// suppressing repeats so a dead backend does not flood the channel on every
// failed request.
package outagenotify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/minegocio/pos-web/internal/observability/notify"
)

// DefaultCooldown is how long repeated outages for the same component are
// suppressed after a notification goes out.
const DefaultCooldown = 5 * time.Minute

// SinkRegistration pairs a sink implementation with a human-readable name
// for logging.
type SinkRegistration struct {
	Name string
	Sink notify.Sink
}

// Options configures the outage notifier.
type Options struct {
	Logger   *slog.Logger
	Sinks    []SinkRegistration
	Cooldown time.Duration
	Now      func() time.Time
}

// Service dispatches outage events to all registered sinks.
type Service struct {
	logger   *slog.Logger
	sinks    []SinkRegistration
	cooldown time.Duration
	now      func() time.Time

	mu       sync.Mutex
	lastSent map[string]time.Time
}

// NewService constructs an outage notifier.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default().With("component", "outage_notifier")
	}

	var sinks []SinkRegistration
	for _, entry := range opts.Sinks {
		if entry.Sink == nil {
			continue
		}
		name := entry.Name
		if name == "" {
			name = "sink"
		}
		sinks = append(sinks, SinkRegistration{Name: name, Sink: entry.Sink})
	}

	cooldown := opts.Cooldown
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		logger:   logger,
		sinks:    sinks,
		cooldown: cooldown,
		now:      now,
		lastSent: make(map[string]time.Time),
	}
}

// NotifyOutage fans the event out to all sinks unless the same component
// already alerted within the cooldown window.
func (s *Service) NotifyOutage(ctx context.Context, event notify.OutageEvent) {
	if s == nil || len(s.sinks) == 0 {
		return
	}

	if !s.shouldSend(event.Component) {
		s.logger.DebugContext(ctx, "outage notification suppressed by cooldown",
			"component", event.Component)
		return
	}

	if event.Severity == "" {
		event.Severity = notify.SeverityCritical
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now()
	}

	var wg sync.WaitGroup
	for _, entry := range s.sinks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := entry.Sink.SendOutage(ctx, event); err != nil {
				s.logger.Error("outage notification delivery failed",
					"sink", entry.Name,
					"outage_component", event.Component,
					"error", err,
				)
			}
		}()
	}
	wg.Wait()
}

// Enabled reports whether the notifier has any active sinks.
func (s *Service) Enabled() bool {
	return s != nil && len(s.sinks) > 0
}

func (s *Service) shouldSend(component string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if last, ok := s.lastSent[component]; ok && now.Sub(last) < s.cooldown {
		return false
	}
	s.lastSent[component] = now
	return true
}
