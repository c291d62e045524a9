// Package notify defines the outage notification payload and the sink
// contract its delivery channels implement.
package notify

import (
	"context"
	"time"
)

// Severity constants recognised by downstream sinks.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// OutageEvent captures the canonical data emitted when the POS backend
// stops answering.
type OutageEvent struct {
	// Component is the backend surface that failed, e.g. "products" or "token".
	Component  string
	Error      string
	ErrorClass string
	Severity   string
	OccurredAt time.Time
	Metadata   map[string]string
}

// Sink describes a destination capable of consuming outage notifications.
type Sink interface {
	SendOutage(ctx context.Context, event OutageEvent) error
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, event OutageEvent) error

// SendOutage implements the Sink interface.
func (f SinkFunc) SendOutage(ctx context.Context, event OutageEvent) error {
	if f == nil {
		return nil
	}
	return f(ctx, event)
}
