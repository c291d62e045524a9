// Package metrics emits the application's domain metrics through a
// StatsD-compatible sink.
package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	obserrors "github.com/minegocio/pos-web/internal/observability/errors"
	"github.com/minegocio/pos-web/internal/observability/statsd"
)

// EmitSale records a completed sale: a counter per payment method and a gauge
// with the sale total.
func EmitSale(sink statsd.Sink, paymentMethod string, total decimal.Decimal) {
	if sink == nil {
		return
	}
	tags := map[string]string{"payment_method": paymentMethod}
	sink.Count("sale.recorded", 1, tags)
	sink.Gauge("sale.total", total.InexactFloat64(), tags)
}

// EmitSaleCanceled records a voided sale.
func EmitSaleCanceled(sink statsd.Sink) {
	if sink == nil {
		return
	}
	sink.Count("sale.canceled", 1, nil)
}

// BackendRequest captures one round trip to the POS backend for emission.
type BackendRequest struct {
	Operation string
	Duration  time.Duration
	Err       error
}

// EmitBackendRequest emits counters and timings for a backend API call. On
// failure the counter carries the error class so dashboards can split
// connectivity problems from rejections.
func EmitBackendRequest(sink statsd.Sink, in BackendRequest) {
	if sink == nil {
		return
	}

	tags := map[string]string{"operation": in.Operation}
	if in.Err != nil {
		tags["result"] = "error"
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	} else {
		tags["result"] = "success"
	}

	sink.Count("backend.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("backend.duration", in.Duration, tags)
	}
}

// EmitSessionEvent counts session lifecycle events: login, logout, refresh,
// refresh_failed.
func EmitSessionEvent(sink statsd.Sink, event string) {
	if sink == nil {
		return
	}
	sink.Count("session."+event, 1, map[string]string{"event": event})
}
