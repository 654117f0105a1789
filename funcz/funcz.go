// Package funcz provides decorators that control when and how often a
// function runs: [Once], [Memoize], [Delay] and [Throttle].
//
// Every decorator owns its state; two wraps of the same function never share
// a cache, a flag or a timer. Deferred decorators schedule work on a
// [timez.Scheduler], which defaults to the runtime timers and can be replaced
// with a [timez.Virtual] clock in tests.
package funcz

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/adobaai/underbar/timez"
)

const scope = "github.com/adobaai/underbar/funcz"

type options struct {
	sched  timez.Scheduler
	logger *slog.Logger
	meter  metric.Meter
	tracer trace.Tracer
}

type Option func(o *options)

// WithScheduler sets the scheduler used by deferred calls.
func WithScheduler(s timez.Scheduler) Option {
	return func(o *options) {
		o.sched = s
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.logger = log.With("component", "funcz")
	}
}

// WithMeterProvider sets the provider of the call counters.
// The global provider is used by default.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meter = mp.Meter(scope)
	}
}

// WithTracerProvider sets the provider of the spans around delayed calls.
// The global provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracer = tp.Tracer(scope)
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		sched:  timez.System(),
		logger: slog.Default().With("component", "funcz"),
		meter:  otel.Meter(scope),
		tracer: otel.Tracer(scope),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) counter(name, desc string) metric.Int64Counter {
	c, err := o.meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		o.logger.Warn("create counter", "name", name, "err", err)
		return noop.Int64Counter{}
	}
	return c
}
