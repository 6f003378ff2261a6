package validation

import (
	"log/slog"

	"github.com/dmitrymomot/livevalidation/pkg/logger"
	"github.com/dmitrymomot/livevalidation/pkg/observable"
)

// Option configures validators and contexts.
type Option func(*options)

type options struct {
	name       string
	logger     *slog.Logger
	scheduler  observable.Scheduler
	properties []string
}

// WithName sets the name used for the component in log records.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithScheduler sets the scheduler StatusChanges subscribers are notified
// on. Without one, notifications are delivered inline. A parent Context
// always follows its children inline and applies only its own scheduler.
func WithScheduler(s observable.Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithProperties associates a stream-driven validator with property keys,
// for lookup only. Keys are checked like Path.
func WithProperties(paths ...string) Option {
	return func(o *options) {
		o.properties = append(o.properties, paths...)
	}
}

func newOptions(kind string, opts []Option) *options {
	o := &options{
		name:   kind,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
