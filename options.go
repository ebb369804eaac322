package growvec

import "log/slog"

// DefaultInitialCapacity is the capacity of a vector built without
// WithInitialCapacity.
const DefaultInitialCapacity = 10

type options struct {
	initialCapacity  int
	growthPolicy     GrowthPolicy
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Vector at construction.
type Option func(*options)

// WithInitialCapacity sets the minimum capacity of the vector.
// Values below 1 are clamped to 1.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.initialCapacity = n
	}
}

// WithGrowthPolicy replaces the default doubling policy.
//
// If nil is passed, Doubling is used. For vectors built with From or Of the
// policy is installed after the initial elements are appended, so it only
// governs later growth.
func WithGrowthPolicy(p GrowthPolicy) Option {
	return func(o *options) {
		if p == nil {
			p = Doubling
		}
		o.growthPolicy = p
	}
}

// WithMetricsCollector configures a collector for growth, shift and clear
// events. Pass nil to disable metrics collection.
//
// Example:
//
//	metrics := &growvec.BasicMetricsCollector{}
//	v := growvec.New[int](growvec.WithMetricsCollector(metrics))
//	// ... use v ...
//	fmt.Println(metrics.GetStats().Growths)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured debug logging of growth and clear.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := growvec.NewJSONLogger(slog.LevelDebug)
//	v := growvec.New[string](growvec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		initialCapacity:  DefaultInitialCapacity,
		growthPolicy:     Doubling,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
