package frontier

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	initialCapacity  int
}

// Option configures Frontier constructor behavior.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for frontier
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &frontier.BasicMetricsCollector{}
//	f := frontier.New(strategy, frontier.WithMetricsCollector(metrics))
//	// ... run the search ...
//	stats := metrics.GetStats()
//	fmt.Printf("queued: %d, reprioritized: %d\n", stats.AddInserted, stats.AddReprioritized)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for frontier operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := frontier.NewJSONLogger(slog.LevelDebug)
//	f := frontier.New(strategy, frontier.WithLogger(logger))
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

// WithInitialCapacity pre-sizes the underlying queue storage for searches
// whose frontier size is roughly known up front.
func WithInitialCapacity(capacity int) Option {
	return func(o *options) {
		o.initialCapacity = capacity
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		initialCapacity:  16,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
