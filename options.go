package slotvec

type options struct {
	capacity         int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures a Vec at construction time.
type Option func(*options)

// WithCapacity pre-reserves backing storage for at least n slots.
// It is a performance hint only and does not change contents or index
// assignment. Negative values are treated as zero.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = max(n, 0)
	}
}

// WithLogger enables debug logging of slot reuse, appends, removals and
// storage growth. If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector configures a collector that observes inserts,
// removals and storage growth.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
