package roster

import "go.uber.org/zap"

// Option configures a World at construction.
type Option func(*World)

// WithLogger sets the world's structured logger. The default is a nop
// logger; lifecycle activity is logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithLifecycleEvents wires announcement callbacks for entity and
// component lifecycle events. Callbacks fire synchronously after the
// query manager has been updated; they carry no query-correctness weight
// and nil members are skipped.
func WithLifecycleEvents(ev Events) Option {
	return func(w *World) {
		w.events = ev
	}
}

// WithEntityCapacity sizes each new space's entity storage for roughly n
// entities up front.
func WithEntityCapacity(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.entityCapacity = n
		}
	}
}
