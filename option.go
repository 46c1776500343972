package bindex

// Options configures tree behavior.
type Options struct {
	logger    Logger
	cacheSize uint32 // Number of resolved lookups to keep. 0 disables the cache.
}

// DefaultOptions returns the configuration used when no Option is given.
//
//goland:noinspection GoUnusedExportedFunction
func DefaultOptions() Options {
	return Options{
		logger:    DiscardLogger{},
		cacheSize: 0,
	}
}

// Option configures tree options using the functional options pattern.
type Option func(*Options)

// WithLogger routes the tree's structural events (root splits) to l.
// A nil logger restores the default no-op logger.
//
//goland:noinspection GoUnusedExportedFunction
func WithLogger(l Logger) Option {
	return func(opts *Options) {
		if l == nil {
			l = DiscardLogger{}
		}
		opts.logger = l
	}
}

// WithLookupCache keeps the most recently found entries in an LRU in front of
// the tree. Entries are never stale because inserted values cannot change.
// Sizes below the cache minimum are rounded up; 0 disables the cache.
//
//goland:noinspection GoUnusedExportedFunction
func WithLookupCache(entries uint32) Option {
	return func(opts *Options) {
		opts.cacheSize = entries
	}
}
