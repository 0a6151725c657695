package memo

// config holds the resolved configuration for a memoizer.
type config struct {
	name     string
	observer Observer
}

// Option configures a memoizer.
type Option func(*config)

func defaultConfig() config {
	return config{name: "memo"}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithName sets the cache name reported in events. Defaults to "memo".
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithObserver attaches an Observer that receives hit, miss, and
// error events for the lifetime of the memoizer.
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}
