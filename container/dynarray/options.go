package dynarray

// Config defines allocation limits shared by an array and the arrays derived
// from it (clones, moves).
type Config struct {
	// MaxCapacity caps the slot count of any single allocation.
	// Zero means no limit beyond what the buffer layer accepts.
	MaxCapacity int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the unrestricted configuration.
func DefaultConfig() Config {
	return Config{}
}

// WithMaxCapacity limits every allocation to at most n slots.
// Non-positive values are ignored.
func WithMaxCapacity(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxCapacity = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
