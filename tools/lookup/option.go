package lookup

import "github.com/bububa/agent-toolkit/tools"

type Option func(*Config)

// WithCoolName sets the name the lookup matches against.
func WithCoolName(name string) Option {
	return func(c *Config) {
		c.coolName = name
	}
}

// WithToolOptions applies base tool options such as title and hooks.
func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}
