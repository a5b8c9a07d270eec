package retrieval

import "github.com/bububa/agent-toolkit/tools"

type Option func(*Config)

// WithEngine sets the retrieval engine the tool delegates to.
func WithEngine(engine Engine) Option {
	return func(c *Config) {
		c.engine = engine
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
