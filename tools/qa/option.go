package qa

import "github.com/bububa/agent-toolkit/tools"

type Option func(*Config)

// WithClient sets the chat-completion client.
func WithClient(clt ChatClient) Option {
	return func(c *Config) {
		c.client = clt
	}
}

// WithModel sets the chat-completion model name.
func WithModel(model string) Option {
	return func(c *Config) {
		c.model = model
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float32) Option {
	return func(c *Config) {
		c.temperature = temperature
	}
}

// WithTemplate overrides the prompt template. The template must contain
// the {question} placeholder.
func WithTemplate(template string) Option {
	return func(c *Config) {
		c.template = template
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
