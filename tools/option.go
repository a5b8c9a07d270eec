package tools

import "context"

// Option mutates the base tool Config at construction time.
type Option func(c *Config)

// WithTitle sets the tool title the registry and planner see.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.SetTitle(title)
	}
}

// WithDescription sets the natural-language description the planner matches
// queries against.
func WithDescription(desc string) Option {
	return func(c *Config) {
		c.SetDescription(desc)
	}
}

// WithStartHook registers a callback fired before the tool runs.
func WithStartHook(fn func(context.Context, AnonymousTool, any)) Option {
	return func(c *Config) {
		c.SetStartHook(fn)
	}
}

// WithEndHook registers a callback fired after a successful run.
func WithEndHook(fn func(context.Context, AnonymousTool, any, any)) Option {
	return func(c *Config) {
		c.SetEndHook(fn)
	}
}

// WithErrorHook registers a callback fired when the tool returns an error.
func WithErrorHook(fn func(context.Context, AnonymousTool, any, error)) Option {
	return func(c *Config) {
		c.SetErrorHook(fn)
	}
}
