package splitter

import "github.com/bububa/agent-toolkit/components/embedder"

type Options struct {
	chunkSize    int
	overlap      int
	tokenCounter embedder.TokenCounter
}

// Option is a function type for configuring chunker Options.
type Option func(*Options)

// WithChunkSize set the token budget per chunk
func WithChunkSize(size int) Option {
	return func(o *Options) {
		o.chunkSize = size
	}
}

// WithOverlap set the token overlap carried between adjacent chunks
func WithOverlap(overlap int) Option {
	return func(o *Options) {
		o.overlap = overlap
	}
}

// WithTokenCounter set the token counting strategy
func WithTokenCounter(counter embedder.TokenCounter) Option {
	return func(o *Options) {
		o.tokenCounter = counter
	}
}
