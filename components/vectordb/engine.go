package vectordb

import (
	"context"

	"github.com/bububa/agent-toolkit/components/embedder"
)

type EngineType string

const (
	Memory  EngineType = "memory"
	Chromem EngineType = "chromem"
)

// Engine is a vector store capable of inserting embedded records into named
// collections and searching them by vector similarity.
type Engine interface {
	Insert(ctx context.Context, collection string, records ...Record) error
	Search(ctx context.Context, vectors []float64, opts ...SearchOption) ([]Record, error)
}

// Record represents a single embedded entry in a collection.
type Record struct {
	// ID is the identifier for the record
	ID string
	// Score is the similarity score for the record when returned from Search
	Score float64
	// Embedding embeddings for doc
	Embedding embedder.Embedding
}
