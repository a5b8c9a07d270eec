package retrieval

import (
	"context"
	"errors"

	"github.com/bububa/agent-toolkit/schema"
	"github.com/bububa/agent-toolkit/tools"
)

// ErrNoEngine is returned when the tool runs without a retrieval engine.
var ErrNoEngine = errors.New("retrieval: no engine configured")

// Engine answers a query from an indexed document corpus. agents/rag.RAG
// implements it.
type Engine interface {
	ReturnAnswer(ctx context.Context, query string) (string, error)
}

// Input Schema for input to a tool that answers questions grounded in an
// indexed document corpus.
type Input struct {
	schema.Base
	// Question free-text question to answer from the corpus.
	Question string `json:"question" jsonschema:"title=question,description=Free-text question to answer from the document corpus." validate:"required"`
}

func NewInput(question string) *Input {
	return &Input{
		Question: question,
	}
}

// Output Schema for the output of the RetrievalTool
type Output struct {
	schema.Base
	// Answer best-effort textual answer grounded in the corpus.
	Answer string `json:"answer" jsonschema:"title=answer,description=Answer grounded in the document corpus."`
}

func NewOutput(answer string) *Output {
	return &Output{
		Answer: answer,
	}
}

type Config struct {
	tools.Config
	engine Engine
}

// Tool delegates question answering to a retrieval engine. Ranking and
// embedding live in the engine, not here.
type Tool struct {
	Config
}

var (
	_ tools.Tool[Input, Output] = (*Tool)(nil)
	_ tools.AnonymousTool       = (*Tool)(nil)
)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("RetrievalTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("answers questions about the indexed document corpus")
	}
	return ret
}

// Run executes the RetrievalTool with the given question.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	if t.engine == nil {
		return nil, ErrNoEngine
	}
	answer, err := t.engine.ReturnAnswer(ctx, input.Question)
	if err != nil {
		return nil, err
	}
	return NewOutput(answer), nil
}

func (t *Tool) RunAnonymous(ctx context.Context, input any) (any, error) {
	params, err := tools.CoerceInput(input, func(text string) *Input {
		return NewInput(text)
	})
	if err != nil {
		return nil, err
	}
	return t.Run(ctx, params)
}
