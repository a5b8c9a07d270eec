package lookup

import (
	"context"

	"github.com/bububa/agent-toolkit/schema"
	"github.com/bububa/agent-toolkit/tools"
)

const (
	// DefaultCoolName is the single name the toy lookup matches.
	DefaultCoolName = "Alex"
	// CoolAnswer is returned on an exact name match.
	CoolAnswer = "is cool"
	// NotCoolAnswer is returned for every other name.
	NotCoolAnswer = "not cool"
)

// Input Schema for input to a toy tool that looks up whether a person is cool.
type Input struct {
	schema.Base
	// Name the name of the person to look up.
	Name string `json:"name" jsonschema:"title=name,description=Name of the person to look up." validate:"required"`
}

func NewInput(name string) *Input {
	return &Input{
		Name: name,
	}
}

// Output Schema for the output of the WhoIsCoolTool
type Output struct {
	schema.Base
	// Answer one of two fixed verdict strings.
	Answer string `json:"answer" jsonschema:"title=answer,description=Verdict for the name."`
}

func NewOutput(answer string) *Output {
	return &Output{
		Answer: answer,
	}
}

type Config struct {
	tools.Config
	coolName string
}

// Tool answers whether a person is cool by exact-matching one configured
// name. Purely illustrative.
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
		ret.SetTitle("WhoIsCoolTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("answers whether a named person is cool")
	}
	if ret.coolName == "" {
		ret.coolName = DefaultCoolName
	}
	return ret
}

// Run executes the lookup with the given name.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	if input.Name == t.coolName {
		return NewOutput(CoolAnswer), nil
	}
	return NewOutput(NotCoolAnswer), nil
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
