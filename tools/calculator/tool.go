package calculator

import (
	"context"

	"github.com/bububa/agent-toolkit/schema"
	"github.com/bububa/agent-toolkit/tools"
)

// Input Tool for performing calculations. Supports basic arithmetic
// operations like addition, subtraction, multiplication, division, and
// exponentiation over numeric literals and parentheses.
// Use this tool to evaluate mathematical expressions.
type Input struct {
	schema.Base
	// Expression Mathematical expression to evaluate. For example, '2 + 2'.
	Expression string `json:"expression" jsonschema:"title=expression,description=Mathematical expression to evaluate. For example, '2 + 2'." validate:"required"`
	// Params represents the expression's named parameters
	Params map[string]float64 `json:"params,omitempty" jsonschema:"title=params,description=Named numeric parameters for the expression."`
}

func NewInput(exp string, params map[string]float64) *Input {
	return &Input{
		Expression: exp,
		Params:     params,
	}
}

// Output Schema for the output of the CalculatorTool
type Output struct {
	schema.Base
	// Result Result of the calculation
	Result float64 `json:"result" jsonschema:"title=result,description=Result of the calculation."`
}

func NewOutput(result float64) *Output {
	return &Output{
		Result: result,
	}
}

type Tool struct {
	tools.Config
}

var (
	_ tools.Tool[Input, Output] = (*Tool)(nil)
	_ tools.AnonymousTool       = (*Tool)(nil)
)

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("CalculatorTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("evaluates arithmetic expressions with + - * / ^ and parentheses")
	}
	return ret
}

// Run executes the CalculatorTool with the given parameters.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	result, err := Evaluate(input.Expression, input.Params)
	if err != nil {
		return nil, err
	}
	return NewOutput(result), nil
}

func (t *Tool) RunAnonymous(ctx context.Context, input any) (any, error) {
	params, err := tools.CoerceInput(input, func(text string) *Input {
		return NewInput(text, nil)
	})
	if err != nil {
		return nil, err
	}
	return t.Run(ctx, params)
}
