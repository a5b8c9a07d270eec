package agents

import (
	"context"
	"errors"
	"fmt"

	"github.com/bububa/agent-toolkit/components"
	"github.com/bububa/agent-toolkit/schema"
	"github.com/bububa/agent-toolkit/tools"
)

// DefaultMaxIterations bounds the reasoning loop of an Orchestrator.
const DefaultMaxIterations = 3

// ErrIterationLimit is returned when the loop exhausts its iteration budget
// without the planner finishing. The partial RunResult is still returned so
// callers can inspect the transcript.
var ErrIterationLimit = errors.New("iteration limit reached")

type PlanAction = string

const (
	// PlanActionAct asks the orchestrator to invoke a tool.
	PlanActionAct PlanAction = "act"
	// PlanActionFinish ends the run with the planner's answer.
	PlanActionFinish PlanAction = "finish"
)

// Plan is the structured decision the planner emits each iteration: either
// invoke a named tool with JSON arguments, or finish with a final answer.
type Plan struct {
	schema.Base
	// Action what to do next.
	Action PlanAction `json:"action" jsonschema:"title=action,enum=act,enum=finish,description=Either 'act' to invoke a tool or 'finish' to answer." validate:"required"`
	// Tool title of the tool to invoke when acting.
	Tool string `json:"tool,omitempty" jsonschema:"title=tool,description=Title of the tool to invoke. Required when action is 'act'."`
	// Arguments JSON object encoding the tool's input schema.
	Arguments string `json:"arguments,omitempty" jsonschema:"title=arguments,description=JSON object with the tool's input. Required when action is 'act'."`
	// Answer final answer for the user when finishing.
	Answer string `json:"answer,omitempty" jsonschema:"title=answer,description=Final answer. Required when action is 'finish'."`
}

// Step records one tool round trip of a run.
type Step struct {
	Call     components.ToolCall     `json:"call"`
	Callback components.ToolCallback `json:"callback"`
}

// RunResult is the outcome of one orchestrated query.
type RunResult struct {
	// Input the original user query.
	Input string `json:"input"`
	// Answer the final textual output.
	Answer string `json:"answer,omitempty"`
	// Steps the tool invocations made along the way.
	Steps []Step `json:"steps,omitempty"`
	// Usage accumulated model token usage across iterations.
	Usage components.ApiUsage `json:"usage"`
}

// Orchestrator runs a bounded reasoning loop over a planner agent and a
// tool registry: think, pick a tool, observe, repeat, capped at
// maxIterations. The registry is registered as a system prompt context
// provider so the planner sees the tool descriptions.
type Orchestrator struct {
	planner       TypeableAgent[schema.Input, Plan]
	registry      *tools.Registry
	maxIterations int
}

type OrchestratorOption func(*Orchestrator)

// WithMaxIterations overrides the iteration cap.
func WithMaxIterations(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

func NewOrchestrator(planner TypeableAgent[schema.Input, Plan], registry *tools.Registry, opts ...OrchestratorOption) *Orchestrator {
	ret := &Orchestrator{
		planner:       planner,
		registry:      registry,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.planner.RegisterSystemPromptContextProvider(ret.registry)
	return ret
}

// MaxIterations returns the iteration cap.
func (o *Orchestrator) MaxIterations() int {
	return o.maxIterations
}

// Run answers a single query. Each iteration the planner either finishes
// with an answer or names a tool; the tool's observation is fed back into
// the planner's memory before the next iteration. Tool failures are
// observations too, so the planner can recover or finish. When the cap is
// reached the partial result is returned alongside ErrIterationLimit.
func (o *Orchestrator) Run(ctx context.Context, query string) (*RunResult, error) {
	ret := &RunResult{Input: query}
	o.planner.ResetMemory()
	input := schema.NewInput(query)
	for i := 0; i < o.maxIterations; i++ {
		plan := new(Plan)
		apiResp := new(components.ApiResponse)
		if err := o.planner.Run(ctx, input, plan, apiResp); err != nil {
			return ret, err
		}
		input = nil
		ret.Usage.Merge(apiResp.Usage)
		if plan.Action == PlanActionFinish {
			ret.Answer = plan.Answer
			return ret, nil
		}
		if plan.Action != PlanActionAct {
			o.observe(components.NewToolCall(plan.Tool, plan.Arguments), ret,
				fmt.Sprintf("invalid action %q: respond with 'act' or 'finish'", plan.Action), true)
			continue
		}
		call := components.NewToolCall(plan.Tool, plan.Arguments)
		observation, err := o.registry.Execute(ctx, plan.Tool, plan.Arguments)
		if err != nil {
			o.observe(call, ret, err.Error(), true)
			continue
		}
		o.observe(call, ret, observation, false)
	}
	return ret, fmt.Errorf("%w after %d iterations", ErrIterationLimit, o.maxIterations)
}

// observe records the step and feeds the observation back to the planner.
func (o *Orchestrator) observe(call *components.ToolCall, ret *RunResult, content string, isError bool) {
	callback := components.ToolCallback{
		ID:      call.ID,
		Name:    call.Name,
		Content: content,
		IsError: isError,
	}
	ret.Steps = append(ret.Steps, Step{Call: *call, Callback: callback})
	label := "Observation"
	if isError {
		label = "Error"
	}
	o.planner.NewMessage(components.SystemRole,
		schema.String(fmt.Sprintf("%s from %s: %s", label, call.Name, content)))
}
