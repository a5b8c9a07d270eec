package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/bububa/agent-toolkit/components"
	"github.com/bububa/agent-toolkit/components/systemprompt"
	"github.com/bububa/agent-toolkit/schema"
	"github.com/bububa/agent-toolkit/tools"
	"github.com/bububa/agent-toolkit/tools/calculator"
	"github.com/bububa/agent-toolkit/tools/lookup"
)

// scriptedPlanner replays a fixed sequence of plans and records what the
// orchestrator feeds back.
type scriptedPlanner struct {
	plans        []Plan
	idx          int
	observations []string
	providers    []systemprompt.ContextProvider
	resets       int
}

func (p *scriptedPlanner) Name() string { return "scripted" }

func (p *scriptedPlanner) Run(_ context.Context, _ *schema.Input, output *Plan, apiResp *components.ApiResponse) error {
	if p.idx >= len(p.plans) {
		return errors.New("script exhausted")
	}
	*output = p.plans[p.idx]
	p.idx++
	if apiResp != nil {
		apiResp.Usage = &components.ApiUsage{InputTokens: 10, OutputTokens: 5}
	}
	return nil
}

func (p *scriptedPlanner) NewMessage(role components.MessageRole, content schema.Schema) *components.Message {
	p.observations = append(p.observations, schema.Stringify(content))
	return components.NewMessage(role, content)
}

func (p *scriptedPlanner) RegisterSystemPromptContextProvider(provider systemprompt.ContextProvider) {
	p.providers = append(p.providers, provider)
}

func (p *scriptedPlanner) ResetMemory() { p.resets++ }

func newTestRegistry() *tools.Registry {
	return tools.NewRegistry(calculator.New(), lookup.New())
}

func TestOrchestratorFinishFirstIteration(t *testing.T) {
	planner := &scriptedPlanner{plans: []Plan{
		{Action: PlanActionFinish, Answer: "hello"},
	}}
	o := NewOrchestrator(planner, newTestRegistry())
	ret, err := o.Run(context.Background(), "say hello")
	if err != nil {
		t.Fatal(err)
	}
	if ret.Answer != "hello" {
		t.Errorf("answer = %q", ret.Answer)
	}
	if len(ret.Steps) != 0 {
		t.Errorf("expected no steps, got %d", len(ret.Steps))
	}
	if planner.resets != 1 {
		t.Errorf("resets = %d", planner.resets)
	}
	if len(planner.providers) != 1 {
		t.Fatalf("registry not registered as context provider")
	}
	if planner.providers[0].Title() != "Available Tools" {
		t.Errorf("provider title = %q", planner.providers[0].Title())
	}
}

func TestOrchestratorToolRoundTrip(t *testing.T) {
	planner := &scriptedPlanner{plans: []Plan{
		{Action: PlanActionAct, Tool: "CalculatorTool", Arguments: `{"expression": "2^3"}`},
		{Action: PlanActionFinish, Answer: "the result is 8"},
	}}
	o := NewOrchestrator(planner, newTestRegistry())
	ret, err := o.Run(context.Background(), "what is 2^3?")
	if err != nil {
		t.Fatal(err)
	}
	if ret.Answer != "the result is 8" {
		t.Errorf("answer = %q", ret.Answer)
	}
	if len(ret.Steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(ret.Steps))
	}
	step := ret.Steps[0]
	if step.Call.Name != "CalculatorTool" {
		t.Errorf("call name = %q", step.Call.Name)
	}
	if step.Callback.IsError {
		t.Errorf("unexpected tool error: %s", step.Callback.Content)
	}
	if len(planner.observations) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(planner.observations))
	}
	if ret.Usage.InputTokens != 20 || ret.Usage.OutputTokens != 10 {
		t.Errorf("usage not accumulated: %+v", ret.Usage)
	}
}

func TestOrchestratorUnknownToolObserved(t *testing.T) {
	planner := &scriptedPlanner{plans: []Plan{
		{Action: PlanActionAct, Tool: "NoSuchTool", Arguments: `{}`},
		{Action: PlanActionFinish, Answer: "giving up"},
	}}
	o := NewOrchestrator(planner, newTestRegistry())
	ret, err := o.Run(context.Background(), "use a missing tool")
	if err != nil {
		t.Fatal(err)
	}
	if len(ret.Steps) != 1 || !ret.Steps[0].Callback.IsError {
		t.Fatalf("expected one error step, got %+v", ret.Steps)
	}
	if ret.Answer != "giving up" {
		t.Errorf("answer = %q", ret.Answer)
	}
}

func TestOrchestratorIterationLimit(t *testing.T) {
	planner := &scriptedPlanner{plans: []Plan{
		{Action: PlanActionAct, Tool: "WhoIsCoolTool", Arguments: `{"name": "Alex"}`},
		{Action: PlanActionAct, Tool: "WhoIsCoolTool", Arguments: `{"name": "Bob"}`},
		{Action: PlanActionAct, Tool: "WhoIsCoolTool", Arguments: `{"name": "Carol"}`},
		{Action: PlanActionFinish, Answer: "never reached"},
	}}
	o := NewOrchestrator(planner, newTestRegistry())
	ret, err := o.Run(context.Background(), "who is cool?")
	if !errors.Is(err, ErrIterationLimit) {
		t.Fatalf("expected ErrIterationLimit, got %v", err)
	}
	if ret == nil {
		t.Fatal("partial result must be returned on exhaustion")
	}
	if len(ret.Steps) != DefaultMaxIterations {
		t.Errorf("expected %d steps, got %d", DefaultMaxIterations, len(ret.Steps))
	}
	if ret.Answer != "" {
		t.Errorf("answer = %q", ret.Answer)
	}
}

func TestOrchestratorWithMaxIterations(t *testing.T) {
	planner := &scriptedPlanner{plans: []Plan{
		{Action: PlanActionAct, Tool: "WhoIsCoolTool", Arguments: `{"name": "Alex"}`},
		{Action: PlanActionAct, Tool: "WhoIsCoolTool", Arguments: `{"name": "Bob"}`},
		{Action: PlanActionFinish, Answer: "done"},
	}}
	o := NewOrchestrator(planner, newTestRegistry(), WithMaxIterations(5))
	if o.MaxIterations() != 5 {
		t.Fatalf("cap = %d", o.MaxIterations())
	}
	ret, err := o.Run(context.Background(), "who is cool?")
	if err != nil {
		t.Fatal(err)
	}
	if ret.Answer != "done" || len(ret.Steps) != 2 {
		t.Errorf("got %+v", ret)
	}
}

func TestOrchestratorPlannerError(t *testing.T) {
	planner := &scriptedPlanner{}
	o := NewOrchestrator(planner, newTestRegistry())
	if _, err := o.Run(context.Background(), "anything"); err == nil {
		t.Fatal("expected planner error")
	}
}

func TestOrchestratorInvalidAction(t *testing.T) {
	planner := &scriptedPlanner{plans: []Plan{
		{Action: "ponder"},
		{Action: PlanActionFinish, Answer: "recovered"},
	}}
	o := NewOrchestrator(planner, newTestRegistry())
	ret, err := o.Run(context.Background(), "anything")
	if err != nil {
		t.Fatal(err)
	}
	if ret.Answer != "recovered" {
		t.Errorf("answer = %q", ret.Answer)
	}
	if len(ret.Steps) != 1 || !ret.Steps[0].Callback.IsError {
		t.Errorf("invalid action must surface as an error step: %+v", ret.Steps)
	}
}
