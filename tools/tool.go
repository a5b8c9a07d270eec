package tools

import (
	"context"

	"github.com/bububa/agent-toolkit/schema"
)

type ITool interface {
	SetTitle(string)
	Title() string
	SetDescription(string)
	Description() string
	SetStartHook(fn func(context.Context, AnonymousTool, any))
	StartHook() func(context.Context, AnonymousTool, any)
	SetEndHook(fn func(context.Context, AnonymousTool, any, any))
	EndHook() func(context.Context, AnonymousTool, any, any)
	SetErrorHook(fn func(context.Context, AnonymousTool, any, error))
	ErrorHook() func(context.Context, AnonymousTool, any, error)
}

// Tool is a typed tool exposed to an agent.
type Tool[I schema.Schema, O schema.Schema] interface {
	ITool
	Run(context.Context, *I) (*O, error)
}

// AnonymousTool is a tool callable without compile-time knowledge of its
// input schema; the orchestrator dispatches planner arguments through it.
type AnonymousTool interface {
	ITool
	RunAnonymous(context.Context, any) (any, error)
}
