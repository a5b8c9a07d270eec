package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/atomic"

	"github.com/bububa/agent-toolkit/components/systemprompt"
	"github.com/bububa/agent-toolkit/schema"
)

// ErrUnknownTool is returned when dispatch names a tool the registry does
// not hold.
var ErrUnknownTool = errors.New("unknown tool")

// Registry holds an ordered collection of tool descriptors. Registration
// happens at startup; lookups and dispatch are safe for concurrent use.
// It implements systemprompt.ContextProvider so a planner agent can list
// the available tools in its system prompt.
type Registry struct {
	tools []AnonymousTool
	hits  map[string]*atomic.Int64
	mtx   sync.RWMutex
}

var _ systemprompt.ContextProvider = (*Registry)(nil)

// NewRegistry returns a Registry holding the given tools in order.
func NewRegistry(list ...AnonymousTool) *Registry {
	ret := &Registry{
		hits: make(map[string]*atomic.Int64, len(list)),
	}
	ret.Register(list...)
	return ret
}

// Register appends tools to the registry, keeping registration order.
// A tool whose title is already registered is skipped.
func (r *Registry) Register(list ...AnonymousTool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for _, tool := range list {
		key := strings.ToLower(tool.Title())
		if _, found := r.hits[key]; found {
			continue
		}
		r.tools = append(r.tools, tool)
		r.hits[key] = atomic.NewInt64(0)
	}
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []AnonymousTool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	ret := make([]AnonymousTool, len(r.tools))
	copy(ret, r.tools)
	return ret
}

// Lookup finds a tool by title, case-insensitively.
func (r *Registry) Lookup(name string) (AnonymousTool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	key := strings.ToLower(strings.TrimSpace(name))
	for _, tool := range r.tools {
		if strings.ToLower(tool.Title()) == key {
			return tool, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
}

// Hits returns how many times the named tool has been executed.
func (r *Registry) Hits(name string) int64 {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	if counter, found := r.hits[strings.ToLower(strings.TrimSpace(name))]; found {
		return counter.Load()
	}
	return 0
}

// Execute dispatches the input to the named tool and returns its observation
// rendered as text. Tool hooks fire around the invocation.
func (r *Registry) Execute(ctx context.Context, name string, input any) (string, error) {
	tool, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	r.mtx.RLock()
	counter := r.hits[strings.ToLower(tool.Title())]
	r.mtx.RUnlock()
	counter.Inc()
	if fn := tool.StartHook(); fn != nil {
		fn(ctx, tool, input)
	}
	out, err := tool.RunAnonymous(ctx, input)
	if err != nil {
		if fn := tool.ErrorHook(); fn != nil {
			fn(ctx, tool, input, err)
		}
		return "", err
	}
	if fn := tool.EndHook(); fn != nil {
		fn(ctx, tool, input, out)
	}
	return stringifyObservation(out), nil
}

// Title implements systemprompt.ContextProvider
func (r *Registry) Title() string {
	return "Available Tools"
}

// Info implements systemprompt.ContextProvider
func (r *Registry) Info() string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	lines := make([]string, 0, len(r.tools))
	for _, tool := range r.tools {
		lines = append(lines, fmt.Sprintf("- %s: %s", tool.Title(), tool.Description()))
	}
	return strings.Join(lines, "\n")
}

func stringifyObservation(out any) string {
	switch v := out.(type) {
	case nil:
		return ""
	case string:
		return v
	case schema.Schema:
		return schema.Stringify(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
