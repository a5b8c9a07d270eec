package components

import "github.com/rs/xid"

// ToolCall is one tool invocation requested by the planner.
type ToolCall struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// NewToolCall returns a ToolCall with a fresh ID.
func NewToolCall(name string, arguments string) *ToolCall {
	return &ToolCall{
		ID:        xid.New().String(),
		Name:      name,
		Arguments: arguments,
	}
}

// ToolCallback is the observed result of a tool invocation.
type ToolCallback struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Content string `json:"content,omitempty"`
	IsError bool   `json:"is_error,omitempty"`
}
