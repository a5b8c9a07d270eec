package schema

// Input is the default chat input schema
type Input struct {
	Base
	// ChatMessage the message sent by the user
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The message sent by the user." validate:"required"`
}

// NewInput returns a new chat Input
func NewInput(msg string) *Input {
	return &Input{
		ChatMessage: msg,
	}
}

func (s Input) String() string {
	return s.ChatMessage
}

// Output is the default chat output schema
type Output struct {
	Base
	// ChatMessage the response message generated by the agent
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The response message generated by the agent." validate:"required"`
}

// NewOutput returns a new chat Output
func NewOutput(msg string) *Output {
	return &Output{
		ChatMessage: msg,
	}
}

func (s Output) String() string {
	return s.ChatMessage
}
