package qa

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bububa/agent-toolkit/schema"
	"github.com/bububa/agent-toolkit/tools"
)

// DefaultTemplate is the fixed prompt the tool fills with the question.
const DefaultTemplate = `Answer the following question factually and concisely.

Question: {question}

Answer:`

// QuestionPlaceholder is the substring of the template replaced by the
// question text.
const QuestionPlaceholder = "{question}"

// ErrNoClient is returned when the tool runs without a chat client.
var ErrNoClient = errors.New("qa: no chat client configured")

// ChatClient is the subset of the OpenAI client the tool calls. It exists
// so tests can stub the model endpoint.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Input Schema for input to a tool that answers a free-text question with
// a single model call.
type Input struct {
	schema.Base
	// Question free-text question to answer.
	Question string `json:"question" jsonschema:"title=question,description=Free-text question to answer." validate:"required"`
}

func NewInput(question string) *Input {
	return &Input{
		Question: question,
	}
}

// Output Schema for the output of the QATool
type Output struct {
	schema.Base
	// Answer raw model response text.
	Answer string `json:"answer" jsonschema:"title=answer,description=Raw model response text."`
}

func NewOutput(answer string) *Output {
	return &Output{
		Answer: answer,
	}
}

type Config struct {
	tools.Config
	client      ChatClient
	model       string
	temperature float32
	template    string
}

// Tool fills a fixed prompt template with the question, sends it to the
// chat client, and returns the raw response text. No retry, no validation
// of model output.
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
		ret.SetTitle("QATool")
	}
	if ret.Description() == "" {
		ret.SetDescription("answers a general-knowledge question with a single model call")
	}
	if ret.model == "" {
		ret.model = openai.GPT4oMini
	}
	if ret.template == "" {
		ret.template = DefaultTemplate
	}
	return ret
}

// Prompt returns the template filled with the question.
func (t *Tool) Prompt(question string) string {
	return strings.ReplaceAll(t.template, QuestionPlaceholder, question)
}

// Run executes the QATool with the given question.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	if t.client == nil {
		return nil, ErrNoClient
	}
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       t.model,
		Temperature: t.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: t.Prompt(input.Question),
			},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("qa: empty model response")
	}
	return NewOutput(resp.Choices[0].Message.Content), nil
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
