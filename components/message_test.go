package components

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"

	"github.com/bububa/agent-toolkit/schema"
)

func TestMessageMarshaler(t *testing.T) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	dec := json.NewDecoder(&buf)
	msg := NewMessage(UserRole, schema.NewString("test string schema"))
	if err := enc.Encode(msg); err != nil {
		t.Fatal(err)
	}
	var decodeMsg Message
	if err := dec.Decode(&decodeMsg); err != nil {
		t.Fatal(err)
	}
	if decodeMsg.StringifiedContent() != msg.StringifiedContent() {
		t.Errorf("string match error, expect:%s, got:%s", msg.StringifiedContent(), decodeMsg.StringifiedContent())
	}
	if decodeMsg.Role() != UserRole {
		t.Errorf("expect role %s, got %s", UserRole, decodeMsg.Role())
	}
}

func TestMessageToOpenAI(t *testing.T) {
	msg := NewMessage(SystemRole, schema.NewInput("hello"))
	var dist openai.ChatCompletionMessage
	msg.ToOpenAI(&dist)
	if dist.Role != SystemRole {
		t.Errorf("expect role %s, got %s", SystemRole, dist.Role)
	}
	want := `{"chat_message":"hello"}`
	if dist.Content != want {
		t.Errorf("expect content %s, got %s", want, dist.Content)
	}
}

func TestMessageToAnthropicWithFile(t *testing.T) {
	content := schema.NewInput("summarize the attachment")
	content.SetAttachement(&schema.Attachement{
		Files: []io.Reader{strings.NewReader("plain text attachment body")},
	})
	msg := NewMessage(UserRole, content)
	var dist anthropic.Message
	msg.ToAnthropic(&dist)
	if dist.Role != anthropic.ChatRole(UserRole) {
		t.Errorf("expect role %s, got %s", UserRole, dist.Role)
	}
	if len(dist.Content) != 2 {
		t.Fatalf("expect document + text contents, got %d", len(dist.Content))
	}
	doc := dist.Content[0]
	if doc.Type != anthropic.MessagesContentTypeDocument {
		t.Errorf("expect document content first, got %s", doc.Type)
	}
	text := dist.Content[1]
	if text.Type != anthropic.MessagesContentTypeText || text.GetText() != `{"chat_message":"summarize the attachment"}` {
		t.Errorf("text content lost: %+v", text)
	}
}
