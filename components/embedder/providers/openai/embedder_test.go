package openai

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bububa/agent-toolkit/components/embedder"
)

func TestNewOptions(t *testing.T) {
	clt := openai.NewClient("sk-test")
	e := New(clt, embedder.WithModel(string(openai.SmallEmbedding3)))
	if e.Provider() != embedder.ProviderOpenAI {
		t.Errorf("provider = %q", e.Provider())
	}
	if e.Model() != string(openai.SmallEmbedding3) {
		t.Errorf("model = %q, must be carried into embedding requests", e.Model())
	}
}
