package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()
	if cfg.Model.Provider != ProviderOpenAI {
		t.Errorf("provider = %q", cfg.Model.Provider)
	}
	if cfg.MaxIterations != DefaultMaxIterations {
		t.Errorf("max iterations = %d", cfg.MaxIterations)
	}
	if cfg.VectorDB.Engine != "memory" {
		t.Errorf("vectordb engine = %q", cfg.VectorDB.Engine)
	}
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.Model.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	cfg.Model.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing api key accepted")
	}
	cfg.Model.APIKey = "sk-test"
	cfg.Model.Provider = "bedrock"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider accepted")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `model:
  provider: openai
  api_key: sk-from-file
  name: gpt-4o-mini
  temperature: 0.2
vectordb:
  engine: chromem
  collection: faq
  top_k: 5
max_iterations: 4
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model.APIKey != "sk-from-file" {
		t.Errorf("api key = %q", cfg.Model.APIKey)
	}
	if cfg.Model.Temperature != 0.2 {
		t.Errorf("temperature = %v", cfg.Model.Temperature)
	}
	if cfg.VectorDB.Engine != "chromem" || cfg.VectorDB.TopK != 5 {
		t.Errorf("vectordb = %+v", cfg.VectorDB)
	}
	if cfg.MaxIterations != 4 {
		t.Errorf("max iterations = %d", cfg.MaxIterations)
	}
	// unset fields keep defaults
	if cfg.Embedding.Name == "" {
		t.Error("embedding model default lost")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	t.Setenv("OPENAI_API_BASE_URL", "https://proxy.example.com/v1")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model.APIKey != "sk-from-env" {
		t.Errorf("api key = %q", cfg.Model.APIKey)
	}
	if cfg.Model.BaseURL != "https://proxy.example.com/v1" {
		t.Errorf("base url = %q", cfg.Model.BaseURL)
	}
	if cfg.Embedding.APIKey != "sk-from-env" {
		t.Errorf("embedding api key = %q", cfg.Embedding.APIKey)
	}
}

func TestNewInstructorUnknownProvider(t *testing.T) {
	cfg := New()
	cfg.Model.Provider = "bedrock"
	if _, err := cfg.NewInstructor(); err == nil {
		t.Error("unknown provider accepted")
	}
}
