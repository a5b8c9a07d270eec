package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/bububa/instructor-go/pkg/instructor"
	cohereClient "github.com/cohere-ai/cohere-go/v2/client"
	cohereOption "github.com/cohere-ai/cohere-go/v2/option"
	"github.com/go-playground/validator/v10"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"
	"gopkg.in/yaml.v3"
)

// Provider names accepted in configuration.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderCohere    = "cohere"
)

// DefaultMaxIterations bounds the orchestrator loop when the configuration
// leaves it unset.
const DefaultMaxIterations = 3

var validate = validator.New()

// Model configures the chat-completion client.
type Model struct {
	// Provider chat completion provider: openai, anthropic or cohere.
	Provider string `yaml:"provider" validate:"omitempty,oneof=openai anthropic cohere"`
	// APIKey provider credential.
	APIKey string `yaml:"api_key" validate:"required"`
	// BaseURL optional endpoint override.
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
	// Name model name, e.g. gpt-4o-mini.
	Name string `yaml:"name" validate:"required"`
	// Temperature sampling temperature, typically 0 to 1.
	Temperature float32 `yaml:"temperature" validate:"gte=0,lte=2"`
	// MaxTokens response token cap, 0 for the provider default.
	MaxTokens int `yaml:"max_tokens" validate:"gte=0"`
}

// Embedding configures the embedding client used for retrieval.
type Embedding struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
	// Name embedding model name, e.g. text-embedding-3-small.
	Name string `yaml:"name"`
}

// VectorDB configures the retrieval store.
type VectorDB struct {
	// Engine vector store engine: memory or chromem.
	Engine string `yaml:"engine" validate:"omitempty,oneof=memory chromem"`
	// Collection name of the document collection.
	Collection string  `yaml:"collection"`
	TopK       int     `yaml:"top_k" validate:"gte=0"`
	MinScore   float64 `yaml:"min_score" validate:"gte=0,lte=1"`
}

// Config is the explicit configuration object for the toolkit. Everything
// a component needs is carried here and passed down; nothing reads the
// environment at call time.
type Config struct {
	Model     Model     `yaml:"model"`
	Embedding Embedding `yaml:"embedding"`
	VectorDB  VectorDB  `yaml:"vectordb"`
	// MaxIterations orchestrator reasoning loop cap.
	MaxIterations int `yaml:"max_iterations" validate:"gte=0"`
}

// New returns a Config with defaults for everything but the credential.
func New() *Config {
	return &Config{
		Model: Model{
			Provider:    ProviderOpenAI,
			Name:        openai.GPT4oMini,
			Temperature: 0.5,
		},
		Embedding: Embedding{
			Name: string(openai.SmallEmbedding3),
		},
		VectorDB: VectorDB{
			Engine:     "memory",
			Collection: "documents",
			TopK:       3,
		},
		MaxIterations: DefaultMaxIterations,
	}
}

// Load reads a YAML config file, layers environment overrides on top, and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := New()
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(bs, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from defaults plus environment overrides only.
func FromEnv() (*Config, error) {
	cfg := New()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays provider credentials and endpoints from the
// environment. This is the single place the process environment is read.
func (c *Config) ApplyEnv() {
	prefix := strings.ToUpper(c.Model.Provider)
	if prefix == "" {
		prefix = "OPENAI"
	}
	if v := os.Getenv(prefix + "_API_KEY"); v != "" {
		c.Model.APIKey = v
	}
	if v := os.Getenv(prefix + "_API_BASE_URL"); v != "" {
		c.Model.BaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.Embedding.APIKey == "" {
		c.Embedding.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_BASE_URL"); v != "" && c.Embedding.BaseURL == "" {
		c.Embedding.BaseURL = v
	}
}

// Validate checks the configuration against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewInstructor builds the structured-output client for the configured
// provider.
func (c *Config) NewInstructor() (instructor.Instructor, error) {
	model := c.Model
	switch strings.ToLower(model.Provider) {
	case ProviderAnthropic:
		opts := make([]anthropic.ClientOption, 0, 1)
		if model.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(model.BaseURL))
		}
		clt := anthropic.NewClient(model.APIKey, opts...)
		return instructor.FromAnthropic(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(3), instructor.WithValidation()), nil
	case ProviderCohere:
		opts := make([]cohereOption.RequestOption, 0, 2)
		opts = append(opts, cohereOption.WithToken(model.APIKey))
		if model.BaseURL != "" {
			opts = append(opts, cohereOption.WithBaseURL(model.BaseURL))
		}
		clt := cohereClient.NewClient(opts...)
		return instructor.FromCohere(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(3), instructor.WithValidation()), nil
	case "", ProviderOpenAI:
		return instructor.FromOpenAI(c.NewOpenAIClient(), instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(3), instructor.WithValidation()), nil
	}
	return nil, fmt.Errorf("unknown provider %q", model.Provider)
}

// NewOpenAIClient builds the plain OpenAI client used by the QA tool and
// the embedder.
func (c *Config) NewOpenAIClient() *openai.Client {
	cfg := openai.DefaultConfig(c.Model.APIKey)
	if c.Model.BaseURL != "" {
		cfg.BaseURL = c.Model.BaseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// NewEmbeddingClient builds the OpenAI client for the embedding endpoint,
// falling back to the chat credential when no embedding credential is set.
func (c *Config) NewEmbeddingClient() *openai.Client {
	apiKey := c.Embedding.APIKey
	if apiKey == "" {
		apiKey = c.Model.APIKey
	}
	cfg := openai.DefaultConfig(apiKey)
	if c.Embedding.BaseURL != "" {
		cfg.BaseURL = c.Embedding.BaseURL
	}
	return openai.NewClientWithConfig(cfg)
}
