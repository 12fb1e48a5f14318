package llm

import (
	"context"
	"os"

	"github.com/ppiankov/bibfact/internal/model"
)

// Provider defines the interface for probe LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Answer asks the model one bibliographic question and returns its
	// free-text answer verbatim. Scoring happens later against ground
	// truth; nothing here judges the answer.
	Answer(ctx context.Context, req AnswerRequest) (*AnswerResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// AnswerRequest contains one probe question
type AnswerRequest struct {
	// Prompt is the task parameter text, asked as-is
	Prompt string

	// Model overrides the configured model for this request
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// AnswerResponse contains the model's raw answer
type AnswerResponse struct {
	// Answer is the trimmed answer text
	Answer string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds probe provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI-compatible endpoints
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 500,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config, filling the API
// key from the environment when the config file leaves it empty.
func ConfigFromModel(cfg model.LLMConfig) Config {
	out := Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
	if out.APIKey == "" {
		out.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return out
}
