package llm

import (
	"fmt"

	"github.com/quantum5ocial/server/internal/config"
)

// creates the embedding provider selected by configuration
func NewEmbedder(cfg *config.Config) (Embedder, error) {
	switch Provider(cfg.EmbedderProvider) {
	case ProviderOpenAI:
		return NewOpenAIEmbedder(OpenAIConfig{
			APIKey: cfg.OpenAIKey,
		}), nil
	case ProviderGemini:
		return NewGeminiEmbedder(GeminiConfig{
			APIKey: cfg.GeminiKey,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported embedder provider: %s", cfg.EmbedderProvider)
	}
}

// creates the text generation provider
func NewGenerator(cfg *config.Config) (TextGenerator, error) {
	if cfg.AnthropicKey == "" {
		return nil, fmt.Errorf("anthropic API key is required for text generation")
	}

	return NewAnthropicGenerator(AnthropicConfig{
		APIKey: cfg.AnthropicKey,
	}), nil
}
