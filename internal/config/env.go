package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have a .env file
	}

	dbURL := os.Getenv("SUPABASE_CONNECTION_STRING")
	openaiKey := os.Getenv("OPENAI_API_KEY")
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	embedderProvider := os.Getenv("EMBEDDER_PROVIDER")
	environment := os.Getenv("ENVIRONMENT")

	if dbURL == "" {
		return nil, fmt.Errorf("SUPABASE_CONNECTION_STRING environment variable is required")
	}

	if anthropicKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	if embedderProvider == "" {
		embedderProvider = "openai"
	}

	// only the configured embedding provider needs a key
	switch embedderProvider {
	case "openai":
		if openaiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required when EMBEDDER_PROVIDER=openai")
		}
	case "gemini":
		if geminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required when EMBEDDER_PROVIDER=gemini")
		}
	default:
		return nil, fmt.Errorf("unsupported EMBEDDER_PROVIDER: %s", embedderProvider)
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		DatabaseURL:      dbURL,
		OpenAIKey:        openaiKey,
		AnthropicKey:     anthropicKey,
		GeminiKey:        geminiKey,
		EmbedderProvider: embedderProvider,
		Environment:      environment,
	}, nil
}
