package config

// holds process-wide configuration loaded from the environment
type Config struct {
	DatabaseURL      string
	OpenAIKey        string
	AnthropicKey     string
	GeminiKey        string
	EmbedderProvider string // "openai" or "gemini"
	Environment      string
}

// CLI flags for indexer subcommands
type Flags struct {
	Types  []string
	DryRun bool
}
