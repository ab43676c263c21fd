package llm

import "context"

// identifies an embedding or generation provider
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

// generates embeddings from text
//
// Vectors from different providers live in different, non-comparable spaces.
// An index must be built and queried with the same provider; Provider() is the
// tag the document store and retriever use to enforce that pairing.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
	Provider() Provider
	Dimensions() int
}

// generates text completions grounded on a system prompt and conversation
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (string, error)
	Model() string
}

// a single conversation turn
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}

// inputs for a text generation call
type TextGenerationRequest struct {
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float32
}
