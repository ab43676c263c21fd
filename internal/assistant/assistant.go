package assistant

import (
	"context"
	"fmt"

	"github.com/quantum5ocial/server/internal/llm"
	"github.com/quantum5ocial/server/internal/logger"
)

const (
	retrievalTopK      = 8
	retrievalThreshold = 0.2
	maxHistoryMessages = 20
)

// creates a new assistant
func New(ret Retriever, generator llm.TextGenerator) *Assistant {
	return &Assistant{
		retriever: ret,
		generator: generator,
	}
}

// answers one user message grounded on retrieved documents
//
// Retrieval failure degrades to the empty-context fallback rather than
// failing the chat: a broken index should read as "nothing found", not as an
// outage of the whole assistant.
func (a *Assistant) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Message == "" {
		return nil, fmt.Errorf("message is required")
	}

	docs, err := a.retriever.Search(ctx, req.Message, retrievalThreshold, retrievalTopK)
	if err != nil {
		logger.ErrorErr(err, "retrieval failed, answering without context")
		docs = nil
	}

	history := req.History
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	messages := make([]llm.Message, 0, len(history)+1)
	for _, msg := range history {
		if msg.Content != "" {
			messages = append(messages, msg)
		}
	}

	messages = append(messages, llm.Message{Role: "user", Content: req.Message})

	answer, err := a.generator.GenerateText(ctx, llm.TextGenerationRequest{
		System:   buildSystemPrompt(docs),
		Messages: messages,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to generate answer: %w", err)
	}

	return &ChatResponse{
		Answer:        answer,
		DocsRetrieved: len(docs),
		Model:         a.generator.Model(),
	}, nil
}
