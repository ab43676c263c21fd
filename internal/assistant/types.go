package assistant

import (
	"context"

	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/internal/llm"
)

// interface for grounding-document retrieval
type Retriever interface {
	Search(ctx context.Context, query string, threshold float32, topK int) ([]docstore.SearchDocument, error)
}

// answers user questions grounded on retrieved platform documents
type Assistant struct {
	retriever Retriever
	generator llm.TextGenerator
}

// inputs for one assistant turn
type ChatRequest struct {
	Message string
	History []llm.Message
}

// one assistant answer plus retrieval counts for observability
type ChatResponse struct {
	Answer        string `json:"answer"`
	DocsRetrieved int    `json:"docs_retrieved"`
	Model         string `json:"model"`
}
