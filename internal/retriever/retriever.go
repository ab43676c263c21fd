package retriever

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/internal/llm"
	"github.com/quantum5ocial/server/internal/metrics"
)

// returned when the query embedder and the stored index were built with
// different providers; their vector spaces are not comparable
var ErrProviderMismatch = errors.New("query embedding provider does not match index provider")

// performs similarity search over the document store
type Client struct {
	store    docstore.Store
	embedder llm.Embedder
}

// creates a new retrieval client
func New(store docstore.Store, embedder llm.Embedder) *Client {
	return &Client{
		store:    store,
		embedder: embedder,
	}
}

// embeds the query and returns documents above the similarity threshold,
// ordered by descending similarity, at most topK of them
func (c *Client) Search(ctx context.Context, query string, threshold float32, topK int) ([]docstore.SearchDocument, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	if err := c.checkProviderPairing(ctx); err != nil {
		metrics.RetrievalQueriesTotal.WithLabelValues("provider_mismatch").Inc()
		return nil, err
	}

	embedding, err := c.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		metrics.RetrievalQueriesTotal.WithLabelValues("embed_error").Inc()
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	results, err := c.store.Match(ctx, embedding, threshold, topK)
	if err != nil {
		metrics.RetrievalQueriesTotal.WithLabelValues("store_error").Inc()
		return nil, fmt.Errorf("failed to execute similarity search: %w", err)
	}

	metrics.RetrievalQueriesTotal.WithLabelValues("ok").Inc()
	metrics.RetrievalResultCount.Observe(float64(len(results)))

	return results, nil
}

// rejects queries against an index built with a different embedding provider
//
// An empty index ("" provider) matches any embedder.
func (c *Client) checkProviderPairing(ctx context.Context) error {
	indexProvider, err := c.store.IndexProvider(ctx)
	if err != nil {
		return fmt.Errorf("failed to determine index provider: %w", err)
	}

	if indexProvider != "" && indexProvider != c.embedder.Provider() {
		return fmt.Errorf("%w: index=%s query=%s", ErrProviderMismatch, indexProvider, c.embedder.Provider())
	}

	return nil
}
