package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/quantum5ocial/server/internal/llm"
)

// pgx-backed document store over the search_documents table
type Client struct {
	pool *pgxpool.Pool
}

// creates a document store client from an existing connection pool
func NewClient(pool *pgxpool.Pool) *Client {
	return &Client{pool: pool}
}

// inserts a single document with its embedding
//
// Callers are expected to run ExistsByLink first; this is a check-then-act
// protocol, not an atomic upsert, so two concurrent indexing runs can both
// pass the check and double-insert the same link. The recommended hardening
// is a store-level unique index on (metadata->>'type', metadata->>'link')
// with ON CONFLICT DO NOTHING.
func (c *Client) Insert(ctx context.Context, doc SearchDocument) error {
	metadataJSON, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = c.pool.Exec(ctx,
		insertDocumentQuery,
		doc.Content,
		pgvector.NewVector(doc.Embedding),
		string(metadataJSON),
	)

	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	return nil
}

// reports whether a document with the given link is already indexed
func (c *Client) ExistsByLink(ctx context.Context, link string) (bool, error) {
	var exists bool

	err := c.pool.QueryRow(ctx, existsByLinkQuery, link).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check document existence: %w", err)
	}

	return exists, nil
}

// runs the match_documents similarity search procedure
//
// Rows come back ordered by descending similarity; only rows at or above
// threshold are returned, at most count of them.
func (c *Client) Match(ctx context.Context, embedding []float32, threshold float32, count int) ([]SearchDocument, error) {
	rows, err := c.pool.Query(ctx, matchDocumentsQuery, pgvector.NewVector(embedding), threshold, count)
	if err != nil {
		return nil, fmt.Errorf("failed to execute match query: %w", err)
	}
	defer rows.Close()

	var results []SearchDocument

	for rows.Next() {
		var doc SearchDocument
		var metadataJSON []byte

		err := rows.Scan(
			&doc.ID,
			&doc.Content,
			&metadataJSON,
			&doc.Similarity,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &doc.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
			}
		}

		results = append(results, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}

// returns the embedding provider the stored corpus was built with
//
// Returns "" for an empty index and an error if the index holds documents
// from more than one provider (a corrupted state worth surfacing loudly).
func (c *Client) IndexProvider(ctx context.Context) (llm.Provider, error) {
	rows, err := c.pool.Query(ctx, indexProviderQuery)
	if err != nil {
		return "", fmt.Errorf("failed to query index provider: %w", err)
	}
	defer rows.Close()

	var providers []string

	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return "", fmt.Errorf("failed to scan provider: %w", err)
		}

		providers = append(providers, p)
	}

	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("error iterating rows: %w", err)
	}

	switch len(providers) {
	case 0:
		return "", nil
	case 1:
		return llm.Provider(providers[0]), nil
	default:
		return "", fmt.Errorf("index contains documents from %d different providers: %v", len(providers), providers)
	}
}

// returns the total number of indexed documents
func (c *Client) Count(ctx context.Context) (int, error) {
	var count int

	err := c.pool.QueryRow(ctx, countDocumentsQuery).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get document count: %w", err)
	}

	return count, nil
}
