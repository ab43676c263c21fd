package docstore

import (
	"context"

	"github.com/quantum5ocial/server/internal/llm"
)

// identifies the kind of source entity a document was built from
type EntityType string

const (
	TypeJob          EntityType = "job"
	TypeProduct      EntityType = "product"
	TypeOrganization EntityType = "organization"
	TypeProfile      EntityType = "profile"
	TypeQuestion     EntityType = "question"
	TypePost         EntityType = "post"
)

// reports whether t is one of the known entity types
func (t EntityType) Valid() bool {
	switch t {
	case TypeJob, TypeProduct, TypeOrganization, TypeProfile, TypeQuestion, TypePost:
		return true
	}

	return false
}

// tagged metadata stored alongside each document
//
// Link is the stable source identifier (primary key, or slug for
// organizations) and doubles as the dedup key: at most one document exists
// per (Type, Link) pair. Provider records which embedding provider produced
// the document's vector, so queries can refuse to search with a mismatched
// provider.
type Metadata struct {
	Type     EntityType   `json:"type"`
	Link     string       `json:"link"`
	Title    string       `json:"title,omitempty"`
	Provider llm.Provider `json:"provider,omitempty"`
}

// one embedded-and-stored representation of a source entity
type SearchDocument struct {
	ID         string
	Content    string
	Embedding  []float32
	Metadata   Metadata
	Similarity float32 // populated only on retrieval
}

// the document store operations the pipeline and retriever depend on
type Store interface {
	Insert(ctx context.Context, doc SearchDocument) error
	ExistsByLink(ctx context.Context, link string) (bool, error)
	Match(ctx context.Context, embedding []float32, threshold float32, count int) ([]SearchDocument, error)
	IndexProvider(ctx context.Context) (llm.Provider, error)
	Count(ctx context.Context) (int, error)
}
