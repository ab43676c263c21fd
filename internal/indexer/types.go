package indexer

import (
	"context"

	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/internal/llm"
	"github.com/quantum5ocial/server/social/jobs"
	"github.com/quantum5ocial/server/social/orgs"
	"github.com/quantum5ocial/server/social/products"
	"github.com/quantum5ocial/server/social/profiles"
	"github.com/quantum5ocial/server/social/questions"
)

// source repositories the pipeline reads from (all read-only)

type JobSource interface {
	ListPublished(ctx context.Context) ([]jobs.Job, error)
}

type ProductSource interface {
	ListAll(ctx context.Context) ([]products.Product, error)
}

type OrgSource interface {
	ListActive(ctx context.Context) ([]orgs.Organization, error)
}

type ProfileSource interface {
	ListAll(ctx context.Context) ([]profiles.Profile, error)
}

type QuestionSource interface {
	ListAll(ctx context.Context) ([]questions.Question, error)
}

// bundles the source repositories for one indexing run
type Sources struct {
	Jobs      JobSource
	Products  ProductSource
	Orgs      OrgSource
	Profiles  ProfileSource
	Questions QuestionSource
}

// converts publishable source entities into search documents, idempotently
type Pipeline struct {
	store    docstore.Store
	embedder llm.Embedder
	sources  Sources
	dryRun   bool
}

// one failed item within a run; the batch continues past it
type ItemError struct {
	Type EntityType `json:"type"`
	Link string     `json:"link"`
	Err  string     `json:"error"`
}

// alias so callers don't need both packages for the common case
type EntityType = docstore.EntityType

// per-run outcome counts
type Summary struct {
	Inserted int         `json:"inserted"`
	Skipped  int         `json:"skipped"`
	Failed   int         `json:"failed"`
	Errors   []ItemError `json:"errors,omitempty"`
}

// merges another summary into this one
func (s *Summary) add(other Summary) {
	s.Inserted += other.Inserted
	s.Skipped += other.Skipped
	s.Failed += other.Failed
	s.Errors = append(s.Errors, other.Errors...)
}

// a rendered source entity ready for the embed-and-insert step
type renderedDocument struct {
	Type    EntityType
	Link    string
	Title   string
	Content string
}
