package indexer

import (
	"context"
	"fmt"
	"slices"

	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/internal/llm"
	"github.com/quantum5ocial/server/internal/logger"
	"github.com/quantum5ocial/server/internal/metrics"
)

// creates a new indexing pipeline
func New(store docstore.Store, embedder llm.Embedder, sources Sources) *Pipeline {
	return &Pipeline{
		store:    store,
		embedder: embedder,
		sources:  sources,
	}
}

// creates a pipeline that renders and checks documents without embedding or
// inserting anything
func NewDryRun(store docstore.Store, sources Sources) *Pipeline {
	return &Pipeline{
		store:   store,
		sources: sources,
		dryRun:  true,
	}
}

// indexable entity types in the order a full run processes them
var allTypes = []EntityType{
	docstore.TypeJob,
	docstore.TypeProduct,
	docstore.TypeOrganization,
	docstore.TypeProfile,
	docstore.TypeQuestion,
}

// runs the pipeline for the given entity types (nil means all)
//
// The run is idempotent: entities whose link is already indexed are skipped,
// so re-running after a partial failure only attempts previously-failed or
// newly-published items. One item's failure never aborts the rest of its
// batch or the other entity types.
func (p *Pipeline) Run(ctx context.Context, types []EntityType) (Summary, error) {
	if len(types) == 0 {
		types = allTypes
	}

	for _, t := range types {
		if !t.Valid() || t == docstore.TypePost {
			return Summary{}, fmt.Errorf("cannot index entity type %q", t)
		}
	}

	if err := p.checkIndexProvider(ctx); err != nil {
		return Summary{}, err
	}

	var total Summary

	for _, t := range types {
		summary, err := p.runType(ctx, t)
		if err != nil {
			// a whole type failed to load; record it and keep going so the
			// other types still get indexed
			logger.ErrorErr(err, "failed to index entity type", "type", t)
			total.Failed++
			total.Errors = append(total.Errors, ItemError{Type: t, Err: err.Error()})

			continue
		}

		total.add(summary)
	}

	logger.Info("indexing run complete",
		"inserted", total.Inserted,
		"skipped", total.Skipped,
		"failed", total.Failed,
	)

	return total, nil
}

// refuses to extend an index built with a different embedding provider
// (mixing providers silently degrades similarity scores, so fail loudly)
func (p *Pipeline) checkIndexProvider(ctx context.Context) error {
	if p.dryRun {
		return nil
	}

	indexProvider, err := p.store.IndexProvider(ctx)
	if err != nil {
		return fmt.Errorf("failed to determine index provider: %w", err)
	}

	if indexProvider != "" && indexProvider != p.embedder.Provider() {
		return fmt.Errorf("index was built with provider %q but pipeline is configured with %q",
			indexProvider, p.embedder.Provider())
	}

	return nil
}

// fetches and renders one entity type, then indexes each item
func (p *Pipeline) runType(ctx context.Context, t EntityType) (Summary, error) {
	docs, err := p.render(ctx, t)
	if err != nil {
		return Summary{}, err
	}

	logger.Info("indexing entity type", "type", t, "candidates", len(docs))

	var summary Summary

	for _, doc := range docs {
		outcome, err := p.indexItem(ctx, doc)

		switch {
		case err != nil:
			summary.Failed++
			summary.Errors = append(summary.Errors, ItemError{Type: doc.Type, Link: doc.Link, Err: err.Error()})
			metrics.IndexedDocumentsTotal.WithLabelValues(string(doc.Type), "failed").Inc()
			logger.Warn("failed to index item", "type", doc.Type, "link", doc.Link, "error", err)
		case outcome == outcomeSkipped:
			summary.Skipped++
			metrics.IndexedDocumentsTotal.WithLabelValues(string(doc.Type), "skipped").Inc()
		default:
			summary.Inserted++
			metrics.IndexedDocumentsTotal.WithLabelValues(string(doc.Type), "inserted").Inc()
		}
	}

	return summary, nil
}

func (p *Pipeline) render(ctx context.Context, t EntityType) ([]renderedDocument, error) {
	switch t {
	case docstore.TypeJob:
		items, err := p.sources.Jobs.ListPublished(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list published jobs: %w", err)
		}

		return mapRender(items, renderJob), nil

	case docstore.TypeProduct:
		items, err := p.sources.Products.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}

		return mapRender(items, renderProduct), nil

	case docstore.TypeOrganization:
		items, err := p.sources.Orgs.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list active organizations: %w", err)
		}

		return mapRender(items, renderOrg), nil

	case docstore.TypeProfile:
		items, err := p.sources.Profiles.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list profiles: %w", err)
		}

		docs := make([]renderedDocument, 0, len(items))

		for _, item := range items {
			if doc, ok := renderProfile(item); ok {
				docs = append(docs, doc)
			}
		}

		return docs, nil

	case docstore.TypeQuestion:
		items, err := p.sources.Questions.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list questions: %w", err)
		}

		return mapRender(items, renderQuestion), nil

	default:
		return nil, fmt.Errorf("no source for entity type %q", t)
	}
}

type itemOutcome int

const (
	outcomeInserted itemOutcome = iota
	outcomeSkipped
)

// check-then-act for a single item: skip if the link is already indexed,
// otherwise embed and insert
//
// The check and the insert are not atomic; two concurrent runs can both see
// "absent" and double-insert the same link. Accepted race — the mitigation
// is a store-level unique constraint, not pipeline locking.
func (p *Pipeline) indexItem(ctx context.Context, doc renderedDocument) (itemOutcome, error) {
	exists, err := p.store.ExistsByLink(ctx, doc.Link)
	if err != nil {
		return 0, fmt.Errorf("existence check failed: %w", err)
	}

	if exists {
		return outcomeSkipped, nil
	}

	if p.dryRun {
		logger.Info("dry run: would index", "type", doc.Type, "link", doc.Link)
		return outcomeInserted, nil
	}

	embedding, err := p.embedder.GenerateEmbedding(ctx, doc.Content)
	if err != nil {
		return 0, fmt.Errorf("failed to generate embedding: %w", err)
	}

	err = p.store.Insert(ctx, docstore.SearchDocument{
		Content:   doc.Content,
		Embedding: embedding,
		Metadata: docstore.Metadata{
			Type:     doc.Type,
			Link:     doc.Link,
			Title:    doc.Title,
			Provider: p.embedder.Provider(),
		},
	})

	if err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}

	return outcomeInserted, nil
}

func mapRender[T any](items []T, render func(T) renderedDocument) []renderedDocument {
	docs := make([]renderedDocument, 0, len(items))

	for _, item := range items {
		docs = append(docs, render(item))
	}

	return docs
}

// parses entity type names from CLI/API input
func ParseTypes(names []string) ([]EntityType, error) {
	if len(names) == 0 {
		return nil, nil
	}

	types := make([]EntityType, 0, len(names))

	for _, name := range names {
		t := EntityType(name)

		if !t.Valid() || t == docstore.TypePost {
			return nil, fmt.Errorf("unknown entity type %q", name)
		}

		if !slices.Contains(types, t) {
			types = append(types, t)
		}
	}

	return types, nil
}
