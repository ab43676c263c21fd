package indexer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/internal/llm"
	"github.com/quantum5ocial/server/social/jobs"
	"github.com/quantum5ocial/server/social/orgs"
	"github.com/quantum5ocial/server/social/products"
	"github.com/quantum5ocial/server/social/profiles"
	"github.com/quantum5ocial/server/social/questions"
)

// in-memory document store for pipeline tests
type fakeStore struct {
	docs      []docstore.SearchDocument
	insertErr map[string]error // link -> error to return on insert
}

func newFakeStore() *fakeStore {
	return &fakeStore{insertErr: make(map[string]error)}
}

func (s *fakeStore) Insert(_ context.Context, doc docstore.SearchDocument) error {
	if err := s.insertErr[doc.Metadata.Link]; err != nil {
		return err
	}

	s.docs = append(s.docs, doc)

	return nil
}

func (s *fakeStore) ExistsByLink(_ context.Context, link string) (bool, error) {
	for _, doc := range s.docs {
		if doc.Metadata.Link == link {
			return true, nil
		}
	}

	return false, nil
}

func (s *fakeStore) Match(_ context.Context, _ []float32, _ float32, _ int) ([]docstore.SearchDocument, error) {
	return nil, nil
}

func (s *fakeStore) IndexProvider(_ context.Context) (llm.Provider, error) {
	for _, doc := range s.docs {
		if doc.Metadata.Provider != "" {
			return doc.Metadata.Provider, nil
		}
	}

	return "", nil
}

func (s *fakeStore) Count(_ context.Context) (int, error) {
	return len(s.docs), nil
}

// deterministic embedder for pipeline tests
type fakeEmbedder struct {
	provider llm.Provider
	calls    int
	failOn   string // substring of text that triggers an error
}

func (e *fakeEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := e.GenerateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	return embeddings[0], nil
}

func (e *fakeEmbedder) GenerateEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	e.calls += len(texts)

	embeddings := make([][]float32, len(texts))

	for i, text := range texts {
		if e.failOn != "" && strings.Contains(text, e.failOn) {
			return nil, fmt.Errorf("embedding provider unavailable")
		}

		embeddings[i] = []float32{float32(len(text)), 1, 0}
	}

	return embeddings, nil
}

func (e *fakeEmbedder) Provider() llm.Provider {
	if e.provider != "" {
		return e.provider
	}

	return llm.ProviderOpenAI
}

func (e *fakeEmbedder) Dimensions() int { return 3 }

type fakeSources struct {
	jobs      []jobs.Job
	products  []products.Product
	orgs      []orgs.Organization
	profiles  []profiles.Profile
	questions []questions.Question
}

func (f *fakeSources) ListPublished(_ context.Context) ([]jobs.Job, error) { return f.jobs, nil }

func (f *fakeSources) ListAll(_ context.Context) ([]products.Product, error) {
	return f.products, nil
}

func (f *fakeSources) ListActive(_ context.Context) ([]orgs.Organization, error) {
	return f.orgs, nil
}

type fakeProfileSource struct{ profiles []profiles.Profile }

func (f *fakeProfileSource) ListAll(_ context.Context) ([]profiles.Profile, error) {
	return f.profiles, nil
}

type fakeQuestionSource struct{ questions []questions.Question }

func (f *fakeQuestionSource) ListAll(_ context.Context) ([]questions.Question, error) {
	return f.questions, nil
}

func pipelineFixture(store docstore.Store, embedder llm.Embedder, src *fakeSources) *Pipeline {
	return New(store, embedder, Sources{
		Jobs:      src,
		Products:  src,
		Orgs:      src,
		Profiles:  &fakeProfileSource{profiles: src.profiles},
		Questions: &fakeQuestionSource{questions: src.questions},
	})
}

// a second run over unchanged sources inserts nothing and skips everything
func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	embedder := &fakeEmbedder{}
	src := &fakeSources{
		jobs: []jobs.Job{{ID: "job-1", Title: "QA Engineer", OrgName: "Acme"}},
	}

	pipeline := pipelineFixture(store, embedder, src)

	first, err := pipeline.Run(ctx, []EntityType{docstore.TypeJob})
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	if first.Inserted != 1 || first.Skipped != 0 {
		t.Errorf("first run: expected inserted=1 skipped=0, got inserted=%d skipped=%d", first.Inserted, first.Skipped)
	}

	second, err := pipeline.Run(ctx, []EntityType{docstore.TypeJob})
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if second.Inserted != 0 || second.Skipped != 1 {
		t.Errorf("second run: expected inserted=0 skipped=1, got inserted=%d skipped=%d", second.Inserted, second.Skipped)
	}

	count, _ := store.Count(ctx)
	if count != 1 {
		t.Errorf("expected exactly 1 stored document, got %d", count)
	}
}

// one item's embedding failure must not abort the rest of the batch
func TestRunContinuesPastItemFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	embedder := &fakeEmbedder{failOn: "Broken"}
	src := &fakeSources{
		jobs: []jobs.Job{
			{ID: "job-1", Title: "Broken Posting", OrgName: "Acme"},
			{ID: "job-2", Title: "Control Engineer", OrgName: "Qubit Labs"},
		},
	}

	pipeline := pipelineFixture(store, embedder, src)

	summary, err := pipeline.Run(ctx, []EntityType{docstore.TypeJob})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if summary.Inserted != 1 {
		t.Errorf("expected 1 inserted, got %d", summary.Inserted)
	}

	if summary.Failed != 1 {
		t.Errorf("expected 1 failed, got %d", summary.Failed)
	}

	if len(summary.Errors) != 1 || summary.Errors[0].Link != "job-1" {
		t.Errorf("expected error recorded for job-1, got %+v", summary.Errors)
	}

	// re-running picks up only the previously failed item
	embedder.failOn = ""

	retry, err := pipeline.Run(ctx, []EntityType{docstore.TypeJob})
	if err != nil {
		t.Fatalf("retry run failed: %v", err)
	}

	if retry.Inserted != 1 || retry.Skipped != 1 {
		t.Errorf("retry: expected inserted=1 skipped=1, got inserted=%d skipped=%d", retry.Inserted, retry.Skipped)
	}
}

// store insert failures are recorded per item as well
func TestRunRecordsInsertFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.insertErr["prod-1"] = fmt.Errorf("connection reset")

	src := &fakeSources{
		products: []products.Product{
			{ID: "prod-1", Name: "Dilution Fridge", CompanyName: "ColdCo"},
			{ID: "prod-2", Name: "Laser Controller", CompanyName: "PhotonWorks"},
		},
	}

	pipeline := pipelineFixture(store, &fakeEmbedder{}, src)

	summary, err := pipeline.Run(ctx, []EntityType{docstore.TypeProduct})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if summary.Inserted != 1 || summary.Failed != 1 {
		t.Errorf("expected inserted=1 failed=1, got inserted=%d failed=%d", summary.Inserted, summary.Failed)
	}
}

// an index built with one provider refuses a pipeline configured with another
func TestRunRejectsProviderMismatch(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	src := &fakeSources{
		jobs: []jobs.Job{{ID: "job-1", Title: "QA Engineer", OrgName: "Acme"}},
	}

	first := pipelineFixture(store, &fakeEmbedder{provider: llm.ProviderOpenAI}, src)
	if _, err := first.Run(ctx, []EntityType{docstore.TypeJob}); err != nil {
		t.Fatalf("seed run failed: %v", err)
	}

	second := pipelineFixture(store, &fakeEmbedder{provider: llm.ProviderGemini}, src)

	_, err := second.Run(ctx, []EntityType{docstore.TypeJob})
	if err == nil {
		t.Fatal("expected provider mismatch error, got nil")
	}
}

// documents carry the typed metadata tag including the embedding provider
func TestRunTagsMetadata(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	src := &fakeSources{
		orgs: []orgs.Organization{{ID: "1", Slug: "acme-quantum", Name: "Acme Quantum"}},
	}

	pipeline := pipelineFixture(store, &fakeEmbedder{}, src)

	if _, err := pipeline.Run(ctx, []EntityType{docstore.TypeOrganization}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(store.docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(store.docs))
	}

	meta := store.docs[0].Metadata

	if meta.Type != docstore.TypeOrganization {
		t.Errorf("expected type organization, got %s", meta.Type)
	}

	// organizations link by slug, not row id
	if meta.Link != "acme-quantum" {
		t.Errorf("expected link acme-quantum, got %s", meta.Link)
	}

	if meta.Provider != llm.ProviderOpenAI {
		t.Errorf("expected provider tag openai, got %s", meta.Provider)
	}
}

// dry runs never touch the embedder or insert anything
func TestDryRun(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	src := &fakeSources{
		jobs: []jobs.Job{{ID: "job-1", Title: "QA Engineer", OrgName: "Acme"}},
	}

	pipeline := NewDryRun(store, Sources{
		Jobs:      src,
		Products:  src,
		Orgs:      src,
		Profiles:  &fakeProfileSource{},
		Questions: &fakeQuestionSource{},
	})

	summary, err := pipeline.Run(ctx, []EntityType{docstore.TypeJob})
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	if summary.Inserted != 1 {
		t.Errorf("expected 1 would-be insert, got %d", summary.Inserted)
	}

	count, _ := store.Count(ctx)
	if count != 0 {
		t.Errorf("dry run must not insert, store holds %d documents", count)
	}
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    int
		wantErr bool
	}{
		{name: "empty means all", input: nil, want: 0},
		{name: "valid types", input: []string{"job", "product"}, want: 2},
		{name: "duplicates collapse", input: []string{"job", "job"}, want: 1},
		{name: "unknown type", input: []string{"widget"}, wantErr: true},
		{name: "post is not indexable", input: []string{"post"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			types, err := ParseTypes(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(types) != tt.want {
				t.Errorf("expected %d types, got %d", tt.want, len(types))
			}
		})
	}
}
