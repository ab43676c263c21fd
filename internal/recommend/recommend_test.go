package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/social/profiles"
)

type fakeRetriever struct {
	docs      []docstore.SearchDocument
	err       error
	calls     int
	lastQuery string
}

func (f *fakeRetriever) Search(_ context.Context, query string, _ float32, _ int) ([]docstore.SearchDocument, error) {
	f.calls++
	f.lastQuery = query

	if f.err != nil {
		return nil, f.err
	}

	return f.docs, nil
}

func jobDoc(link string, similarity float32) docstore.SearchDocument {
	return docstore.SearchDocument{
		Similarity: similarity,
		Metadata:   docstore.Metadata{Type: docstore.TypeJob, Link: link},
	}
}

func TestRecommendJobsCapsResults(t *testing.T) {
	ret := &fakeRetriever{docs: []docstore.SearchDocument{
		jobDoc("job-1", 0.9),
		jobDoc("job-2", 0.8),
		jobDoc("job-3", 0.7),
		jobDoc("job-4", 0.6),
	}}

	rec := New(ret)

	ids, err := rec.RecommendJobs(context.Background(), profiles.Profile{Role: "Quantum Engineer"})
	require.NoError(t, err)

	assert.Equal(t, []string{"job-1", "job-2"}, ids)
}

func TestRecommendJobsFiltersNonJobs(t *testing.T) {
	ret := &fakeRetriever{docs: []docstore.SearchDocument{
		{Similarity: 0.95, Metadata: docstore.Metadata{Type: docstore.TypeProfile, Link: "p-1"}},
		{Similarity: 0.9, Metadata: docstore.Metadata{Type: docstore.TypeProduct, Link: "prod-1"}},
		jobDoc("job-1", 0.5),
	}}

	rec := New(ret)

	ids, err := rec.RecommendJobs(context.Background(), profiles.Profile{Role: "Quantum Engineer"})
	require.NoError(t, err)

	assert.Equal(t, []string{"job-1"}, ids)
}

func TestRecommendJobsDedupes(t *testing.T) {
	ret := &fakeRetriever{docs: []docstore.SearchDocument{
		jobDoc("job-1", 0.9),
		jobDoc("job-1", 0.8),
		jobDoc("job-2", 0.7),
	}}

	rec := New(ret)

	ids, err := rec.RecommendJobs(context.Background(), profiles.Profile{Role: "Quantum Engineer"})
	require.NoError(t, err)

	assert.Equal(t, []string{"job-1", "job-2"}, ids)
}

func TestRecommendJobsEmptyProfileShortCircuits(t *testing.T) {
	ret := &fakeRetriever{docs: []docstore.SearchDocument{jobDoc("job-1", 0.9)}}
	rec := New(ret)

	ids, err := rec.RecommendJobs(context.Background(), profiles.Profile{FullName: "Ada Qubit"})
	require.NoError(t, err)

	assert.Empty(t, ids)
	assert.Zero(t, ret.calls, "empty profile must not trigger retrieval")
}

func TestRecommendJobsPropagatesRetrievalError(t *testing.T) {
	ret := &fakeRetriever{err: errors.New("provider unavailable")}
	rec := New(ret)

	_, err := rec.RecommendJobs(context.Background(), profiles.Profile{Role: "Quantum Engineer"})
	require.Error(t, err)
}

func TestNewWithCap(t *testing.T) {
	ret := &fakeRetriever{docs: []docstore.SearchDocument{
		jobDoc("job-1", 0.9),
		jobDoc("job-2", 0.8),
		jobDoc("job-3", 0.7),
	}}

	rec := NewWithCap(ret, 3)

	ids, err := rec.RecommendJobs(context.Background(), profiles.Profile{Role: "Quantum Engineer"})
	require.NoError(t, err)
	assert.Len(t, ids, 3)

	// non-positive caps fall back to the default
	rec = NewWithCap(ret, 0)

	ids, err = rec.RecommendJobs(context.Background(), profiles.Profile{Role: "Quantum Engineer"})
	require.NoError(t, err)
	assert.Len(t, ids, DefaultMaxJobs)
}

func TestProfileText(t *testing.T) {
	tests := []struct {
		name    string
		profile profiles.Profile
		want    string
	}{
		{
			name: "all fields",
			profile: profiles.Profile{
				Role:     "Researcher",
				Skills:   "error correction",
				Focus:    "superconducting qubits",
				ShortBio: "Ten years in the lab.",
			},
			want: "Researcher error correction superconducting qubits Ten years in the lab.",
		},
		{
			name:    "empties dropped",
			profile: profiles.Profile{Role: "Researcher", Skills: "  "},
			want:    "Researcher",
		},
		{
			name:    "name alone is not embeddable",
			profile: profiles.Profile{FullName: "Ada Qubit"},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProfileText(tt.profile))
		})
	}
}
