package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/internal/retriever"
	"github.com/quantum5ocial/server/social/profiles"
)

// interface for candidate retrieval
type Retriever interface {
	Search(ctx context.Context, query string, threshold float32, topK int) ([]docstore.SearchDocument, error)
}

const (
	// low threshold favors recall; the type filter below does the precision work
	candidateThreshold = 0.1
	candidateTopK      = 50

	// DefaultMaxJobs caps how many recommendations one profile gets
	DefaultMaxJobs = 2
)

// recommends job postings matching a user profile
type Recommender struct {
	retriever Retriever
	maxJobs   int
}

// creates a recommender with the default recommendation cap
func New(ret Retriever) *Recommender {
	return NewWithCap(ret, DefaultMaxJobs)
}

// creates a recommender with an explicit recommendation cap
func NewWithCap(ret Retriever, maxJobs int) *Recommender {
	if maxJobs <= 0 {
		maxJobs = DefaultMaxJobs
	}

	return &Recommender{
		retriever: ret,
		maxJobs:   maxJobs,
	}
}

// returns up to maxJobs job posting ids relevant to the profile
//
// A profile with no embeddable text short-circuits to an empty result before
// any provider call is made.
func (r *Recommender) RecommendJobs(ctx context.Context, profile profiles.Profile) ([]string, error) {
	query := ProfileText(profile)
	if query == "" {
		return nil, nil
	}

	docs, err := r.retriever.Search(ctx, query, candidateThreshold, candidateTopK)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve job candidates: %w", err)
	}

	docs = retriever.DedupeByLink(retriever.FilterByType(docs, docstore.TypeJob))

	ids := make([]string, 0, r.maxJobs)

	for _, doc := range docs {
		if len(ids) == r.maxJobs {
			break
		}

		ids = append(ids, doc.Metadata.Link)
	}

	return ids, nil
}

// ProfileText renders the profile fields used as the semantic query:
// role, skills, focus, and bio, space-joined with empties dropped.
func ProfileText(profile profiles.Profile) string {
	parts := make([]string, 0, 4)

	for _, field := range []string{profile.Role, profile.Skills, profile.Focus, profile.ShortBio} {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, " ")
}
