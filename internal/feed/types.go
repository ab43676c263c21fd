package feed

import (
	"context"

	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/social/profiles"
)

// interface for semantic candidate retrieval
type Retriever interface {
	Search(ctx context.Context, query string, threshold float32, topK int) ([]docstore.SearchDocument, error)
}

// interface for the social graph
type ConnectionSource interface {
	AcceptedPeers(ctx context.Context, userID string) ([]string, error)
}

// interface for recent posts by a set of authors
type PostSource interface {
	ListRecentByAuthors(ctx context.Context, authorIDs []string, limit int) ([]string, error)
}

// interface for profile lookup
type ProfileSource interface {
	GetByID(ctx context.Context, id string) (*profiles.Profile, error)
}

// composes a personalized feed from social and semantic candidates
type Composer struct {
	connections ConnectionSource
	posts       PostSource
	profiles    ProfileSource
	retriever   Retriever
}

// per-strategy counts for observability
type Meta struct {
	SocialCount   int `json:"social_count"`
	SemanticCount int `json:"semantic_count"`
}

// a composed feed: deduplicated post ids, social candidates first
type Result struct {
	PostIDs []string `json:"post_ids"`
	Meta    Meta     `json:"meta"`
}
