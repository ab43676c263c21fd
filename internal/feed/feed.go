package feed

import (
	"context"
	"sync"

	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/internal/logger"
	"github.com/quantum5ocial/server/internal/recommend"
	"github.com/quantum5ocial/server/internal/retriever"
)

const (
	socialLimit       = 20
	semanticLimit     = 40
	semanticThreshold = 0.15
)

// creates a new feed composer
func New(connections ConnectionSource, posts PostSource, profileRepo ProfileSource, ret Retriever) *Composer {
	return &Composer{
		connections: connections,
		posts:       posts,
		profiles:    profileRepo,
		retriever:   ret,
	}
}

// builds a personalized feed for the given user
//
// Two candidate strategies run concurrently: social (recent posts by accepted
// connections) and semantic (retrieval over the profile text, filtered to
// posts). The result is their set union, social candidates first. Either
// strategy failing degrades that strategy to empty rather than failing the
// feed.
func (c *Composer) Compose(ctx context.Context, userID string) (*Result, error) {
	// personalization requires identity; anonymous fallbacks are the caller's
	// concern
	if userID == "" {
		return &Result{PostIDs: []string{}}, nil
	}

	var socialIDs, semanticIDs []string
	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		ids, err := c.socialCandidates(ctx, userID)
		if err != nil {
			logger.ErrorErr(err, "social feed strategy failed", "user_id", userID)
			return
		}

		socialIDs = ids
	}()

	go func() {
		defer wg.Done()

		ids, err := c.semanticCandidates(ctx, userID)
		if err != nil {
			logger.ErrorErr(err, "semantic feed strategy failed", "user_id", userID)
			return
		}

		semanticIDs = ids
	}()

	wg.Wait()

	merged := make([]string, 0, len(socialIDs)+len(semanticIDs))
	seen := make(map[string]bool, len(socialIDs)+len(semanticIDs))

	for _, id := range socialIDs {
		if !seen[id] {
			seen[id] = true
			merged = append(merged, id)
		}
	}

	for _, id := range semanticIDs {
		if !seen[id] {
			seen[id] = true
			merged = append(merged, id)
		}
	}

	return &Result{
		PostIDs: merged,
		Meta: Meta{
			SocialCount:   len(socialIDs),
			SemanticCount: len(semanticIDs),
		},
	}, nil
}

// posts authored by the user's accepted connections, newest first
func (c *Composer) socialCandidates(ctx context.Context, userID string) ([]string, error) {
	peers, err := c.connections.AcceptedPeers(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(peers) == 0 {
		return nil, nil
	}

	return c.posts.ListRecentByAuthors(ctx, peers, socialLimit)
}

// posts semantically close to the user's profile text
func (c *Composer) semanticCandidates(ctx context.Context, userID string) ([]string, error) {
	profile, err := c.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	query := recommend.ProfileText(*profile)
	if query == "" {
		return nil, nil
	}

	docs, err := c.retriever.Search(ctx, query, semanticThreshold, semanticLimit)
	if err != nil {
		return nil, err
	}

	docs = retriever.DedupeByLink(retriever.FilterByType(docs, docstore.TypePost))

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.Metadata.Link)
	}

	return ids, nil
}
