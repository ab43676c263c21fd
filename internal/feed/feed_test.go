package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/social/profiles"
)

type fakeConnections struct {
	peers []string
	err   error
}

func (f *fakeConnections) AcceptedPeers(_ context.Context, _ string) ([]string, error) {
	return f.peers, f.err
}

type fakePosts struct {
	ids   []string
	err   error
	calls int
}

func (f *fakePosts) ListRecentByAuthors(_ context.Context, _ []string, _ int) ([]string, error) {
	f.calls++
	return f.ids, f.err
}

type fakeProfiles struct {
	profile *profiles.Profile
	err     error
}

func (f *fakeProfiles) GetByID(_ context.Context, _ string) (*profiles.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.profile, nil
}

type fakeRetriever struct {
	docs  []docstore.SearchDocument
	err   error
	calls int
}

func (f *fakeRetriever) Search(_ context.Context, _ string, _ float32, _ int) ([]docstore.SearchDocument, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	return f.docs, nil
}

func postDoc(link string) docstore.SearchDocument {
	return docstore.SearchDocument{
		Metadata: docstore.Metadata{Type: docstore.TypePost, Link: link},
	}
}

func researcherProfile() *profiles.Profile {
	return &profiles.Profile{ID: "user-1", Role: "Researcher", Focus: "trapped ions"}
}

func TestComposeMergesSocialFirst(t *testing.T) {
	composer := New(
		&fakeConnections{peers: []string{"peer-1"}},
		&fakePosts{ids: []string{"post-a", "post-b"}},
		&fakeProfiles{profile: researcherProfile()},
		&fakeRetriever{docs: []docstore.SearchDocument{postDoc("post-c"), postDoc("post-b")}},
	)

	result, err := composer.Compose(context.Background(), "user-1")
	require.NoError(t, err)

	// union, social first, post-b not repeated
	assert.Equal(t, []string{"post-a", "post-b", "post-c"}, result.PostIDs)
	assert.Equal(t, 2, result.Meta.SocialCount)
	assert.Equal(t, 2, result.Meta.SemanticCount)
}

// the merged feed is a set: no duplicates, never larger than the two inputs
func TestComposeUnionProperty(t *testing.T) {
	social := []string{"p1", "p2", "p3"}
	semantic := []docstore.SearchDocument{postDoc("p2"), postDoc("p3"), postDoc("p4")}

	composer := New(
		&fakeConnections{peers: []string{"peer-1"}},
		&fakePosts{ids: social},
		&fakeProfiles{profile: researcherProfile()},
		&fakeRetriever{docs: semantic},
	)

	result, err := composer.Compose(context.Background(), "user-1")
	require.NoError(t, err)

	assert.LessOrEqual(t, len(result.PostIDs), len(social)+len(semantic))

	seen := make(map[string]bool)
	for _, id := range result.PostIDs {
		assert.False(t, seen[id], "duplicate post id %s", id)
		seen[id] = true
	}

	assert.Len(t, result.PostIDs, 4)
}

// a brand-new user with no connections and an empty profile gets an empty
// feed, not an error
func TestComposeNewUser(t *testing.T) {
	posts := &fakePosts{ids: []string{"should-not-appear"}}
	ret := &fakeRetriever{docs: []docstore.SearchDocument{postDoc("also-not")}}

	composer := New(
		&fakeConnections{},
		posts,
		&fakeProfiles{profile: &profiles.Profile{ID: "user-1", FullName: "Ada Qubit"}},
		ret,
	)

	result, err := composer.Compose(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Empty(t, result.PostIDs)
	assert.Zero(t, result.Meta.SocialCount)
	assert.Zero(t, result.Meta.SemanticCount)
	assert.Zero(t, posts.calls, "no peers means no post lookup")
	assert.Zero(t, ret.calls, "empty profile text means no retrieval")
}

func TestComposeEmptyUserID(t *testing.T) {
	composer := New(&fakeConnections{}, &fakePosts{}, &fakeProfiles{}, &fakeRetriever{})

	result, err := composer.Compose(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, []string{}, result.PostIDs)
}

// one strategy failing degrades it to empty instead of failing the feed
func TestComposeDegradesOnSocialFailure(t *testing.T) {
	composer := New(
		&fakeConnections{err: errors.New("connection reset")},
		&fakePosts{},
		&fakeProfiles{profile: researcherProfile()},
		&fakeRetriever{docs: []docstore.SearchDocument{postDoc("post-c")}},
	)

	result, err := composer.Compose(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"post-c"}, result.PostIDs)
	assert.Zero(t, result.Meta.SocialCount)
}

func TestComposeDegradesOnSemanticFailure(t *testing.T) {
	composer := New(
		&fakeConnections{peers: []string{"peer-1"}},
		&fakePosts{ids: []string{"post-a"}},
		&fakeProfiles{profile: researcherProfile()},
		&fakeRetriever{err: errors.New("provider unavailable")},
	)

	result, err := composer.Compose(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"post-a"}, result.PostIDs)
	assert.Zero(t, result.Meta.SemanticCount)
}

// semantic candidates that are not posts never reach the feed
func TestComposeFiltersNonPostResults(t *testing.T) {
	composer := New(
		&fakeConnections{},
		&fakePosts{},
		&fakeProfiles{profile: researcherProfile()},
		&fakeRetriever{docs: []docstore.SearchDocument{
			{Metadata: docstore.Metadata{Type: docstore.TypeJob, Link: "job-1"}},
			postDoc("post-a"),
		}},
	)

	result, err := composer.Compose(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"post-a"}, result.PostIDs)
}
