package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/internal/llm"
)

type fakeRetriever struct {
	docs []docstore.SearchDocument
	err  error
}

func (f *fakeRetriever) Search(_ context.Context, _ string, _ float32, _ int) ([]docstore.SearchDocument, error) {
	return f.docs, f.err
}

// records the request and echoes a canned answer
type fakeGenerator struct {
	lastReq llm.TextGenerationRequest
	answer  string
	err     error
}

func (f *fakeGenerator) GenerateText(_ context.Context, req llm.TextGenerationRequest) (string, error) {
	f.lastReq = req

	if f.err != nil {
		return "", f.err
	}

	return f.answer, nil
}

func (f *fakeGenerator) Model() string { return "test-model" }

func TestChatGroundsOnRetrievedDocuments(t *testing.T) {
	ret := &fakeRetriever{docs: []docstore.SearchDocument{
		{
			Content:  "Job Title: Cryo Technician. Company: ColdCo",
			Metadata: docstore.Metadata{Type: docstore.TypeJob, Link: "job-1"},
		},
	}}
	gen := &fakeGenerator{answer: "ColdCo is hiring a Cryo Technician: /jobs/job-1"}

	a := New(ret, gen)

	resp, err := a.Chat(context.Background(), ChatRequest{Message: "any cryo jobs?"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.DocsRetrieved)
	assert.Equal(t, "test-model", resp.Model)
	assert.Contains(t, gen.lastReq.System, "[job job-1] Job Title: Cryo Technician")
}

// no retrieved documents still produces an answer, with the fallback context
func TestChatEmptyContextFallback(t *testing.T) {
	gen := &fakeGenerator{answer: "I could not find anything relevant."}
	a := New(&fakeRetriever{}, gen)

	resp, err := a.Chat(context.Background(), ChatRequest{Message: "anything about basket weaving?"})
	require.NoError(t, err)

	assert.Zero(t, resp.DocsRetrieved)
	assert.Contains(t, gen.lastReq.System, "No relevant documents found.")
}

// retrieval failure degrades to the fallback instead of failing the chat
func TestChatDegradesOnRetrievalFailure(t *testing.T) {
	ret := &fakeRetriever{err: errors.New("provider unavailable")}
	gen := &fakeGenerator{answer: "I could not find anything relevant."}

	a := New(ret, gen)

	resp, err := a.Chat(context.Background(), ChatRequest{Message: "any cryo jobs?"})
	require.NoError(t, err)

	assert.Zero(t, resp.DocsRetrieved)
	assert.Contains(t, gen.lastReq.System, "No relevant documents found.")
}

func TestChatRequiresMessage(t *testing.T) {
	a := New(&fakeRetriever{}, &fakeGenerator{})

	_, err := a.Chat(context.Background(), ChatRequest{})
	require.Error(t, err)
}

func TestChatPropagatesGenerationError(t *testing.T) {
	a := New(&fakeRetriever{}, &fakeGenerator{err: errors.New("rate limited")})

	_, err := a.Chat(context.Background(), ChatRequest{Message: "hello"})
	require.Error(t, err)
}

func TestChatTrimsAndFiltersHistory(t *testing.T) {
	gen := &fakeGenerator{answer: "ok"}
	a := New(&fakeRetriever{}, gen)

	history := make([]llm.Message, 0, 30)
	for i := 0; i < 30; i++ {
		history = append(history, llm.Message{Role: "user", Content: fmt.Sprintf("turn %d", i)})
	}

	history = append(history, llm.Message{Role: "assistant", Content: ""})

	_, err := a.Chat(context.Background(), ChatRequest{Message: "latest question", History: history})
	require.NoError(t, err)

	// 20 kept history turns minus the empty one, plus the current message
	assert.Len(t, gen.lastReq.Messages, 20)

	last := gen.lastReq.Messages[len(gen.lastReq.Messages)-1]
	assert.Equal(t, "latest question", last.Content)
}

func TestBuildContextFormat(t *testing.T) {
	docs := []docstore.SearchDocument{
		{Content: "first", Metadata: docstore.Metadata{Type: docstore.TypeJob, Link: "a"}},
		{Content: "second", Metadata: docstore.Metadata{Type: docstore.TypeProduct, Link: "b"}},
	}

	got := buildContext(docs)

	assert.True(t, strings.HasPrefix(got, "[job a] first"))
	assert.Contains(t, got, "[product b] second")
	assert.Contains(t, got, "\n\n")
}
