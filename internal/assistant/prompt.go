package assistant

import (
	"fmt"
	"strings"

	"github.com/quantum5ocial/server/internal/docstore"
)

// literal grounding context used when retrieval returns nothing; generation
// still proceeds so the user gets an honest "I don't know" instead of a 500
const emptyContextFallback = "No relevant documents found."

const systemPromptTemplate = `You are the Quantum5ocial assistant, helping members of a quantum-technology community find jobs, products, organizations, people, and answers on the platform.

Answer ONLY from the context documents below. If the context does not contain the answer, say you could not find anything relevant on the platform - never invent jobs, products, organizations, or people.

When you reference an entity from the context, format it as a relative link by its type:
- job: /jobs/{id}
- product: /products/{id}
- profile: /profile/{id}
- organization: /orgs/{id}
- question: /qna/{id}
where {id} is the link value given with the document.

Keep answers concise and conversational.

Context documents:
%s`

// builds the grounding context block from retrieved documents
func buildContext(docs []docstore.SearchDocument) string {
	if len(docs) == 0 {
		return emptyContextFallback
	}

	var sb strings.Builder

	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n\n")
		}

		fmt.Fprintf(&sb, "[%s %s] %s", doc.Metadata.Type, doc.Metadata.Link, doc.Content)
	}

	return sb.String()
}

func buildSystemPrompt(docs []docstore.SearchDocument) string {
	return fmt.Sprintf(systemPromptTemplate, buildContext(docs))
}
