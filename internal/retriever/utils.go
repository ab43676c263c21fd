package retriever

import "github.com/quantum5ocial/server/internal/docstore"

// returns only the documents whose metadata type matches t, preserving order
func FilterByType(docs []docstore.SearchDocument, t docstore.EntityType) []docstore.SearchDocument {
	filtered := make([]docstore.SearchDocument, 0, len(docs))

	for _, doc := range docs {
		if doc.Metadata.Type == t {
			filtered = append(filtered, doc)
		}
	}

	return filtered
}

// drops documents with a duplicate metadata link, keeping the first
// (highest-similarity) occurrence
func DedupeByLink(docs []docstore.SearchDocument) []docstore.SearchDocument {
	seen := make(map[string]bool, len(docs))
	deduped := make([]docstore.SearchDocument, 0, len(docs))

	for _, doc := range docs {
		if seen[doc.Metadata.Link] {
			continue
		}

		seen[doc.Metadata.Link] = true
		deduped = append(deduped, doc)
	}

	return deduped
}
