package admin

import "github.com/quantum5ocial/server/internal/indexer"

// request payload for triggering an indexing run
type IndexRequest struct {
	Types []string `json:"types"` // empty means all entity types
}

// response payload for an indexing run
type IndexResponse struct {
	Inserted int                 `json:"inserted"`
	Skipped  int                 `json:"skipped"`
	Failed   int                 `json:"failed"`
	Errors   []indexer.ItemError `json:"errors,omitempty"`
}
