package search

// request payload for semantic search
type SearchRequest struct {
	Query     string  `json:"query" binding:"required"`
	Threshold float32 `json:"threshold"`
	TopK      int     `json:"top_k"`
}

// one search hit
type SearchHit struct {
	Type       string  `json:"type"`
	Link       string  `json:"link"`
	Title      string  `json:"title,omitempty"`
	Content    string  `json:"content"`
	Similarity float32 `json:"similarity"`
}

// response payload for semantic search
type SearchResponse struct {
	Results []SearchHit `json:"results"`
}
