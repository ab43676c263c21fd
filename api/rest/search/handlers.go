package search

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/quantum5ocial/server/internal/errors"
	"github.com/quantum5ocial/server/internal/retriever"
)

const (
	defaultThreshold = 0.2
	defaultTopK      = 10
	maxTopK          = 50
)

// handles semantic search requests
func SearchHandler(ret *retriever.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		threshold := req.Threshold
		if threshold <= 0 {
			threshold = defaultThreshold
		}

		topK := req.TopK
		if topK <= 0 {
			topK = defaultTopK
		}

		if topK > maxTopK {
			topK = maxTopK
		}

		docs, err := ret.Search(c.Request.Context(), req.Query, threshold, topK)
		if err != nil {
			if errors.Is(err, retriever.ErrProviderMismatch) {
				apierrors.Conflict(c, "search index was built with a different embedding provider")
				return
			}

			apierrors.InternalError(c, "search failed", err)

			return
		}

		hits := make([]SearchHit, 0, len(docs))
		for _, doc := range docs {
			hits = append(hits, SearchHit{
				Type:       string(doc.Metadata.Type),
				Link:       doc.Metadata.Link,
				Title:      doc.Metadata.Title,
				Content:    doc.Content,
				Similarity: doc.Similarity,
			})
		}

		c.JSON(http.StatusOK, SearchResponse{Results: hits})
	}
}
