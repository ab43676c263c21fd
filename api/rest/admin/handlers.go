package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/quantum5ocial/server/internal/errors"
	"github.com/quantum5ocial/server/internal/indexer"
)

// triggers a synchronous indexing run over the requested entity types
//
// Indexing is idempotent, so repeated calls are safe; already-indexed
// entities are reported as skipped.
func IndexHandler(pipeline *indexer.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IndexRequest
		if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
			apierrors.ValidationError(c, err)
			return
		}

		types, err := indexer.ParseTypes(req.Types)
		if err != nil {
			apierrors.BadRequest(c, "invalid entity type", err)
			return
		}

		summary, err := pipeline.Run(c.Request.Context(), types)
		if err != nil {
			apierrors.InternalError(c, "indexing run failed", err)
			return
		}

		c.JSON(http.StatusOK, IndexResponse{
			Inserted: summary.Inserted,
			Skipped:  summary.Skipped,
			Failed:   summary.Failed,
			Errors:   summary.Errors,
		})
	}
}
