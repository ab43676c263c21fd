package feed

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/quantum5ocial/server/internal/errors"
	feedcore "github.com/quantum5ocial/server/internal/feed"
)

// handles personalized feed requests
//
// An absent user_id is not an error: personalization needs identity, so the
// composer returns an empty feed and the client falls back to its anonymous
// timeline.
func FeedHandler(composer *feedcore.Composer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")

		result, err := composer.Compose(c.Request.Context(), userID)
		if err != nil {
			apierrors.InternalError(c, "failed to compose feed", err)
			return
		}

		c.JSON(http.StatusOK, FeedResponse{
			PostIDs: result.PostIDs,
			Meta:    result.Meta,
		})
	}
}
