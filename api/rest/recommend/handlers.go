package recommend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	apierrors "github.com/quantum5ocial/server/internal/errors"
	recommendcore "github.com/quantum5ocial/server/internal/recommend"
	"github.com/quantum5ocial/server/social/profiles"
)

// handles job recommendation requests for a profile
func JobRecommendationsHandler(recommender *recommendcore.Recommender, profileRepo *profiles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := c.Param("id")
		if profileID == "" {
			apierrors.BadRequest(c, "missing profile id", nil)
			return
		}

		profile, err := profileRepo.GetByID(c.Request.Context(), profileID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				apierrors.NotFound(c, "profile")
				return
			}

			apierrors.InternalError(c, "failed to load profile", err)

			return
		}

		jobIDs, err := recommender.RecommendJobs(c.Request.Context(), *profile)
		if err != nil {
			apierrors.InternalError(c, "failed to compute recommendations", err)
			return
		}

		if jobIDs == nil {
			jobIDs = []string{}
		}

		c.JSON(http.StatusOK, RecommendationsResponse{JobIDs: jobIDs})
	}
}
