package recommend

import (
	"github.com/gin-gonic/gin"

	recommendcore "github.com/quantum5ocial/server/internal/recommend"
	"github.com/quantum5ocial/server/social/profiles"
)

func RegisterRoutes(router *gin.RouterGroup, recommender *recommendcore.Recommender, profileRepo *profiles.Repository) {
	router.GET("/profiles/:id/job-recommendations", JobRecommendationsHandler(recommender, profileRepo))
}
