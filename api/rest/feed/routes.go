package feed

import (
	"github.com/gin-gonic/gin"

	feedcore "github.com/quantum5ocial/server/internal/feed"
)

func RegisterRoutes(router *gin.RouterGroup, composer *feedcore.Composer) {
	router.GET("/feed", FeedHandler(composer))
}
