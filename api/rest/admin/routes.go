package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/quantum5ocial/server/internal/indexer"
)

func RegisterRoutes(router *gin.RouterGroup, pipeline *indexer.Pipeline) {
	adminGroup := router.Group("/admin")
	{
		adminGroup.POST("/index", IndexHandler(pipeline))
	}
}
