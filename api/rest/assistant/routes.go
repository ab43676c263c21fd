package assistant

import (
	"github.com/gin-gonic/gin"

	assistantcore "github.com/quantum5ocial/server/internal/assistant"
)

func RegisterRoutes(router *gin.RouterGroup, assistantClient *assistantcore.Assistant) {
	assistantGroup := router.Group("/assistant")
	{
		assistantGroup.POST("/chat", ChatHandler(assistantClient))
	}
}
