package search

import (
	"github.com/gin-gonic/gin"

	"github.com/quantum5ocial/server/internal/retriever"
)

func RegisterRoutes(router *gin.RouterGroup, ret *retriever.Client) {
	router.POST("/search", SearchHandler(ret))
}
