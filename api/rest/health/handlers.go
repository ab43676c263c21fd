package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// reports service liveness
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// simple liveness probe for the versioned API group
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
