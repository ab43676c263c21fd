package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quantum5ocial/server/api/rest/admin"
	"github.com/quantum5ocial/server/api/rest/assistant"
	"github.com/quantum5ocial/server/api/rest/feed"
	"github.com/quantum5ocial/server/api/rest/health"
	"github.com/quantum5ocial/server/api/rest/recommend"
	"github.com/quantum5ocial/server/api/rest/search"
	"github.com/quantum5ocial/server/internal/metrics"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://quantum5ocial.com"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(metrics.Middleware())

	router.GET("/health", health.Handler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		search.RegisterRoutes(v1, server.services.Retriever)
		assistant.RegisterRoutes(v1, server.services.Assistant)
		recommend.RegisterRoutes(v1, server.services.Recommender, server.profileRepo)
		feed.RegisterRoutes(v1, server.services.Feed)
		admin.RegisterRoutes(v1, server.services.Indexer)
	}
}
