package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantum5ocial/server/internal/assistant"
	"github.com/quantum5ocial/server/internal/config"
	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/internal/feed"
	"github.com/quantum5ocial/server/internal/indexer"
	"github.com/quantum5ocial/server/internal/llm"
	"github.com/quantum5ocial/server/internal/recommend"
	"github.com/quantum5ocial/server/internal/retriever"
	"github.com/quantum5ocial/server/social/profiles"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	profileRepo *profiles.Repository
	services    *Services
	router      *gin.Engine
}

// holds all service clients built on top of the repositories
type Services struct {
	Embedder    llm.Embedder
	Generator   llm.TextGenerator
	Store       *docstore.Client
	Retriever   *retriever.Client
	Assistant   *assistant.Assistant
	Recommender *recommend.Recommender
	Feed        *feed.Composer
	Indexer     *indexer.Pipeline
}
