package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/quantum5ocial/server/internal/config"
	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/social/profiles"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	db, err := docstore.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	profileRepo := profiles.NewRepository(db)

	services, err := InitializeServices(cfg, db, profileRepo)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		db:          db,
		config:      cfg,
		profileRepo: profileRepo,
		services:    services,
		router:      router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
