package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantum5ocial/server/internal/assistant"
	"github.com/quantum5ocial/server/internal/config"
	"github.com/quantum5ocial/server/internal/docstore"
	"github.com/quantum5ocial/server/internal/feed"
	"github.com/quantum5ocial/server/internal/indexer"
	"github.com/quantum5ocial/server/internal/llm"
	"github.com/quantum5ocial/server/internal/recommend"
	"github.com/quantum5ocial/server/internal/retriever"
	"github.com/quantum5ocial/server/social/connections"
	"github.com/quantum5ocial/server/social/jobs"
	"github.com/quantum5ocial/server/social/orgs"
	"github.com/quantum5ocial/server/social/posts"
	"github.com/quantum5ocial/server/social/products"
	"github.com/quantum5ocial/server/social/profiles"
	"github.com/quantum5ocial/server/social/questions"
)

// creates and wires all service clients
func InitializeServices(cfg *config.Config, db *pgxpool.Pool, profileRepo *profiles.Repository) (*Services, error) {
	embedder, err := llm.NewEmbedder(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	generator, err := llm.NewGenerator(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}

	store := docstore.NewClient(db)
	retrieverClient := retriever.New(store, embedder)

	pipeline := indexer.New(store, embedder, indexer.Sources{
		Jobs:      jobs.NewRepository(db),
		Products:  products.NewRepository(db),
		Orgs:      orgs.NewRepository(db),
		Profiles:  profileRepo,
		Questions: questions.NewRepository(db),
	})

	feedComposer := feed.New(
		connections.NewRepository(db),
		posts.NewRepository(db),
		profileRepo,
		retrieverClient,
	)

	return &Services{
		Embedder:    embedder,
		Generator:   generator,
		Store:       store,
		Retriever:   retrieverClient,
		Assistant:   assistant.New(retrieverClient, generator),
		Recommender: recommend.New(retrieverClient),
		Feed:        feedComposer,
		Indexer:     pipeline,
	}, nil
}
