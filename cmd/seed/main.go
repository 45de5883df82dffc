package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/staybook/backend/config"
	"github.com/staybook/backend/internal/application"
	"github.com/staybook/backend/internal/infrastructure/catalog"
	"github.com/staybook/backend/pkg/helpers"
)

// Seeds the hotel search index from the static catalog.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("failed to init elasticsearch client: %v", err)
	}

	svc := &application.CatalogService{
		Catalog:       catalog.NewStatic(),
		ES:            es,
		ESHotelsIndex: cfg.ESHotelsIndex,
		Logger:        logger,
	}

	if err := svc.IndexHotels(context.Background()); err != nil {
		log.Fatalf("failed to index hotels: %v", err)
	}
	fmt.Printf("indexed %d hotels into %s\n", len(svc.Catalog.Hotels()), cfg.ESHotelsIndex)
}
