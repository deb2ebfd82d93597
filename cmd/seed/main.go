package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/casellese/catalog-backend/internal/infrastructure/config"
	"github.com/casellese/catalog-backend/internal/infrastructure/logging"
	"github.com/casellese/catalog-backend/internal/infrastructure/persistence/postgres"
	"github.com/casellese/catalog-backend/internal/services"
)

func main() {
	adminEmail := flag.String("admin-email", "", "provision or promote this email as ADMIN (defaults to SEED_ADMIN_EMAIL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.New(cfg.Logging)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		log.Fatal(err)
	}

	email := cfg.Seed.AdminEmail
	if *adminEmail != "" {
		email = *adminEmail
	}

	seedService := services.NewSeedService(
		postgres.NewProductRepository(db),
		postgres.NewRecipeRepository(db),
		postgres.NewReviewRepository(db),
		postgres.NewUserRepository(db),
		postgres.NewUnitOfWork(db),
		logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := seedService.Run(ctx, email)
	if err != nil {
		logger.Error("seed failed", "error", err)
		log.Fatal(err)
	}

	logger.Info("seed finished",
		"products_created", result.ProductsCreated,
		"products_skipped", result.ProductsSkipped,
		"admin_provisioned", result.AdminProvisioned,
	)
}
