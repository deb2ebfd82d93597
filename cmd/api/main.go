package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/casellese/catalog-backend/internal/domain/ports"
	httphandlers "github.com/casellese/catalog-backend/internal/handlers/http"
	"github.com/casellese/catalog-backend/internal/infrastructure/auth"
	"github.com/casellese/catalog-backend/internal/infrastructure/cache"
	"github.com/casellese/catalog-backend/internal/infrastructure/config"
	"github.com/casellese/catalog-backend/internal/infrastructure/i18n"
	"github.com/casellese/catalog-backend/internal/infrastructure/logging"
	"github.com/casellese/catalog-backend/internal/infrastructure/metrics"
	"github.com/casellese/catalog-backend/internal/infrastructure/persistence/postgres"
	"github.com/casellese/catalog-backend/internal/services"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply the schema and exit")
	seedOnly := flag.Bool("seed-only", false, "apply the schema, load the seed catalog and exit")
	flag.Parse()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config:", err)
	}

	// Inicializar logger
	logger := logging.New(cfg.Logging)
	logger.Info("starting catalog backend",
		"env", cfg.Env,
		"db_driver", cfg.Database.Driver,
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if cfg.Database.AutoMigrate || *migrateOnly || *seedOnly {
		if err := postgres.Migrate(db); err != nil {
			logger.Error("failed to migrate schema", "error", err)
			log.Fatal(err)
		}
		logger.Info("schema migrated")
	}
	if *migrateOnly {
		return
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	recipeRepo := postgres.NewRecipeRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	uow := postgres.NewUnitOfWork(db)

	if cfg.Seed.Enabled || *seedOnly {
		seedService := services.NewSeedService(productRepo, recipeRepo, reviewRepo, userRepo, uow, logger)
		if _, err := seedService.Run(context.Background(), cfg.Seed.AdminEmail); err != nil {
			logger.Error("failed to seed catalog", "error", err)
			log.Fatal(err)
		}
	}
	if *seedOnly {
		return
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Verificação de tokens do provedor de identidade
	verifier, err := auth.NewJWTVerifier(cfg.Auth)
	if err != nil {
		logger.Error("failed to initialize token verifier", "error", err)
		log.Fatal(err)
	}

	// Métricas
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	// Cache de produtos
	productCache := newProductCache(cfg.Redis, logger)

	// Inicializar services
	identityService := services.NewIdentityService(userRepo, appMetrics, logger)
	productService := services.NewProductService(productRepo, recipeRepo, reviewRepo, favoriteRepo, uow, productCache, logger)
	recipeService := services.NewRecipeService(recipeRepo, productRepo, favoriteRepo, uow, logger)
	reviewService := services.NewReviewService(reviewRepo, productRepo, logger)
	favoriteService := services.NewFavoriteService(favoriteRepo, recipeRepo, productRepo, userRepo, identityService, appMetrics, logger)
	userService := services.NewUserService(userRepo, identityService, logger)

	if !cfg.Policy.ReviewDeleteRequiresAdmin {
		logger.Warn("review deletion is not gated; set REVIEW_DELETE_REQUIRES_ADMIN=true to require the admin role")
	}

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterDeps{
		Config:     cfg,
		Logger:     logger,
		I18n:       i18nService,
		Verifier:   verifier,
		Authorizer: identityService,
		Metrics:    appMetrics,
		Gatherer:   registry,
		Ping: func(ctx context.Context) error {
			return postgres.Ping(ctx, db)
		},

		ProductService:  productService,
		RecipeService:   recipeService,
		ReviewService:   reviewService,
		FavoriteService: favoriteService,
		UserService:     userService,
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// newProductCache usa Redis quando REDIS_URL está definido; sem Redis o cache é desligado
func newProductCache(cfg config.RedisConfig, logger ports.Logger) ports.ProductCache {
	if cfg.URL == "" {
		logger.Info("product cache disabled", "reason", "REDIS_URL not set")
		return cache.NoopProductCache{}
	}

	client, err := cache.NewRedisClient(cfg.URL, logger)
	if err != nil {
		logger.Warn("product cache disabled", "error", err)
		return cache.NoopProductCache{}
	}

	return cache.NewRedisProductCache(client, cfg.CacheTTL, logger)
}
