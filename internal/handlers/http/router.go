package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/casellese/catalog-backend/docs" // registra a documentação swagger
	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/handlers/dto"
	"github.com/casellese/catalog-backend/internal/handlers/middleware"
	"github.com/casellese/catalog-backend/internal/infrastructure/config"
	"github.com/casellese/catalog-backend/internal/infrastructure/i18n"
	"github.com/casellese/catalog-backend/internal/services"
)

// Metrics reúne os eventos de domínio e a observação de requisições HTTP
type Metrics interface {
	ports.Metrics
	middleware.RequestObserver
}

// RouterDeps agrupa tudo que o roteador precisa
type RouterDeps struct {
	Config     *config.Config
	Logger     ports.Logger
	I18n       *i18n.Service
	Verifier   ports.TokenVerifier
	Authorizer ports.Authorizer
	Metrics    Metrics
	Gatherer   prometheus.Gatherer
	Ping       func(ctx context.Context) error

	ProductService  *services.ProductService
	RecipeService   *services.RecipeService
	ReviewService   *services.ReviewService
	FavoriteService *services.FavoriteService
	UserService     *services.UserService
}

// NewRouter monta middlewares e rotas da API
func NewRouter(deps RouterDeps) *gin.Engine {
	dto.RegisterValidators()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.BaseURL(deps.Config.Server.BaseURL),
		middleware.NewI18nMiddleware(deps.I18n).DetectLanguage(),
		middleware.CORS(deps.Config.CORS.Origins()),
	)

	productHandler := NewProductHandler(deps.ProductService, deps.Logger)
	recipeHandler := NewRecipeHandler(deps.RecipeService, deps.Logger)
	reviewHandler := NewReviewHandler(deps.ReviewService, deps.Logger)
	favoriteHandler := NewFavoriteHandler(deps.FavoriteService, deps.Logger)
	userHandler := NewUserHandler(deps.UserService, deps.Logger)
	healthHandler := NewHealthHandler(deps.Config.Env, deps.Ping)

	authenticate := middleware.Authenticate(deps.Verifier, deps.Logger)
	requireAdmin := func(resource string) gin.HandlerFunc {
		return middleware.RequireAdmin(deps.Authorizer, deps.Metrics, deps.Logger, resource)
	}

	// Operações
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/category", ListCategories)

		// Products
		products := api.Group("/product")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", authenticate, requireAdmin("product"), productHandler.CreateProduct)
			products.PUT("/:id", authenticate, requireAdmin("product"), productHandler.UpdateProduct)
			products.DELETE("/:id", authenticate, requireAdmin("product"), productHandler.DeleteProduct)
		}

		// Recipes
		api.GET("/recipes", recipeHandler.ListRecipes)
		api.GET("/recipes/:id", recipeHandler.GetRecipe)
		api.PUT("/recipes/:id", authenticate, requireAdmin("recipe"), recipeHandler.UpdateRecipe)
		api.DELETE("/recipes/:id", authenticate, requireAdmin("recipe"), recipeHandler.DeleteRecipe)
		api.GET("/products/:id/recipes", recipeHandler.ListByProduct)
		api.POST("/products/:id/recipes", authenticate, requireAdmin("recipe"), recipeHandler.CreateRecipe)

		// Reviews
		reviews := api.Group("/review")
		{
			reviews.GET("", reviewHandler.ListReviews)
			reviews.GET("/product/:id", reviewHandler.ListByProduct)
			reviews.POST("", reviewHandler.CreateReview)
			if deps.Config.Policy.ReviewDeleteRequiresAdmin {
				reviews.DELETE("/:id", authenticate, requireAdmin("review"), reviewHandler.DeleteReview)
			} else {
				reviews.DELETE("/:id", reviewHandler.DeleteReview)
			}
		}

		// Favorites
		favorites := api.Group("/favorites", authenticate)
		{
			favorites.GET("", favoriteHandler.ListFavorites)
			favorites.GET("/ids", favoriteHandler.ListFavoriteIDs)
			favorites.GET("/count", favoriteHandler.CountFavorites)
			favorites.GET("/check/:id", favoriteHandler.CheckFavorite)
			favorites.POST("/toggle/:id", favoriteHandler.ToggleFavorite)
			favorites.POST("/:id", favoriteHandler.AddFavorite)
			favorites.DELETE("/:id", favoriteHandler.RemoveFavorite)
			favorites.GET("/admin/all", requireAdmin("favorite"), favoriteHandler.ListAllFavorites)
			favorites.GET("/admin/stats", requireAdmin("favorite"), favoriteHandler.Stats)
		}

		// Profile
		profile := api.Group("/profile", authenticate)
		{
			profile.GET("", userHandler.GetProfile)
			profile.PUT("", userHandler.UpdateProfile)
		}

		// Users
		users := api.Group("/users", authenticate, requireAdmin("user"))
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
		}
	}

	return router
}
