package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	"github.com/casellese/catalog-backend/internal/domain/ports"
	handlers "github.com/casellese/catalog-backend/internal/handlers/http"
	"github.com/casellese/catalog-backend/internal/infrastructure/cache"
	"github.com/casellese/catalog-backend/internal/infrastructure/config"
	"github.com/casellese/catalog-backend/internal/infrastructure/i18n"
	"github.com/casellese/catalog-backend/internal/infrastructure/logging"
	"github.com/casellese/catalog-backend/internal/infrastructure/metrics"
	"github.com/casellese/catalog-backend/internal/infrastructure/persistence/postgres"
	"github.com/casellese/catalog-backend/internal/services"
)

const (
	adminToken = "admin-token"
	aliceToken = "alice-token"
	bobToken   = "bob-token"
)

// tokenVerifier aceita apenas tokens conhecidos
type tokenVerifier map[string]*ports.Principal

func (v tokenVerifier) Verify(_ context.Context, raw string) (*ports.Principal, error) {
	if principal, ok := v[raw]; ok {
		return principal, nil
	}
	return nil, errors.New("invalid token")
}

type api struct {
	t        *testing.T
	router   *gin.Engine
	db       *gorm.DB
	registry *prometheus.Registry
}

type apiOption func(*config.Config)

func withReviewDeleteAdmin() apiOption {
	return func(cfg *config.Config) { cfg.Policy.ReviewDeleteRequiresAdmin = true }
}

func newAPI(t *testing.T, opts ...apiOption) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.Map(func(r rune) rune {
		if r < 128 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, t.Name())
	db, err := postgres.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), logger.Silent)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{
		Env:    "test",
		Server: config.ServerConfig{BaseURL: "http://catalog.test"},
		CORS:   config.CORSConfig{AllowedOrigins: "http://localhost:5173"},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	log := logging.NewNop()
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	i18nService, err := i18n.NewService("", "en")
	require.NoError(t, err)

	users := postgres.NewUserRepository(db)
	products := postgres.NewProductRepository(db)
	recipes := postgres.NewRecipeRepository(db)
	reviews := postgres.NewReviewRepository(db)
	favorites := postgres.NewFavoriteRepository(db)
	uow := postgres.NewUnitOfWork(db)

	admin := &entities.User{OAuthID: "auth0|admin", Name: "Admin", Role: entities.RoleAdmin}
	require.NoError(t, users.Create(context.Background(), admin))

	identity := services.NewIdentityService(users, m, log)

	router := handlers.NewRouter(handlers.RouterDeps{
		Config: cfg,
		Logger: log,
		I18n:   i18nService,
		Verifier: tokenVerifier{
			adminToken: {Subject: "auth0|admin", Name: "Admin"},
			aliceToken: {Subject: "auth0|alice", Name: "Alice", Email: "alice@example.com"},
			bobToken:   {Subject: "auth0|bob", Name: "Bob", Email: "bob@example.com"},
		},
		Authorizer: identity,
		Metrics:    m,
		Gatherer:   registry,
		Ping:       func(ctx context.Context) error { return postgres.Ping(ctx, db) },

		ProductService:  services.NewProductService(products, recipes, reviews, favorites, uow, cache.NoopProductCache{}, log),
		RecipeService:   services.NewRecipeService(recipes, products, favorites, uow, log),
		ReviewService:   services.NewReviewService(reviews, products, log),
		FavoriteService: services.NewFavoriteService(favorites, recipes, products, users, identity, m, log),
		UserService:     services.NewUserService(users, identity, log),
	})

	return &api{t: t, router: router, db: db, registry: registry}
}

type request struct {
	method   string
	path     string
	token    string
	body     any
	language string
}

func (a *api) do(req request) *httptest.ResponseRecorder {
	a.t.Helper()

	var body bytes.Buffer
	switch b := req.body.(type) {
	case nil:
	case string:
		body.WriteString(b)
	default:
		require.NoError(a.t, json.NewEncoder(&body).Encode(b))
	}

	httpReq := httptest.NewRequest(req.method, req.path, &body)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	if req.language != "" {
		httpReq.Header.Set("Accept-Language", req.language)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, httpReq)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// createProduct cria um produto como admin e retorna o id
func (a *api) createProduct(title, category string) uint {
	a.t.Helper()
	w := a.do(request{method: http.MethodPost, path: "/api/product", token: adminToken, body: map[string]any{
		"title":    title,
		"category": category,
		"price":    4.5,
		"imageUrl": "https://img.example.com/" + strings.ToLower(title) + ".jpg",
	}})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return decode[struct {
		ID uint `json:"id"`
	}](a.t, w).ID
}

// createRecipe cria uma receita como admin e retorna o id
func (a *api) createRecipe(productID uint, title string) uint {
	a.t.Helper()
	w := a.do(request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/api/products/%d/recipes", productID),
		token:  adminToken,
		body:   map[string]any{"title": title, "text": "Mix and bake.", "pdfUrl": "https://pdf.example.com/r.pdf"},
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[struct {
		ID uint `json:"id"`
	}](a.t, w).ID
}

type problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
	Errors   []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
		Tag     string `json:"tag"`
	} `json:"errors"`
}
