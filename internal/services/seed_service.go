package services

import (
	"context"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
	"github.com/casellese/catalog-backend/internal/domain/valueobjects"
)

type seedProduct struct {
	product entities.Product
	recipe  entities.Recipe
	reviews []entities.Review
}

func catalogSeed() []seedProduct {
	return []seedProduct{
		{
			product: entities.Product{
				Title:           "Caciocavallo",
				Description:     "Ein halbfester bis harter Käse aus Kuhmilch, der in Süditalien hergestellt wird.",
				Category:        entities.CategoryKaese,
				Price:           12.99,
				ImageURL:        "https://nucccio.github.io/casellese-images/caciocavallo.webp",
				ImageURLDetails: "https://nucccio.github.io/casellese-images/caciocavallo-rezepte.webp",
				Ingredients:     "Kuhmilch, Salz, Lab",
			},
			recipe: entities.Recipe{
				Title: "Gegrillter Caciocavallo",
				Text:  "Scheiben in der heißen Pfanne von beiden Seiten goldbraun anbraten und mit Oregano servieren.",
			},
			reviews: []entities.Review{
				{Stars: 5, Text: "Wunderbar würzig, wie in Kalabrien!", UserName: "Anna"},
				{Stars: 4, Text: "Sehr lecker, etwas salzig.", UserName: "Oli"},
			},
		},
		{
			product: entities.Product{
				Title:           "Salsiccia",
				Description:     "Eine italienische Rohwurst, die aus Schweinefleisch und Gewürzen hergestellt wird.",
				Category:        entities.CategorySalami,
				Price:           9.99,
				ImageURL:        "https://nucccio.github.io/casellese-images/salsiccia.webp",
				ImageURLDetails: "https://nucccio.github.io/casellese-images/salsiccia-rezepte.webp",
				Ingredients:     "Schweinefleisch, Salz, Fenchelsamen, Pfeffer",
			},
			recipe: entities.Recipe{
				Title: "Pasta mit Salsiccia",
				Text:  "Brät aus der Haut lösen, anbraten und mit Tomaten und Orecchiette vermengen.",
			},
			reviews: []entities.Review{
				{Stars: 4, Text: "Perfekt für Pasta.", UserName: "Ben"},
			},
		},
		{
			product: entities.Product{
				Title:           "Focaccia",
				Description:     "Ein flaches italienisches Brot, das mit Olivenöl, Salz und Kräutern belegt ist.",
				Category:        entities.CategoryBrot,
				Price:           4.99,
				ImageURL:        "https://nucccio.github.io/casellese-images/brot.webp",
				ImageURLDetails: "https://nucccio.github.io/casellese-images/brot-rezepte.webp",
				Ingredients:     "Weizenmehl, Wasser, Olivenöl, Hefe, Salz, Rosmarin",
			},
			recipe: entities.Recipe{
				Title: "Focaccia-Sandwich",
				Text:  "Focaccia aufschneiden und mit Caciocavallo und Salsiccia belegen.",
			},
			reviews: []entities.Review{
				{Stars: 3, Text: "Gut, aber am nächsten Tag etwas trocken.", UserName: "Chris"},
			},
		},
	}
}

// SeedResult resume o que foi inserido
type SeedResult struct {
	ProductsCreated  int
	ProductsSkipped  int
	AdminProvisioned bool
}

// SeedService carrega os dados iniciais de forma idempotente (busca por título antes de inserir)
type SeedService struct {
	productRepo repositories.ProductRepository
	recipeRepo  repositories.RecipeRepository
	reviewRepo  repositories.ReviewRepository
	userRepo    repositories.UserRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewSeedService cria um novo SeedService
func NewSeedService(
	productRepo repositories.ProductRepository,
	recipeRepo repositories.RecipeRepository,
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *SeedService {
	return &SeedService{
		productRepo: productRepo,
		recipeRepo:  recipeRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		uow:         uow,
		logger:      logger,
	}
}

// Run insere o catálogo de exemplo e, se adminEmail for informado, provisiona essa conta como ADMIN
func (s *SeedService) Run(ctx context.Context, adminEmail string) (SeedResult, error) {
	var result SeedResult

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		for _, item := range catalogSeed() {
			created, err := s.seedProduct(ctx, item)
			if err != nil {
				return err
			}
			if created {
				result.ProductsCreated++
			} else {
				result.ProductsSkipped++
			}
		}

		if adminEmail == "" {
			return nil
		}
		provisioned, err := s.provisionAdmin(ctx, adminEmail)
		result.AdminProvisioned = provisioned
		return err
	})
	if err != nil {
		return SeedResult{}, err
	}

	s.logger.Info("seed finished",
		"products_created", result.ProductsCreated,
		"products_skipped", result.ProductsSkipped,
		"admin_provisioned", result.AdminProvisioned,
	)
	return result, nil
}

func (s *SeedService) seedProduct(ctx context.Context, item seedProduct) (bool, error) {
	existing, err := s.productRepo.FindByTitle(ctx, item.product.Title)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	product := item.product
	if err := s.productRepo.Create(ctx, &product); err != nil {
		return false, err
	}

	recipe := item.recipe
	recipe.ProductID = &product.ID
	if err := s.recipeRepo.Create(ctx, &recipe); err != nil {
		return false, err
	}

	for _, r := range item.reviews {
		review := r
		review.ProductID = &product.ID
		if err := s.reviewRepo.Create(ctx, &review); err != nil {
			return false, err
		}
	}

	s.logger.Debug("seeded product", "product_id", product.ID, "title", product.Title)
	return true, nil
}

// provisionAdmin cria (ou promove) a conta do email; o oauthId é vinculado no primeiro login
func (s *SeedService) provisionAdmin(ctx context.Context, adminEmail string) (bool, error) {
	email, err := valueobjects.NewEmail(adminEmail)
	if err != nil {
		return false, err
	}

	user, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return false, err
	}

	if user == nil {
		user, err = entities.NewProvisionedUser(email.String(), "Administrator", entities.RoleAdmin)
		if err != nil {
			return false, err
		}
		return true, s.userRepo.Create(ctx, user)
	}

	if user.IsAdmin() {
		return false, nil
	}
	user.Role = entities.RoleAdmin
	return true, s.userRepo.Update(ctx, user)
}
