package services

import (
	"context"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
)

// RecipeService contém a lógica de negócio para receitas
type RecipeService struct {
	recipeRepo   repositories.RecipeRepository
	productRepo  repositories.ProductRepository
	favoriteRepo repositories.FavoriteRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewRecipeService cria um novo RecipeService
func NewRecipeService(
	recipeRepo repositories.RecipeRepository,
	productRepo repositories.ProductRepository,
	favoriteRepo repositories.FavoriteRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *RecipeService {
	return &RecipeService{
		recipeRepo:   recipeRepo,
		productRepo:  productRepo,
		favoriteRepo: favoriteRepo,
		uow:          uow,
		logger:       logger,
	}
}

func (s *RecipeService) ListRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	return s.recipeRepo.List(ctx)
}

func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domainerrors.ErrRecipeNotFound
	}
	return recipe, nil
}

// ListByProduct lista as receitas de um produto existente
func (s *RecipeService) ListByProduct(ctx context.Context, productID uint) ([]*entities.Recipe, error) {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.recipeRepo.ListByProduct(ctx, productID)
}

// CreateRecipe vincula uma nova receita ao produto
func (s *RecipeService) CreateRecipe(ctx context.Context, productID uint, recipe *entities.Recipe) (*entities.Recipe, error) {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	recipe.ID = 0
	recipe.ProductID = &productID
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	s.logger.Info("recipe created", "recipe_id", recipe.ID, "product_id", productID)
	return recipe, nil
}

// UpdateRecipe sobrescreve título, texto e links; o produto não muda
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, input *entities.Recipe) (*entities.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	recipe.Overwrite(input)
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, err
	}

	s.logger.Info("recipe updated", "recipe_id", id)
	return recipe, nil
}

// DeleteRecipe remove a receita e os favoritos que apontam para ela
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.GetRecipe(ctx, id); err != nil {
			return err
		}
		if err := s.favoriteRepo.DeleteByRecipe(ctx, id); err != nil {
			return err
		}
		return s.recipeRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("recipe deleted", "recipe_id", id)
	return nil
}

func (s *RecipeService) ensureProduct(ctx context.Context, productID uint) error {
	exists, err := s.productRepo.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrProductNotFound
	}
	return nil
}
