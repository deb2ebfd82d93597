package services

import (
	"context"
	"errors"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
)

const (
	FavoriteActionAdded   = "added"
	FavoriteActionRemoved = "removed"
)

// FavoriteService contém a lógica de negócio para favoritos.
// Todas as operações são escopadas ao subject autenticado.
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	recipeRepo   repositories.RecipeRepository
	productRepo  repositories.ProductRepository
	userRepo     repositories.UserRepository
	identity     *IdentityService
	metrics      ports.Metrics
	logger       ports.Logger
}

// NewFavoriteService cria um novo FavoriteService
func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	recipeRepo repositories.RecipeRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
	identity *IdentityService,
	metrics ports.Metrics,
	logger ports.Logger,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		recipeRepo:   recipeRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
		identity:     identity,
		metrics:      metrics,
		logger:       logger,
	}
}

// ListFavorites lista os favoritos do subject, mais recentes primeiro
func (s *FavoriteService) ListFavorites(ctx context.Context, subject string) ([]*entities.Favorite, error) {
	return s.favoriteRepo.ListByOAuthID(ctx, subject)
}

// FavoriteRecipeIDs retorna apenas os IDs das receitas favoritas
func (s *FavoriteService) FavoriteRecipeIDs(ctx context.Context, subject string) ([]uint, error) {
	return s.favoriteRepo.RecipeIDsByOAuthID(ctx, subject)
}

// IsFavorite verifica se a receita está nos favoritos do subject
func (s *FavoriteService) IsFavorite(ctx context.Context, subject string, recipeID uint) (bool, error) {
	favorite, err := s.favoriteRepo.FindByOAuthIDAndRecipe(ctx, subject, recipeID)
	if err != nil {
		return false, err
	}
	return favorite != nil, nil
}

// CountFavorites conta os favoritos do subject
func (s *FavoriteService) CountFavorites(ctx context.Context, subject string) (int64, error) {
	return s.favoriteRepo.CountByOAuthID(ctx, subject)
}

// AddFavorite é idempotente: retorna o favorito existente com created=false.
// Uma inserção concorrente perdida pelo índice único também retorna o existente.
func (s *FavoriteService) AddFavorite(ctx context.Context, principal *ports.Principal, recipeID uint) (*entities.Favorite, bool, error) {
	user, err := s.identity.Resolve(ctx, principal)
	if err != nil {
		return nil, false, err
	}

	recipe, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, false, err
	}
	if recipe == nil {
		s.logger.Warn("recipe not found for favorite", "recipe_id", recipeID)
		return nil, false, domainerrors.ErrRecipeNotFound
	}

	existing, err := s.favoriteRepo.FindByUserAndRecipe(ctx, user.ID, recipeID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return s.withRecipe(ctx, existing, recipe)
	}

	favorite := entities.NewFavorite(user.ID, recipeID)
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		if !errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, false, err
		}
		existing, err := s.favoriteRepo.FindByUserAndRecipe(ctx, user.ID, recipeID)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, domainerrors.ErrFavoriteNotFound
		}
		return s.withRecipe(ctx, existing, recipe)
	}

	s.metrics.FavoriteChanged(FavoriteActionAdded)
	s.logger.Info("favorite added",
		"favorite_id", favorite.ID,
		"user_id", user.ID,
		"recipe_id", recipeID,
	)

	favorite, _, err = s.withRecipe(ctx, favorite, recipe)
	return favorite, true, err
}

// RemoveFavorite remove o favorito; ErrFavoriteNotFound quando não existe
func (s *FavoriteService) RemoveFavorite(ctx context.Context, subject string, recipeID uint) error {
	favorite, err := s.favoriteRepo.FindByOAuthIDAndRecipe(ctx, subject, recipeID)
	if err != nil {
		return err
	}
	if favorite == nil {
		return domainerrors.ErrFavoriteNotFound
	}

	if err := s.favoriteRepo.Delete(ctx, favorite.ID); err != nil {
		return err
	}

	s.metrics.FavoriteChanged(FavoriteActionRemoved)
	s.logger.Info("favorite removed", "favorite_id", favorite.ID, "recipe_id", recipeID)
	return nil
}

// ToggleFavorite inverte o estado e retorna o novo estado
func (s *FavoriteService) ToggleFavorite(ctx context.Context, principal *ports.Principal, recipeID uint) (bool, error) {
	isFavorite, err := s.IsFavorite(ctx, principal.Subject, recipeID)
	if err != nil {
		return false, err
	}

	if isFavorite {
		err := s.RemoveFavorite(ctx, principal.Subject, recipeID)
		// Já removido por outra requisição: o estado final é o mesmo
		if errors.Is(err, domainerrors.ErrFavoriteNotFound) {
			return false, nil
		}
		return false, err
	}

	if _, _, err := s.AddFavorite(ctx, principal, recipeID); err != nil {
		return false, err
	}
	return true, nil
}

// ListAllFavorites lista favoritos de todos os usuários (admin)
func (s *FavoriteService) ListAllFavorites(ctx context.Context) ([]*entities.Favorite, error) {
	return s.favoriteRepo.ListAll(ctx)
}

// Stats calcula totais de favoritos e usuários (admin)
func (s *FavoriteService) Stats(ctx context.Context) (entities.FavoriteStats, error) {
	totalFavorites, err := s.favoriteRepo.Count(ctx)
	if err != nil {
		return entities.FavoriteStats{}, err
	}

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return entities.FavoriteStats{}, err
	}

	return entities.NewFavoriteStats(totalFavorites, totalUsers), nil
}

// withRecipe preenche receita e produto para a resposta
func (s *FavoriteService) withRecipe(ctx context.Context, favorite *entities.Favorite, recipe *entities.Recipe) (*entities.Favorite, bool, error) {
	favorite.Recipe = recipe
	if recipe.ProductID != nil {
		product, err := s.productRepo.FindByID(ctx, *recipe.ProductID)
		if err != nil {
			return nil, false, err
		}
		favorite.Product = product
	}
	return favorite, false, nil
}
