package repositories

import (
	"context"

	"github.com/casellese/catalog-backend/internal/domain/entities"
)

// FavoriteRepository define a interface para persistência de favoritos.
// Create retorna errors.ErrAlreadyExists quando o par (user, recipe) já existe.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entities.Favorite) error
	FindByOAuthIDAndRecipe(ctx context.Context, oauthID string, recipeID uint) (*entities.Favorite, error)
	FindByUserAndRecipe(ctx context.Context, userID, recipeID uint) (*entities.Favorite, error)
	Delete(ctx context.Context, id uint) error
	DeleteByRecipe(ctx context.Context, recipeID uint) error
	DeleteByProduct(ctx context.Context, productID uint) error
	ListByOAuthID(ctx context.Context, oauthID string) ([]*entities.Favorite, error)
	RecipeIDsByOAuthID(ctx context.Context, oauthID string) ([]uint, error)
	CountByOAuthID(ctx context.Context, oauthID string) (int64, error)
	ListAll(ctx context.Context) ([]*entities.Favorite, error)
	Count(ctx context.Context) (int64, error)
}
