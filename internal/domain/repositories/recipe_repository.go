package repositories

import (
	"context"

	"github.com/casellese/catalog-backend/internal/domain/entities"
)

// RecipeRepository define a interface para persistência de receitas
type RecipeRepository interface {
	Create(ctx context.Context, recipe *entities.Recipe) error
	FindByID(ctx context.Context, id uint) (*entities.Recipe, error)
	Update(ctx context.Context, recipe *entities.Recipe) error
	Delete(ctx context.Context, id uint) error
	DeleteByProduct(ctx context.Context, productID uint) error
	List(ctx context.Context) ([]*entities.Recipe, error)
	ListByProduct(ctx context.Context, productID uint) ([]*entities.Recipe, error)
}
