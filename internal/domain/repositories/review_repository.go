package repositories

import (
	"context"

	"github.com/casellese/catalog-backend/internal/domain/entities"
)

// ReviewRepository define a interface para persistência de avaliações
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	FindByID(ctx context.Context, id uint) (*entities.Review, error)
	Delete(ctx context.Context, id uint) error
	DetachProduct(ctx context.Context, productID uint) error
	List(ctx context.Context) ([]*entities.Review, error)
	ListByProduct(ctx context.Context, productID uint) ([]*entities.Review, error)
}
