package repositories

import (
	"context"

	"github.com/casellese/catalog-backend/internal/domain/entities"
)

// ProductRepository define a interface para persistência de produtos
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	FindByID(ctx context.Context, id uint) (*entities.Product, error)
	FindByTitle(ctx context.Context, title string) (*entities.Product, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters ProductFilters) ([]*entities.Product, error)
	Count(ctx context.Context) (int64, error)
}

// ProductFilters contém filtros para listagem de produtos
type ProductFilters struct {
	Name     *string            // substring do título, case-insensitive
	Category *entities.Category // igualdade exata
}
