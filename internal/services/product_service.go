package services

import (
	"context"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
)

// ProductService contém a lógica de negócio para produtos
type ProductService struct {
	productRepo  repositories.ProductRepository
	recipeRepo   repositories.RecipeRepository
	reviewRepo   repositories.ReviewRepository
	favoriteRepo repositories.FavoriteRepository
	uow          ports.UnitOfWork
	cache        ports.ProductCache
	logger       ports.Logger
}

// NewProductService cria um novo ProductService
func NewProductService(
	productRepo repositories.ProductRepository,
	recipeRepo repositories.RecipeRepository,
	reviewRepo repositories.ReviewRepository,
	favoriteRepo repositories.FavoriteRepository,
	uow ports.UnitOfWork,
	cache ports.ProductCache,
	logger ports.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		recipeRepo:   recipeRepo,
		reviewRepo:   reviewRepo,
		favoriteRepo: favoriteRepo,
		uow:          uow,
		cache:        cache,
		logger:       logger,
	}
}

// ListProducts lista produtos; filtros ausentes não restringem
func (s *ProductService) ListProducts(ctx context.Context, filters repositories.ProductFilters) ([]*entities.Product, error) {
	return s.productRepo.List(ctx, filters)
}

// GetProduct busca um produto por ID, passando pelo cache.
// Invalidações em update e delete acontecem depois do commit.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entities.Product, error) {
	product, generation, ok := s.cache.Get(ctx, id)
	if ok {
		return product, nil
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	s.cache.Set(ctx, product, generation)
	return product, nil
}

// CreateProduct cria um produto; um ID enviado pelo cliente é descartado
func (s *ProductService) CreateProduct(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	product.ID = 0
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created", "product_id", product.ID, "title", product.Title)
	return product, nil
}

// UpdateProduct sobrescreve todos os campos editáveis
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input *entities.Product) (*entities.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	product.Overwrite(input)
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, id)

	s.logger.Info("product updated", "product_id", id)
	return product, nil
}

// DeleteProduct remove o produto com suas receitas e respectivos favoritos.
// Avaliações permanecem, sem vínculo com o produto.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.productRepo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domainerrors.ErrProductNotFound
		}

		if err := s.favoriteRepo.DeleteByProduct(ctx, id); err != nil {
			return err
		}
		if err := s.recipeRepo.DeleteByProduct(ctx, id); err != nil {
			return err
		}
		if err := s.reviewRepo.DetachProduct(ctx, id); err != nil {
			return err
		}
		return s.productRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	s.logger.Info("product deleted", "product_id", id)
	return nil
}
