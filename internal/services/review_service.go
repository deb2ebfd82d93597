package services

import (
	"context"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
)

// ReviewService contém a lógica de negócio para avaliações
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
	logger      ports.Logger
}

// NewReviewService cria um novo ReviewService
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	productRepo repositories.ProductRepository,
	logger ports.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]*entities.Review, error) {
	return s.reviewRepo.List(ctx)
}

// ListByProduct não verifica a existência do produto; produto ausente gera lista vazia
func (s *ReviewService) ListByProduct(ctx context.Context, productID uint) ([]*entities.Review, error) {
	return s.reviewRepo.ListByProduct(ctx, productID)
}

// CreateReview valida a nota e confere o produto no banco; só o ID do produto é usado
func (s *ReviewService) CreateReview(ctx context.Context, review *entities.Review) (*entities.Review, error) {
	if err := review.ValidateStars(); err != nil {
		s.logger.Warn("review stars out of bounds", "stars", review.Stars)
		return nil, err
	}

	if review.ProductID == nil {
		return nil, domainerrors.ErrReviewProductMissing
	}
	exists, err := s.productRepo.Exists(ctx, *review.ProductID)
	if err != nil {
		return nil, err
	}
	if !exists {
		s.logger.Warn("product not found for review", "product_id", *review.ProductID)
		return nil, domainerrors.ErrReviewProductMissing
	}

	review.ID = 0
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("review created", "review_id", review.ID, "product_id", *review.ProductID)
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uint) error {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if review == nil {
		return domainerrors.ErrReviewNotFound
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("review deleted", "review_id", id)
	return nil
}
