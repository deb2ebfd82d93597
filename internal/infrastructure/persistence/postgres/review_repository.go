package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
)

// ReviewRepository implementa repositories.ReviewRepository
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository cria um novo ReviewRepository
func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	model := toReviewModel(review)
	model.ID = 0

	db := dbFromContext(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	review.ID = model.ID
	review.CreatedAt = model.CreatedAt
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uint) (*entities.Review, error) {
	var model ReviewModel

	db := dbFromContext(ctx, r.db)
	if err := db.First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toReviewEntity(&model), nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&ReviewModel{}, id).Error
}

// DetachProduct desvincula as avaliações de um produto que será removido
func (r *ReviewRepository) DetachProduct(ctx context.Context, productID uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&ReviewModel{}).
		Where("product_id = ?", productID).
		Update("product_id", nil).Error
}

func (r *ReviewRepository) List(ctx context.Context) ([]*entities.Review, error) {
	var models []*ReviewModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return toReviewEntities(models), nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID uint) ([]*entities.Review, error) {
	var models []*ReviewModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("product_id = ?", productID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return toReviewEntities(models), nil
}

// Conversores
func toReviewModel(review *entities.Review) *ReviewModel {
	return &ReviewModel{
		ID:        review.ID,
		Stars:     review.Stars,
		Text:      review.Text,
		UserName:  review.UserName,
		ProductID: review.ProductID,
		CreatedAt: review.CreatedAt,
	}
}

func toReviewEntity(model *ReviewModel) *entities.Review {
	return &entities.Review{
		ID:        model.ID,
		Stars:     model.Stars,
		Text:      model.Text,
		UserName:  model.UserName,
		ProductID: model.ProductID,
		CreatedAt: model.CreatedAt,
	}
}

func toReviewEntities(models []*ReviewModel) []*entities.Review {
	reviews := make([]*entities.Review, 0, len(models))
	for _, model := range models {
		reviews = append(reviews, toReviewEntity(model))
	}
	return reviews
}
