package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
)

// RecipeRepository implementa repositories.RecipeRepository
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository cria um novo RecipeRepository
func NewRecipeRepository(db *gorm.DB) repositories.RecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *entities.Recipe) error {
	model := toRecipeModel(recipe)
	model.ID = 0

	db := dbFromContext(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	recipe.ID = model.ID
	recipe.CreatedAt = model.CreatedAt
	recipe.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var model RecipeModel

	db := dbFromContext(ctx, r.db)
	if err := db.First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toRecipeEntity(&model), nil
}

func (r *RecipeRepository) Update(ctx context.Context, recipe *entities.Recipe) error {
	model := toRecipeModel(recipe)

	db := dbFromContext(ctx, r.db)
	if err := db.Omit(clause.Associations).Save(model).Error; err != nil {
		return translateWriteError(err)
	}
	recipe.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&RecipeModel{}, id).Error
}

func (r *RecipeRepository) DeleteByProduct(ctx context.Context, productID uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("product_id = ?", productID).Delete(&RecipeModel{}).Error
}

func (r *RecipeRepository) List(ctx context.Context) ([]*entities.Recipe, error) {
	var models []*RecipeModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return toRecipeEntities(models), nil
}

func (r *RecipeRepository) ListByProduct(ctx context.Context, productID uint) ([]*entities.Recipe, error) {
	var models []*RecipeModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("product_id = ?", productID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return toRecipeEntities(models), nil
}

// Conversores
func toRecipeModel(recipe *entities.Recipe) *RecipeModel {
	return &RecipeModel{
		ID:         recipe.ID,
		Title:      recipe.Title,
		Text:       recipe.Text,
		PDFURL:     recipe.PDFURL,
		YouTubeURL: recipe.YouTubeURL,
		ProductID:  recipe.ProductID,
		CreatedAt:  recipe.CreatedAt,
		UpdatedAt:  recipe.UpdatedAt,
	}
}

func toRecipeEntity(model *RecipeModel) *entities.Recipe {
	return &entities.Recipe{
		ID:         model.ID,
		Title:      model.Title,
		Text:       model.Text,
		PDFURL:     model.PDFURL,
		YouTubeURL: model.YouTubeURL,
		ProductID:  model.ProductID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func toRecipeEntities(models []*RecipeModel) []*entities.Recipe {
	recipes := make([]*entities.Recipe, 0, len(models))
	for _, model := range models {
		recipes = append(recipes, toRecipeEntity(model))
	}
	return recipes
}
