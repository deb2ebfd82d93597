package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
)

const joinFavoriteUser = "JOIN app_user ON app_user.id = favorite.user_id"

// FavoriteRepository implementa repositories.FavoriteRepository
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository cria um novo FavoriteRepository
func NewFavoriteRepository(db *gorm.DB) repositories.FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create insere o favorito; o índice único (user_id, recipe_id) resolve corridas
func (r *FavoriteRepository) Create(ctx context.Context, favorite *entities.Favorite) error {
	model := &FavoriteModel{
		UserID:    favorite.UserID,
		RecipeID:  favorite.RecipeID,
		CreatedAt: favorite.CreatedAt,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	favorite.ID = model.ID
	favorite.CreatedAt = model.CreatedAt
	return nil
}

func (r *FavoriteRepository) FindByOAuthIDAndRecipe(ctx context.Context, oauthID string, recipeID uint) (*entities.Favorite, error) {
	var model FavoriteModel

	db := dbFromContext(ctx, r.db)
	err := db.Joins(joinFavoriteUser).
		Where("app_user.oauth_id = ? AND favorite.recipe_id = ?", oauthID, recipeID).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toFavoriteEntity(&model), nil
}

func (r *FavoriteRepository) FindByUserAndRecipe(ctx context.Context, userID, recipeID uint) (*entities.Favorite, error) {
	var model FavoriteModel

	db := dbFromContext(ctx, r.db)
	err := db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toFavoriteEntity(&model), nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&FavoriteModel{}, id).Error
}

func (r *FavoriteRepository) DeleteByRecipe(ctx context.Context, recipeID uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("recipe_id = ?", recipeID).Delete(&FavoriteModel{}).Error
}

// DeleteByProduct remove favoritos de todas as receitas do produto
func (r *FavoriteRepository) DeleteByProduct(ctx context.Context, productID uint) error {
	db := dbFromContext(ctx, r.db)
	recipeIDs := db.Model(&RecipeModel{}).Select("id").Where("product_id = ?", productID)
	return db.Where("recipe_id IN (?)", recipeIDs).Delete(&FavoriteModel{}).Error
}

// ListByOAuthID lista os favoritos do usuário, mais recentes primeiro
func (r *FavoriteRepository) ListByOAuthID(ctx context.Context, oauthID string) ([]*entities.Favorite, error) {
	var models []*FavoriteModel

	db := dbFromContext(ctx, r.db)
	err := db.Joins(joinFavoriteUser).
		Where("app_user.oauth_id = ?", oauthID).
		Preload("Recipe.Product").
		Order("favorite.created_at DESC").
		Order("favorite.id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return toFavoriteEntities(models), nil
}

func (r *FavoriteRepository) RecipeIDsByOAuthID(ctx context.Context, oauthID string) ([]uint, error) {
	ids := []uint{}

	db := dbFromContext(ctx, r.db)
	err := db.Model(&FavoriteModel{}).
		Joins(joinFavoriteUser).
		Where("app_user.oauth_id = ?", oauthID).
		Order("favorite.created_at DESC").
		Pluck("favorite.recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *FavoriteRepository) CountByOAuthID(ctx context.Context, oauthID string) (int64, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&FavoriteModel{}).
		Joins(joinFavoriteUser).
		Where("app_user.oauth_id = ?", oauthID).
		Count(&count).Error
	return count, err
}

// ListAll lista todos os favoritos com usuário, receita e produto
func (r *FavoriteRepository) ListAll(ctx context.Context) ([]*entities.Favorite, error) {
	var models []*FavoriteModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("User").
		Preload("Recipe.Product").
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return toFavoriteEntities(models), nil
}

func (r *FavoriteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&FavoriteModel{}).Count(&count).Error
	return count, err
}

// Conversores
func toFavoriteEntity(model *FavoriteModel) *entities.Favorite {
	favorite := &entities.Favorite{
		ID:        model.ID,
		UserID:    model.UserID,
		RecipeID:  model.RecipeID,
		CreatedAt: model.CreatedAt,
	}

	if model.User != nil {
		favorite.User = toUserEntity(model.User)
	}
	if model.Recipe != nil {
		favorite.Recipe = toRecipeEntity(model.Recipe)
		if model.Recipe.Product != nil {
			favorite.Product = toProductEntity(model.Recipe.Product)
		}
	}

	return favorite
}

func toFavoriteEntities(models []*FavoriteModel) []*entities.Favorite {
	favorites := make([]*entities.Favorite, 0, len(models))
	for _, model := range models {
		favorites = append(favorites, toFavoriteEntity(model))
	}
	return favorites
}
