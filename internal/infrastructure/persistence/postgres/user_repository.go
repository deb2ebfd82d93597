package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
	"github.com/casellese/catalog-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := toUserModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByOAuthID(ctx context.Context, oauthID string) (*entities.User, error) {
	return r.findOne(ctx, "oauth_id = ?", oauthID)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where(query, args...).Order("id").First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toUserEntity(&model), nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := toUserModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Save(model).Error; err != nil {
		return translateWriteError(err)
	}
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var models []*UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(models))
	for _, model := range models {
		users = append(users, toUserEntity(model))
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&UserModel{}).Count(&count).Error
	return count, err
}

// Conversores
func toUserModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:        user.ID,
		Email:     nullableString(user.Email.String()),
		Name:      user.Name,
		OAuthID:   nullableString(user.OAuthID),
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserEntity(model *UserModel) *entities.User {
	// Emails vêm validados do domínio; um valor legado inválido vira "sem email"
	email, _ := valueobjects.NewOptionalEmail(derefString(model.Email))

	return &entities.User{
		ID:        model.ID,
		Email:     email,
		Name:      model.Name,
		OAuthID:   derefString(model.OAuthID),
		Role:      entities.Role(model.Role),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
