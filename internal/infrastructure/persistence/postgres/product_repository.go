package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
)

// ProductRepository implementa repositories.ProductRepository
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository cria um novo ProductRepository
func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	model := toProductModel(product)
	// ID sempre atribuído pelo banco
	model.ID = 0

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	product.ID = model.ID
	product.CreatedAt = model.CreatedAt
	product.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*entities.Product, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *ProductRepository) FindByTitle(ctx context.Context, title string) (*entities.Product, error) {
	return r.findOne(ctx, "title = ?", title)
}

func (r *ProductRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Product, error) {
	var model ProductModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where(query, args...).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toProductEntity(&model), nil
}

func (r *ProductRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	if err := db.Model(&ProductModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	model := toProductModel(product)

	db := dbFromContext(ctx, r.db)
	if err := db.Save(model).Error; err != nil {
		return translateWriteError(err)
	}
	product.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&ProductModel{}, id).Error
}

func (r *ProductRepository) List(ctx context.Context, filters repositories.ProductFilters) ([]*entities.Product, error) {
	var models []*ProductModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&ProductModel{})

	// Aplicar filtros
	if filters.Name != nil {
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\'`, containsPattern(*filters.Name))
	}
	if filters.Category != nil {
		query = query.Where("category = ?", string(*filters.Category))
	}

	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(models))
	for _, model := range models {
		products = append(products, toProductEntity(model))
	}
	return products, nil
}

// likeEscaper neutraliza os curingas do LIKE vindos do usuário
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern monta o padrão LIKE de substring, sem diferenciar maiúsculas
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&ProductModel{}).Count(&count).Error
	return count, err
}

// Conversores
func toProductModel(product *entities.Product) *ProductModel {
	return &ProductModel{
		ID:              product.ID,
		Title:           product.Title,
		Description:     product.Description,
		Category:        string(product.Category),
		Price:           product.Price,
		ImageURL:        product.ImageURL,
		ImageURLDetails: product.ImageURLDetails,
		Ingredients:     product.Ingredients,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
}

func toProductEntity(model *ProductModel) *entities.Product {
	return &entities.Product{
		ID:              model.ID,
		Title:           model.Title,
		Description:     model.Description,
		Category:        entities.Category(model.Category),
		Price:           model.Price,
		ImageURL:        model.ImageURL,
		ImageURLDetails: model.ImageURLDetails,
		Ingredients:     model.Ingredients,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
