package dto

import (
	"time"

	"github.com/casellese/catalog-backend/internal/domain/entities"
)

// ProductRequest representa o corpo de criação e de atualização completa de um produto.
// Um id enviado pelo cliente é ignorado.
type ProductRequest struct {
	Title           string  `json:"title" binding:"required,notblank,min=2,max=200"`
	Description     string  `json:"description" binding:"max=2000"`
	Category        string  `json:"category" binding:"required,category"`
	Price           float64 `json:"price" binding:"gte=0"`
	ImageURL        string  `json:"imageUrl"`
	ImageURLDetails string  `json:"imageUrlDetails"`
	Ingredients     string  `json:"ingredients" binding:"max=2000"`
}

// ToEntity converte a requisição em entidade
func (r ProductRequest) ToEntity() *entities.Product {
	category, _ := entities.ParseCategory(r.Category)
	return &entities.Product{
		Title:           r.Title,
		Description:     r.Description,
		Category:        category,
		Price:           r.Price,
		ImageURL:        r.ImageURL,
		ImageURLDetails: r.ImageURLDetails,
		Ingredients:     r.Ingredients,
	}
}

// ProductResponse representa a resposta de um produto
type ProductResponse struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	ImageURL        string    `json:"imageUrl"`
	ImageURLDetails string    `json:"imageUrlDetails"`
	Ingredients     string    `json:"ingredients"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToProductResponse converte uma entidade Product para ProductResponse
func ToProductResponse(product *entities.Product) ProductResponse {
	return ProductResponse{
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

// ToProductResponses converte uma lista de produtos
func ToProductResponses(products []*entities.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ToProductResponse(product)
	}
	return responses
}

// CategoryResponse representa uma categoria com o nome de exibição em alemão
type CategoryResponse struct {
	Name       string `json:"name"`
	GermanName string `json:"germanName"`
}

// ToCategoryResponses lista as categorias na ordem de exibição
func ToCategoryResponses(categories []entities.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = CategoryResponse{Name: string(category), GermanName: category.GermanName()}
	}
	return responses
}
