package dto

import (
	"time"

	"github.com/casellese/catalog-backend/internal/domain/entities"
)

// RecipeRequest representa o corpo de criação e de atualização de uma receita
type RecipeRequest struct {
	Title      string `json:"title" binding:"required,notblank,min=2,max=200"`
	Text       string `json:"text" binding:"max=10000"`
	PDFURL     string `json:"pdfUrl"`
	YouTubeURL string `json:"youtubeUrl"`
}

// ToEntity converte a requisição em entidade
func (r RecipeRequest) ToEntity() *entities.Recipe {
	return &entities.Recipe{
		Title:      r.Title,
		Text:       r.Text,
		PDFURL:     r.PDFURL,
		YouTubeURL: r.YouTubeURL,
	}
}

// RecipeResponse representa a resposta de uma receita
type RecipeResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	PDFURL     string    `json:"pdfUrl"`
	YouTubeURL string    `json:"youtubeUrl"`
	ProductID  *uint     `json:"productId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToRecipeResponse converte uma entidade Recipe para RecipeResponse
func ToRecipeResponse(recipe *entities.Recipe) RecipeResponse {
	return RecipeResponse{
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

// ToRecipeResponses converte uma lista de receitas
func ToRecipeResponses(recipes []*entities.Recipe) []RecipeResponse {
	responses := make([]RecipeResponse, len(recipes))
	for i, recipe := range recipes {
		responses[i] = ToRecipeResponse(recipe)
	}
	return responses
}
