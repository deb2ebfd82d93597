package dto

import (
	"time"

	"github.com/casellese/catalog-backend/internal/domain/entities"
)

// FavoriteResponse é a forma achatada de um favorito com dados da receita e do produto
type FavoriteResponse struct {
	ID              uint      `json:"id"`
	RecipeID        uint      `json:"recipeId"`
	RecipeTitle     string    `json:"recipeTitle"`
	RecipeText      string    `json:"recipeText"`
	RecipePDFURL    string    `json:"recipePdfUrl"`
	ProductID       *uint     `json:"productId,omitempty"`
	ProductTitle    string    `json:"productTitle,omitempty"`
	ProductImageURL string    `json:"productImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AdminFavoriteResponse inclui o dono do favorito
type AdminFavoriteResponse struct {
	FavoriteResponse
	UserID   uint   `json:"userId"`
	UserName string `json:"userName"`
}

// FavoriteCheckResponse responde se a receita é favorita
type FavoriteCheckResponse struct {
	IsFavorite bool `json:"isFavorite"`
}

// FavoriteToggleResponse traz o novo estado após a alternância
type FavoriteToggleResponse struct {
	IsFavorite bool   `json:"isFavorite"`
	Message    string `json:"message"`
}

// CountResponse carrega uma contagem
type CountResponse struct {
	Count int64 `json:"count"`
}

// FavoriteStatsResponse agrega números de favoritos
type FavoriteStatsResponse struct {
	TotalFavorites int64   `json:"totalFavorites"`
	TotalUsers     int64   `json:"totalUsers"`
	AveragePerUser float64 `json:"averagePerUser"`
}

// ToFavoriteResponse achata um favorito; campos do produto ficam vazios sem produto
func ToFavoriteResponse(favorite *entities.Favorite) FavoriteResponse {
	response := FavoriteResponse{
		ID:        favorite.ID,
		RecipeID:  favorite.RecipeID,
		CreatedAt: favorite.CreatedAt,
	}
	if favorite.Recipe != nil {
		response.RecipeTitle = favorite.Recipe.Title
		response.RecipeText = favorite.Recipe.Text
		response.RecipePDFURL = favorite.Recipe.PDFURL
	}
	if favorite.Product != nil {
		id := favorite.Product.ID
		response.ProductID = &id
		response.ProductTitle = favorite.Product.Title
		response.ProductImageURL = favorite.Product.ImageURL
	}
	return response
}

// ToFavoriteResponses converte uma lista de favoritos
func ToFavoriteResponses(favorites []*entities.Favorite) []FavoriteResponse {
	responses := make([]FavoriteResponse, len(favorites))
	for i, favorite := range favorites {
		responses[i] = ToFavoriteResponse(favorite)
	}
	return responses
}

// ToAdminFavoriteResponses converte favoritos incluindo o usuário
func ToAdminFavoriteResponses(favorites []*entities.Favorite) []AdminFavoriteResponse {
	responses := make([]AdminFavoriteResponse, len(favorites))
	for i, favorite := range favorites {
		responses[i] = AdminFavoriteResponse{
			FavoriteResponse: ToFavoriteResponse(favorite),
			UserID:           favorite.UserID,
		}
		if favorite.User != nil {
			responses[i].UserName = favorite.User.Name
		}
	}
	return responses
}

// ToFavoriteStatsResponse converte as estatísticas
func ToFavoriteStatsResponse(stats entities.FavoriteStats) FavoriteStatsResponse {
	return FavoriteStatsResponse{
		TotalFavorites: stats.TotalFavorites,
		TotalUsers:     stats.TotalUsers,
		AveragePerUser: stats.AveragePerUser,
	}
}
