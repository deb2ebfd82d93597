package entities

import "time"

// Favorite representa o marcador de um usuário para uma receita.
// User e Recipe são referenciados, nunca possuídos.
type Favorite struct {
	ID        uint
	UserID    uint
	RecipeID  uint
	CreatedAt time.Time

	// Preenchidos nas consultas de listagem
	User    *User
	Recipe  *Recipe
	Product *Product
}

// NewFavorite cria um favorito com o timestamp de criação
func NewFavorite(userID, recipeID uint) *Favorite {
	return &Favorite{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now().UTC(),
	}
}

// FavoriteStats agrega números de favoritos para administradores
type FavoriteStats struct {
	TotalFavorites int64
	TotalUsers     int64
	AveragePerUser float64
}

// NewFavoriteStats calcula a média por usuário (0 quando não há usuários)
func NewFavoriteStats(totalFavorites, totalUsers int64) FavoriteStats {
	stats := FavoriteStats{
		TotalFavorites: totalFavorites,
		TotalUsers:     totalUsers,
	}
	if totalUsers > 0 {
		stats.AveragePerUser = float64(totalFavorites) / float64(totalUsers)
	}
	return stats
}
