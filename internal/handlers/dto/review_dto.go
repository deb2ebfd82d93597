package dto

import (
	"time"

	"github.com/casellese/catalog-backend/internal/domain/entities"
)

// ProductRef referencia um produto pelo id; demais campos enviados são ignorados
type ProductRef struct {
	ID uint `json:"id"`
}

// ReviewRequest representa o corpo de criação de uma avaliação.
// O produto pode vir como productId ou como objeto product {id}.
// Stars não usa binding para que a faixa inválida resulte em erro de domínio.
type ReviewRequest struct {
	Stars     int         `json:"stars"`
	Text      string      `json:"text"`
	UserName  string      `json:"userName" binding:"max=200"`
	ProductID *uint       `json:"productId"`
	Product   *ProductRef `json:"product"`
}

// ToEntity converte a requisição em entidade
func (r ReviewRequest) ToEntity() *entities.Review {
	review := &entities.Review{
		Stars:    r.Stars,
		Text:     r.Text,
		UserName: r.UserName,
	}
	switch {
	case r.ProductID != nil:
		id := *r.ProductID
		review.ProductID = &id
	case r.Product != nil:
		id := r.Product.ID
		review.ProductID = &id
	}
	return review
}

// ReviewResponse representa a resposta de uma avaliação
type ReviewResponse struct {
	ID        uint      `json:"id"`
	Stars     int       `json:"stars"`
	Text      string    `json:"text"`
	UserName  string    `json:"userName"`
	ProductID *uint     `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToReviewResponse converte uma entidade Review para ReviewResponse
func ToReviewResponse(review *entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Stars:     review.Stars,
		Text:      review.Text,
		UserName:  review.UserName,
		ProductID: review.ProductID,
		CreatedAt: review.CreatedAt,
	}
}

// ToReviewResponses converte uma lista de avaliações
func ToReviewResponses(reviews []*entities.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ToReviewResponse(review)
	}
	return responses
}
