package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/handlers/dto"
	"github.com/casellese/catalog-backend/internal/services"
)

// ReviewHandler lida com avaliações de produtos
type ReviewHandler struct {
	reviewService *services.ReviewService
	logger        ports.Logger
}

// NewReviewHandler cria um novo ReviewHandler
func NewReviewHandler(reviewService *services.ReviewService, logger ports.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// ListReviews lista todas as avaliações
//
//	@Summary	List reviews
//	@Tags		reviews
//	@Produce	json
//	@Success	200	{array}	dto.ReviewResponse
//	@Router		/api/review [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponses(reviews))
}

// ListByProduct lista avaliações de um produto; produto inexistente resulta em lista vazia
//
//	@Summary	List reviews of a product
//	@Tags		reviews
//	@Produce	json
//	@Param		id	path	int	true	"product id"
//	@Success	200	{array}	dto.ReviewResponse
//	@Router		/api/review/product/{id} [get]
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponses(reviews))
}

// CreateReview registra uma avaliação
//
//	@Summary	Create a review
//	@Tags		reviews
//	@Accept		json
//	@Produce	json
//	@Param		review	body		dto.ReviewRequest	true	"review"
//	@Success	200		{object}	dto.ReviewResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/api/review [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req dto.ReviewRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

// DeleteReview remove uma avaliação
//
//	@Summary	Delete a review
//	@Tags		reviews
//	@Param		id	path	int	true	"review id"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/review/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
