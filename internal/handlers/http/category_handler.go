package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	"github.com/casellese/catalog-backend/internal/handlers/dto"
)

// ListCategories retorna as categorias com o nome em alemão
//
//	@Summary	List product categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	dto.CategoryResponse
//	@Router		/api/category [get]
func ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCategoryResponses(entities.Categories()))
}
