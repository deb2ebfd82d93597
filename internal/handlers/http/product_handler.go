package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
	"github.com/casellese/catalog-backend/internal/handlers/dto"
	"github.com/casellese/catalog-backend/internal/services"
)

// ProductHandler lida com requisições HTTP relacionadas a produtos
type ProductHandler struct {
	productService *services.ProductService
	logger         ports.Logger
}

// NewProductHandler cria um novo ProductHandler
func NewProductHandler(productService *services.ProductService, logger ports.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// ListProducts lista produtos com filtros opcionais
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Param		name		query		string	false	"case-insensitive title substring"
//	@Param		category	query		string	false	"KAESE, SALAMI or BROT"
//	@Success	200			{array}		dto.ProductResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/api/product [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var filters repositories.ProductFilters

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		filters.Name = &name
	}

	if raw := c.Query("category"); raw != "" {
		category, ok := entities.ParseCategory(raw)
		if !ok {
			dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, "error.invalid_query", map[string]any{"Field": "category"}))
			return
		}
		filters.Category = &category
	}

	products, err := h.productService.ListProducts(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// GetProduct busca um produto por ID
//
//	@Summary	Get a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"product id"
//	@Success	200	{object}	dto.ProductResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/product/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// CreateProduct cria um produto (admin)
//
//	@Summary	Create a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		product	body		dto.ProductRequest	true	"product"
//	@Success	200		{object}	dto.ProductResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Router		/api/product [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// UpdateProduct sobrescreve todos os campos de um produto (admin)
//
//	@Summary	Replace a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int					true	"product id"
//	@Param		product	body		dto.ProductRequest	true	"product"
//	@Success	200		{object}	dto.ProductResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/api/product/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.ProductRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// DeleteProduct remove um produto e suas receitas (admin)
//
//	@Summary	Delete a product
//	@Tags		products
//	@Security	BearerAuth
//	@Param		id	path	int	true	"product id"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/product/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
