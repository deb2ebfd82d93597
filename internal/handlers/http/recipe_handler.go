package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/handlers/dto"
	"github.com/casellese/catalog-backend/internal/services"
)

// RecipeHandler lida com requisições HTTP relacionadas a receitas
type RecipeHandler struct {
	recipeService *services.RecipeService
	logger        ports.Logger
}

// NewRecipeHandler cria um novo RecipeHandler
func NewRecipeHandler(recipeService *services.RecipeService, logger ports.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		logger:        logger,
	}
}

// ListRecipes lista todas as receitas
//
//	@Summary	List recipes
//	@Tags		recipes
//	@Produce	json
//	@Success	200	{array}	dto.RecipeResponse
//	@Router		/api/recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeResponses(recipes))
}

// GetRecipe busca uma receita por ID
//
//	@Summary	Get a recipe
//	@Tags		recipes
//	@Produce	json
//	@Param		id	path		int	true	"recipe id"
//	@Success	200	{object}	dto.RecipeResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeResponse(recipe))
}

// ListByProduct lista as receitas de um produto
//
//	@Summary	List recipes of a product
//	@Tags		recipes
//	@Produce	json
//	@Param		id	path		int	true	"product id"
//	@Success	200	{array}		dto.RecipeResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/products/{id}/recipes [get]
func (h *RecipeHandler) ListByProduct(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	recipes, err := h.recipeService.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeResponses(recipes))
}

// CreateRecipe cria uma receita vinculada ao produto (admin)
//
//	@Summary	Create a recipe for a product
//	@Tags		recipes
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int					true	"product id"
//	@Param		recipe	body		dto.RecipeRequest	true	"recipe"
//	@Success	201		{object}	dto.RecipeResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/api/products/{id}/recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.RecipeRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), productID, req.ToEntity())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecipeResponse(recipe))
}

// UpdateRecipe sobrescreve título, texto e links (admin)
//
//	@Summary	Update a recipe
//	@Tags		recipes
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int					true	"recipe id"
//	@Param		recipe	body		dto.RecipeRequest	true	"recipe"
//	@Success	200		{object}	dto.RecipeResponse
//	@Router		/api/recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.RecipeRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeResponse(recipe))
}

// DeleteRecipe remove uma receita e os favoritos que apontam para ela (admin)
//
//	@Summary	Delete a recipe
//	@Tags		recipes
//	@Security	BearerAuth
//	@Param		id	path	int	true	"recipe id"
//	@Success	200
//	@Router		/api/recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}
