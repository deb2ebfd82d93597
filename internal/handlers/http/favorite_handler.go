package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/handlers/dto"
	"github.com/casellese/catalog-backend/internal/services"
)

// FavoriteHandler lida com os favoritos do usuário autenticado
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
	logger          ports.Logger
}

// NewFavoriteHandler cria um novo FavoriteHandler
func NewFavoriteHandler(favoriteService *services.FavoriteService, logger ports.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		logger:          logger,
	}
}

// ListFavorites lista os favoritos do usuário, mais recentes primeiro
//
//	@Summary	List my favorites
//	@Tags		favorites
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.FavoriteResponse
//	@Router		/api/favorites [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	favorites, err := h.favoriteService.ListFavorites(c.Request.Context(), principal.Subject)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFavoriteResponses(favorites))
}

// ListFavoriteIDs retorna apenas os ids das receitas favoritas
//
//	@Summary	List my favorite recipe ids
//	@Tags		favorites
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	int
//	@Router		/api/favorites/ids [get]
func (h *FavoriteHandler) ListFavoriteIDs(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	ids, err := h.favoriteService.FavoriteRecipeIDs(c.Request.Context(), principal.Subject)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if ids == nil {
		ids = []uint{}
	}

	c.JSON(http.StatusOK, ids)
}

// CheckFavorite
//
//	@Summary	Check whether a recipe is a favorite
//	@Tags		favorites
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"recipe id"
//	@Success	200	{object}	dto.FavoriteCheckResponse
//	@Router		/api/favorites/check/{id} [get]
func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	recipeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(c.Request.Context(), principal.Subject, recipeID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.FavoriteCheckResponse{IsFavorite: isFavorite})
}

// AddFavorite marca a receita; responde 201 quando cria e 200 quando já existia
//
//	@Summary	Add a favorite
//	@Tags		favorites
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"recipe id"
//	@Success	201	{object}	dto.FavoriteResponse
//	@Success	200	{object}	dto.FavoriteResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/favorites/{id} [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	recipeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	favorite, created, err := h.favoriteService.AddFavorite(c.Request.Context(), principal, recipeID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToFavoriteResponse(favorite))
}

// RemoveFavorite desmarca a receita
//
//	@Summary	Remove a favorite
//	@Tags		favorites
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"recipe id"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/favorites/{id} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	recipeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.favoriteService.RemoveFavorite(c.Request.Context(), principal.Subject, recipeID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "favorite.removed")})
}

// ToggleFavorite alterna o estado e retorna o novo
//
//	@Summary	Toggle a favorite
//	@Tags		favorites
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"recipe id"
//	@Success	200	{object}	dto.FavoriteToggleResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/favorites/toggle/{id} [post]
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	recipeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	isFavorite, err := h.favoriteService.ToggleFavorite(c.Request.Context(), principal, recipeID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	messageKey := "favorite.removed"
	if isFavorite {
		messageKey = "favorite.added"
	}
	c.JSON(http.StatusOK, dto.FavoriteToggleResponse{IsFavorite: isFavorite, Message: dto.T(c, messageKey)})
}

// CountFavorites
//
//	@Summary	Count my favorites
//	@Tags		favorites
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.CountResponse
//	@Router		/api/favorites/count [get]
func (h *FavoriteHandler) CountFavorites(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	count, err := h.favoriteService.CountFavorites(c.Request.Context(), principal.Subject)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// ListAllFavorites lista favoritos de todos os usuários (admin)
//
//	@Summary	List all favorites
//	@Tags		favorites
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.AdminFavoriteResponse
//	@Router		/api/favorites/admin/all [get]
func (h *FavoriteHandler) ListAllFavorites(c *gin.Context) {
	favorites, err := h.favoriteService.ListAllFavorites(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminFavoriteResponses(favorites))
}

// Stats (admin)
//
//	@Summary	Favorite statistics
//	@Tags		favorites
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.FavoriteStatsResponse
//	@Router		/api/favorites/admin/stats [get]
func (h *FavoriteHandler) Stats(c *gin.Context) {
	stats, err := h.favoriteService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFavoriteStatsResponse(stats))
}
