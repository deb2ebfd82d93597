package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/handlers/dto"
	"github.com/casellese/catalog-backend/internal/services"
)

// UserHandler lida com o perfil próprio e com a administração de usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile resolve (ou cria) o usuário do token e o retorna
//
//	@Summary	Get my profile
//	@Tags		profile
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UserResponse
//	@Router		/api/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), principal)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile altera nome e email; role nunca muda por aqui
//
//	@Summary	Update my profile
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		profile	body		dto.UpdateProfileRequest	true	"profile"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/api/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), principal.Subject, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários (admin)
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.UserResponse
//	@Router		/api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// GetUser busca um usuário por ID (admin)
//
//	@Summary	Get a user
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"user id"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateUser altera nome, email e role (admin)
//
//	@Summary	Update a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"user id"
//	@Param		user	body		dto.UpdateUserRequest	true	"user"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/api/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
