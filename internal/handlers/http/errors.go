package http

import (
	errs "errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/casellese/catalog-backend/internal/domain/errors"
	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/handlers/dto"
	"github.com/casellese/catalog-backend/internal/handlers/middleware"
)

var notFoundResources = []struct {
	err         error
	resourceKey string
}{
	{errors.ErrProductNotFound, "resource.product"},
	{errors.ErrRecipeNotFound, "resource.recipe"},
	{errors.ErrReviewNotFound, "resource.review"},
	{errors.ErrUserNotFound, "resource.user"},
	{errors.ErrFavoriteNotFound, "resource.favorite"},
}

var badRequestErrors = []error{
	errors.ErrInvalidEmail,
	errors.ErrBlankOAuthID,
	errors.ErrOAuthIDImmutable,
	errors.ErrInvalidStars,
	errors.ErrReviewProductMissing,
}

// respondError traduz erros de domínio para problem details; o resto vira 500
func respondError(c *gin.Context, logger ports.Logger, err error) {
	for _, nf := range notFoundResources {
		if errs.Is(err, nf.err) {
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, nf.resourceKey))
			return
		}
	}

	switch {
	case errs.Is(err, errors.ErrAlreadyExists):
		dto.WriteProblem(c, dto.ConflictErrorResponseI18n(c, errors.ErrAlreadyExists.Error()))
	case errs.Is(err, errors.ErrForbidden):
		dto.WriteProblem(c, dto.ForbiddenErrorResponseI18n(c))
	case errs.Is(err, errors.ErrUnauthorized):
		dto.WriteProblem(c, dto.UnauthorizedErrorResponseI18n(c))
	case errors.IsBadRequest(err):
		if fields := dto.FieldErrors(c, err); fields != nil {
			dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, fields))
			return
		}
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, badRequestKey(err)))
	default:
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		_ = c.Error(err)
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
	}
}

// badRequestKey devolve o message ID do sentinel, mesmo quando o erro vem embrulhado
func badRequestKey(err error) string {
	for _, target := range badRequestErrors {
		if errs.Is(err, target) {
			return target.Error()
		}
	}
	return "error.invalid_body"
}

// parseID lê um identificador positivo do path; responde 400 quando inválido
func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, "error.invalid_id", map[string]any{"Value": raw}))
		return 0, false
	}
	return uint(id), true
}

// principalOrAbort retorna a identidade autenticada ou responde 401
func principalOrAbort(c *gin.Context) (*ports.Principal, bool) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		dto.WriteProblem(c, dto.UnauthorizedErrorResponseI18n(c))
		return nil, false
	}
	return principal, true
}
