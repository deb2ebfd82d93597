package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/casellese/catalog-backend/internal/domain/errors"
)

// BaseURLContextKey guarda a URL base usada nos tipos de problema RFC 7807
const BaseURLContextKey = "base_url"

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// MessageResponse é a resposta simples com mensagem traduzida
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteProblem envia o problema com o media type application/problem+json e aborta a cadeia
func WriteProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]any) ErrorResponse {
	baseURL := c.GetString(BaseURLContextKey)
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return ErrorResponse{
		Problem: &problems.Problem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n cria uma resposta 400 com detalhe específico
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]any) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeBadRequest,
		"error.bad_request.title",
		detailKey,
		http.StatusBadRequest,
		params...,
	)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404; resourceKey é traduzido
func NotFoundErrorResponseI18n(c *gin.Context, resourceKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		http.StatusNotFound,
		map[string]any{"Resource": T(c, resourceKey)},
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]any) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		http.StatusConflict,
		params...,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		"error.unauthorized.detail",
		http.StatusUnauthorized,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		http.StatusForbidden,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}
