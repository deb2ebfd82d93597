package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/casellese/catalog-backend/internal/handlers/dto"
)

// BaseURL disponibiliza a URL base da API para os tipos de problema RFC 7807
func BaseURL(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, baseURL)
		c.Next()
	}
}
