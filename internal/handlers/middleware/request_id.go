package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader é o header de correlação de requisições
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey guarda o id da requisição no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestID reaproveita o X-Request-ID recebido ou gera um novo
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
