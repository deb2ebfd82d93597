package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/handlers/dto"
)

// PrincipalContextKey guarda a identidade verificada no contexto do Gin
const PrincipalContextKey = "principal"

// Authenticate exige um bearer token válido e disponibiliza o Principal aos handlers
func Authenticate(verifier ports.TokenVerifier, logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			dto.WriteProblem(c, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		principal, err := verifier.Verify(c.Request.Context(), raw)
		if err != nil {
			logger.Debug("token rejected", "error", err, "request_id", c.GetString(RequestIDContextKey))
			dto.WriteProblem(c, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		c.Set(PrincipalContextKey, principal)
		c.Next()
	}
}

// PrincipalFrom retorna a identidade autenticada da requisição
func PrincipalFrom(c *gin.Context) (*ports.Principal, bool) {
	value, exists := c.Get(PrincipalContextKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*ports.Principal)
	return principal, ok && principal != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
