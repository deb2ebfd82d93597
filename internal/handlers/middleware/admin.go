package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/handlers/dto"
)

// RequireAdmin bloqueia com 403 quem não tem papel ADMIN. Deve rodar após Authenticate.
func RequireAdmin(authz ports.Authorizer, metrics ports.Metrics, logger ports.Logger, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			dto.WriteProblem(c, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		isAdmin, err := authz.IsAdmin(c.Request.Context(), principal.Subject)
		if err != nil {
			logger.Error("admin check failed", "subject", principal.Subject, "error", err)
			dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
			return
		}

		if !isAdmin {
			logger.Warn("admin access denied",
				"subject", principal.Subject,
				"resource", resource,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			metrics.AccessDenied(resource)
			dto.WriteProblem(c, dto.ForbiddenErrorResponseI18n(c))
			return
		}

		c.Next()
	}
}
