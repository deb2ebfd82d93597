package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler responde o estado da aplicação e do banco
type HealthHandler struct {
	env  string
	ping func(ctx context.Context) error
}

// NewHealthHandler cria o handler; ping verifica o banco
func NewHealthHandler(env string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{env: env, ping: ping}
}

// Health
//
//	@Summary	Health check
//	@Tags		operations
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	map[string]string
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unavailable",
			"env":      h.env,
			"database": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"env":      h.env,
		"database": "ok",
	})
}
