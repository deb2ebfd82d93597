package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/casellese/catalog-backend/internal/infrastructure/i18n"
)

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "error.not_found.detail", map[string]any{"Resource": "Produkt"})
func T(c *gin.Context, key string, params ...map[string]any) string {
	value, exists := c.Get(i18n.ServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(i18n.LanguageContextKey); lang != "" {
		return lang
	}
	return "en"
}
