package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/casellese/catalog-backend/internal/infrastructure/i18n"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=de (override explícito)
// 2. Accept-Language header (preferência do browser)
// 3. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" && m.i18nService.IsLanguageSupported(queryLang) {
			lang = queryLang
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(i18n.LanguageContextKey, lang)
		c.Set(i18n.ServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage retorna o primeiro idioma suportado, respeitando os pesos q
// Exemplo: "de-CH,de;q=0.9,en;q=0.8" -> "de"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil {
		return ""
	}

	for _, tag := range tags {
		if m.i18nService.IsLanguageSupported(tag.String()) {
			return tag.String()
		}

		// variação sem região (de-CH -> de)
		if base, confidence := tag.Base(); confidence != language.No && m.i18nService.IsLanguageSupported(base.String()) {
			return base.String()
		}
	}

	return ""
}
