package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"

	"github.com/casellese/catalog-backend/internal/infrastructure/i18n"
)

func setupTestI18n(t *testing.T) *i18n.Service {
	t.Helper()

	locales := fstest.MapFS{
		"en.json": {Data: []byte(`{"welcome": "Welcome"}`)},
		"de.json": {Data: []byte(`{"welcome": "Willkommen"}`)},
	}

	service, err := i18n.NewServiceFromFS(locales, "en")
	if err != nil {
		t.Fatalf("failed to initialize i18n service: %v", err)
	}

	return service
}

func TestI18nMiddleware_DetectLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	i18nService := setupTestI18n(t)
	middleware := NewI18nMiddleware(i18nService)

	detect := func(t *testing.T, target, acceptLanguage string) string {
		t.Helper()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if acceptLanguage != "" {
			req.Header.Set("Accept-Language", acceptLanguage)
		}
		c.Request = req

		middleware.DetectLanguage()(c)

		lang, exists := c.Get(i18n.LanguageContextKey)
		if !exists {
			t.Fatal("idioma não foi definido no contexto")
		}
		return lang.(string)
	}

	t.Run("detecta idioma do query parameter", func(t *testing.T) {
		if lang := detect(t, "/?lang=de", ""); lang != "de" {
			t.Errorf("esperava 'de', obteve '%s'", lang)
		}
	})

	t.Run("detecta idioma do Accept-Language header", func(t *testing.T) {
		if lang := detect(t, "/", "de,en;q=0.9"); lang != "de" {
			t.Errorf("esperava 'de', obteve '%s'", lang)
		}
	})

	t.Run("usa idioma padrão quando nenhum é especificado", func(t *testing.T) {
		if lang := detect(t, "/", ""); lang != "en" {
			t.Errorf("esperava 'en' (padrão), obteve '%s'", lang)
		}
	})

	t.Run("query parameter tem prioridade sobre Accept-Language", func(t *testing.T) {
		if lang := detect(t, "/?lang=en", "de"); lang != "en" {
			t.Errorf("esperava 'en', obteve '%s'", lang)
		}
	})

	t.Run("ignora query parameter inválido e usa Accept-Language", func(t *testing.T) {
		if lang := detect(t, "/?lang=fr", "de"); lang != "de" {
			t.Errorf("esperava 'de', obteve '%s'", lang)
		}
	})

	t.Run("define serviço i18n no contexto", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		middleware.DetectLanguage()(c)

		service, exists := c.Get(i18n.ServiceContextKey)
		if !exists {
			t.Fatal("serviço i18n não foi definido no contexto")
		}

		if service == nil {
			t.Error("serviço i18n é nulo")
		}
	})
}

func TestI18nMiddleware_parseAcceptLanguage(t *testing.T) {
	i18nService := setupTestI18n(t)
	middleware := NewI18nMiddleware(i18nService)

	tests := []struct {
		name       string
		acceptLang string
		expected   string
	}{
		{
			name:       "idioma único suportado",
			acceptLang: "de",
			expected:   "de",
		},
		{
			name:       "múltiplos idiomas, primeiro não suportado",
			acceptLang: "fr,de;q=0.9,en;q=0.8",
			expected:   "de",
		},
		{
			name:       "respeita o peso q e não a ordem",
			acceptLang: "en;q=0.5,de;q=0.9",
			expected:   "de",
		},
		{
			name:       "idioma com região usa a base",
			acceptLang: "de-CH",
			expected:   "de",
		},
		{
			name:       "nenhum idioma suportado",
			acceptLang: "fr,it;q=0.9",
			expected:   "",
		},
		{
			name:       "header vazio",
			acceptLang: "",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.parseAcceptLanguage(tt.acceptLang)
			if result != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, result)
			}
		})
	}
}

func TestI18nMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	i18nService := setupTestI18n(t)
	middleware := NewI18nMiddleware(i18nService)

	router := gin.New()
	router.Use(middleware.DetectLanguage())
	router.GET("/test", func(c *gin.Context) {
		lang := c.GetString(i18n.LanguageContextKey)
		service, _ := c.Get(i18n.ServiceContextKey)
		i18nSvc := service.(*i18n.Service)

		c.JSON(http.StatusOK, gin.H{"message": i18nSvc.T(lang, "welcome")})
	})

	t.Run("integração completa com alemão via Accept-Language", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperava status 200, obteve %d", w.Code)
		}

		expected := `{"message":"Willkommen"}`
		if w.Body.String() != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, w.Body.String())
		}
	})
}
