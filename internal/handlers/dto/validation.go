package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
)

var registerOnce sync.Once

// RegisterValidators configura o validator do Gin: nomes de campo pelo json e tags do catálogo
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			_, ok := entities.ParseCategory(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			_, ok := entities.ParseRole(fl.Field().String())
			return ok
		})
	})
}

// FieldErrors converte erros do validator ou de entidades em ValidationError traduzidos.
// Retorna nil para erros que não são de validação.
func FieldErrors(c *gin.Context, err error) []ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		result := make([]ValidationError, 0, len(verrs))
		for _, fe := range verrs {
			result = append(result, ValidationError{
				Field:   fe.Field(),
				Message: T(c, validationKey(fe.Tag()), map[string]any{"Field": fe.Field(), "Param": fe.Param()}),
				Tag:     fe.Tag(),
			})
		}
		return result
	}

	var domainErrs domainerrors.ValidationErrors
	if errors.As(err, &domainErrs) {
		result := make([]ValidationError, 0, len(domainErrs))
		for _, fe := range domainErrs {
			result = append(result, ValidationError{
				Field:   fe.Field,
				Message: T(c, fe.Code, map[string]any{"Field": fe.Field}),
				Tag:     strings.TrimPrefix(fe.Code, "validation."),
			})
		}
		return result
	}

	return nil
}

func validationKey(tag string) string {
	switch tag {
	case "required", "notblank", "min", "max", "gte", "lte", "email", "category", "role":
		return "validation." + tag
	default:
		return "validation.invalid"
	}
}

// BindJSON faz o bind do corpo e responde 400 quando inválido
func BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if fields := FieldErrors(c, err); fields != nil {
			WriteProblem(c, ValidationErrorResponseI18n(c, fields))
			return false
		}
		WriteProblem(c, BadRequestErrorResponseI18n(c, "error.invalid_body"))
		return false
	}
	return true
}
