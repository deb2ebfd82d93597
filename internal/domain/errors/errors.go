package errors

import (
	"errors"
	"strings"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound     = errors.New("error.user_not_found")
	ErrProductNotFound  = errors.New("error.product_not_found")
	ErrRecipeNotFound   = errors.New("error.recipe_not_found")
	ErrReviewNotFound   = errors.New("error.review_not_found")
	ErrFavoriteNotFound = errors.New("error.favorite_not_found")
	ErrUnauthorized     = errors.New("error.unauthorized")
	ErrForbidden        = errors.New("error.forbidden")
	ErrAlreadyExists    = errors.New("error.already_exists")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
var (
	ErrInvalidEmail         = errors.New("error.invalid_email")
	ErrBlankOAuthID         = errors.New("error.blank_oauth_id")
	ErrOAuthIDImmutable     = errors.New("error.oauth_id_immutable")
	ErrInvalidStars         = errors.New("error.invalid_stars")
	ErrReviewProductMissing = errors.New("error.review_product_missing")
)

// Códigos de validação por campo (message IDs para i18n)
const (
	ValidationRequired        = "validation.required"
	ValidationTooShort        = "validation.too_short"
	ValidationTooLong         = "validation.too_long"
	ValidationNegative        = "validation.negative"
	ValidationInvalidCategory = "validation.invalid_category"
	ValidationInvalidRole     = "validation.invalid_role"
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// FieldError descreve uma violação de regra em um campo
type FieldError struct {
	Field string
	Code  string
}

// ValidationErrors agrega violações de regras de entidade
type ValidationErrors []FieldError

// Add registra uma violação
func (v *ValidationErrors) Add(field, code string) {
	*v = append(*v, FieldError{Field: field, Code: code})
}

// OrNil retorna nil quando não há violações
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Code
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// IsBadRequest indica erros de domínio que representam entrada inválida (400)
func IsBadRequest(err error) bool {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return true
	}
	for _, target := range []error{ErrInvalidEmail, ErrBlankOAuthID, ErrOAuthIDImmutable, ErrInvalidStars, ErrReviewProductMissing} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
