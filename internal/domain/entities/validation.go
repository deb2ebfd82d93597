package entities

import (
	"strings"
	"unicode/utf8"

	"github.com/casellese/catalog-backend/internal/domain/errors"
)

// checkLength valida tamanho mínimo/máximo em caracteres (não bytes)
func checkLength(errs *errors.ValidationErrors, field, value string, minLen, maxLen int) {
	n := utf8.RuneCountInString(value)
	if minLen > 0 && strings.TrimSpace(value) == "" {
		errs.Add(field, errors.ValidationRequired)
		return
	}
	if minLen > 0 && n < minLen {
		errs.Add(field, errors.ValidationTooShort)
		return
	}
	if maxLen > 0 && n > maxLen {
		errs.Add(field, errors.ValidationTooLong)
	}
}
