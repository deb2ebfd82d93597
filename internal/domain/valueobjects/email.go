package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que garante que emails sejam sempre válidos.
// O valor zero representa "sem email".
type Email struct {
	value string
}

// NewEmail cria um novo Email validado
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if !isValidEmail(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// NewOptionalEmail aceita string vazia como ausência de email
func NewOptionalEmail(email string) (Email, error) {
	if strings.TrimSpace(email) == "" {
		return Email{}, nil
	}
	return NewEmail(email)
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// IsZero indica se nenhum email foi informado
func (e Email) IsZero() bool {
	return e.value == ""
}

// isValidEmail valida o formato do email
func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}

	return emailPattern.MatchString(email)
}
