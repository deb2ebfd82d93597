package postgres

import (
	"errors"

	"gorm.io/gorm"

	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
)

// translateWriteError mapeia erros de escrita do GORM para erros de domínio
func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrAlreadyExists
	}
	return err
}

// isNotFound indica ausência de registro
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
