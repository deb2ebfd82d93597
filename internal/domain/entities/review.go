package entities

import (
	"time"

	"github.com/casellese/catalog-backend/internal/domain/errors"
)

const (
	MinStars = 1
	MaxStars = 5
)

// Review representa uma avaliação de produto.
// UserName é texto livre, sem vínculo com User.
type Review struct {
	ID        uint
	Stars     int
	Text      string
	UserName  string
	ProductID *uint
	CreatedAt time.Time
}

// ValidateStars verifica se a nota está entre 1 e 5
func (r *Review) ValidateStars() error {
	if r.Stars < MinStars || r.Stars > MaxStars {
		return errors.ErrInvalidStars
	}
	return nil
}
