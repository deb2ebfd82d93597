package entities

import (
	"time"

	"github.com/casellese/catalog-backend/internal/domain/errors"
)

const (
	RecipeTitleMinLength = 2
	RecipeTitleMaxLength = 200
	RecipeTextMaxLength  = 10000
)

// Recipe representa uma receita vinculada a um produto
type Recipe struct {
	ID         uint
	Title      string
	Text       string
	PDFURL     string
	YouTubeURL string
	ProductID  *uint
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate valida regras de negócio da entidade Recipe
func (r *Recipe) Validate() error {
	var errs errors.ValidationErrors

	checkLength(&errs, "title", r.Title, RecipeTitleMinLength, RecipeTitleMaxLength)
	checkLength(&errs, "text", r.Text, 0, RecipeTextMaxLength)

	return errs.OrNil()
}

// Overwrite copia título, texto e links de outra receita
func (r *Recipe) Overwrite(other *Recipe) {
	r.Title = other.Title
	r.Text = other.Text
	r.PDFURL = other.PDFURL
	r.YouTubeURL = other.YouTubeURL
}
