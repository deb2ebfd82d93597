package entities

import (
	"time"

	"github.com/casellese/catalog-backend/internal/domain/errors"
)

const (
	ProductTitleMinLength       = 2
	ProductTitleMaxLength       = 200
	ProductDescriptionMaxLength = 2000
	ProductIngredientsMaxLength = 2000
)

// Product representa um produto do catálogo
type Product struct {
	ID              uint
	Title           string
	Description     string
	Category        Category
	Price           float64
	ImageURL        string
	ImageURLDetails string
	Ingredients     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate valida regras de negócio da entidade Product
func (p *Product) Validate() error {
	var errs errors.ValidationErrors

	checkLength(&errs, "title", p.Title, ProductTitleMinLength, ProductTitleMaxLength)
	checkLength(&errs, "description", p.Description, 0, ProductDescriptionMaxLength)
	checkLength(&errs, "ingredients", p.Ingredients, 0, ProductIngredientsMaxLength)

	if p.Category == "" {
		errs.Add("category", errors.ValidationRequired)
	} else if !p.Category.IsValid() {
		errs.Add("category", errors.ValidationInvalidCategory)
	}

	if p.Price < 0 {
		errs.Add("price", errors.ValidationNegative)
	}

	return errs.OrNil()
}

// Overwrite copia todos os campos editáveis de outro produto (update completo)
func (p *Product) Overwrite(other *Product) {
	p.Title = other.Title
	p.Description = other.Description
	p.Category = other.Category
	p.Price = other.Price
	p.ImageURL = other.ImageURL
	p.ImageURLDetails = other.ImageURLDetails
	p.Ingredients = other.Ingredients
}
