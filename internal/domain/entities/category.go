package entities

import "strings"

// Category representa a categoria de um produto do catálogo
type Category string

const (
	CategoryKaese  Category = "KAESE"
	CategorySalami Category = "SALAMI"
	CategoryBrot   Category = "BROT"
)

var categoryGermanNames = map[Category]string{
	CategoryKaese:  "Käse",
	CategorySalami: "Salami",
	CategoryBrot:   "Brot",
}

// Categories retorna todas as categorias na ordem de exibição
func Categories() []Category {
	return []Category{CategoryKaese, CategorySalami, CategoryBrot}
}

// GermanName retorna o nome de exibição em alemão
func (c Category) GermanName() string {
	return categoryGermanNames[c]
}

// IsValid verifica se a categoria existe
func (c Category) IsValid() bool {
	_, ok := categoryGermanNames[c]
	return ok
}

// ParseCategory converte uma string (case-insensitive) em Category
func ParseCategory(value string) (Category, bool) {
	category := Category(strings.ToUpper(strings.TrimSpace(value)))
	if !category.IsValid() {
		return "", false
	}
	return category, true
}
