package postgres

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/casellese/catalog-backend/internal/domain/entities"
)

// newTestDB abre um SQLite em memória isolado por teste e aplica as migrações
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.Map(func(r rune) rune {
		if r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, t.Name())
	db, err := OpenSQLite("file:"+name+"?mode=memory&cache=shared", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func uintPtr(v uint) *uint {
	return &v
}

func newTestProduct(title string, category entities.Category) *entities.Product {
	return &entities.Product{
		Title:       title,
		Description: "Beschreibung von " + title,
		Category:    category,
		Price:       9.99,
		ImageURL:    "https://img.example.com/" + strings.ToLower(title) + ".jpg",
	}
}
