package ports

import (
	"context"

	"github.com/casellese/catalog-backend/internal/domain/entities"
)

// ProductCache guarda produtos lidos por ID.
// Falhas do cache nunca devem falhar a requisição.
//
// Em um miss, Get devolve a geração atual da entrada. Set recebe essa geração
// e não grava se houve Invalidate no meio, o que impede que uma leitura antiga
// sobrescreva uma atualização. Geração negativa significa "não gravar".
type ProductCache interface {
	Get(ctx context.Context, id uint) (product *entities.Product, generation int64, ok bool)
	Set(ctx context.Context, product *entities.Product, generation int64)
	Invalidate(ctx context.Context, id uint)
}
