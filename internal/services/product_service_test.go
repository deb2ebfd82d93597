package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
)

// countingCache registra chamadas para verificar leitura e invalidação.
// beforeSet roda antes da escrita para simular uma atualização concorrente.
type countingCache struct {
	entries     map[uint]*entities.Product
	generations map[uint]int64
	hits        int
	invalidated []uint
	beforeSet   func()
}

func newCountingCache() *countingCache {
	return &countingCache{
		entries:     map[uint]*entities.Product{},
		generations: map[uint]int64{},
	}
}

func (c *countingCache) Get(_ context.Context, id uint) (*entities.Product, int64, bool) {
	p, ok := c.entries[id]
	if ok {
		c.hits++
	}
	return p, c.generations[id], ok
}

func (c *countingCache) Set(_ context.Context, product *entities.Product, generation int64) {
	if hook := c.beforeSet; hook != nil {
		c.beforeSet = nil
		hook()
	}
	if c.generations[product.ID] != generation {
		return
	}
	c.entries[product.ID] = product
}

func (c *countingCache) Invalidate(_ context.Context, id uint) {
	delete(c.entries, id)
	c.generations[id]++
	c.invalidated = append(c.invalidated, id)
}

var _ = Describe("ProductService", func() {
	var (
		e   *env
		ctx context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
	})

	It("cria e lê de volta com preço padrão 0", func() {
		created, err := e.product.CreateProduct(ctx, &entities.Product{
			ID:       77,
			Title:    "Neuer Käse",
			Category: entities.CategoryKaese,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(created.ID).NotTo(Equal(uint(77)))

		found, err := e.product.GetProduct(ctx, created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Title).To(Equal("Neuer Käse"))
		Expect(found.Category).To(Equal(entities.CategoryKaese))
		Expect(found.Price).To(BeZero())
	})

	It("rejeita produto inválido antes de persistir", func() {
		_, err := e.product.CreateProduct(ctx, &entities.Product{Title: "X", Category: "WEIN", Price: -1})

		var verrs domainerrors.ValidationErrors
		Expect(err).To(BeAssignableToTypeOf(verrs))
		Expect(domainerrors.IsBadRequest(err)).To(BeTrue())
		Expect(e.products.Count(ctx)).To(BeZero())
	})

	It("filtra por nome e categoria", func() {
		e.mustProduct("Caciocavallo", entities.CategoryKaese)
		e.mustProduct("Salsiccia", entities.CategorySalami)

		name := "SALS"
		list, err := e.product.ListProducts(ctx, repositories.ProductFilters{Name: &name})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].Title).To(Equal("Salsiccia"))
	})

	It("atualiza sobrescrevendo todos os campos", func() {
		product := e.mustProduct("Focaccia", entities.CategoryBrot)

		updated, err := e.product.UpdateProduct(ctx, product.ID, &entities.Product{
			Title:       "Focaccia Genovese",
			Category:    entities.CategoryBrot,
			Price:       5.5,
			Description: "Neu",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Title).To(Equal("Focaccia Genovese"))
		Expect(updated.Price).To(Equal(5.5))
		Expect(updated.Description).To(Equal("Neu"))
	})

	It("retorna ErrProductNotFound para id inexistente", func() {
		_, err := e.product.GetProduct(ctx, 404)
		Expect(err).To(MatchError(domainerrors.ErrProductNotFound))

		_, err = e.product.UpdateProduct(ctx, 404, &entities.Product{Title: "Xy", Category: entities.CategoryBrot})
		Expect(err).To(MatchError(domainerrors.ErrProductNotFound))

		Expect(e.product.DeleteProduct(ctx, 404)).To(MatchError(domainerrors.ErrProductNotFound))
	})

	Describe("remoção em cascata", func() {
		It("remove receitas e favoritos mas preserva avaliações", func() {
			product := e.mustProduct("Caciocavallo", entities.CategoryKaese)
			other := e.mustProduct("Focaccia", entities.CategoryBrot)
			recipe := e.mustRecipe(product.ID, "Gratin")
			otherRecipe := e.mustRecipe(other.ID, "Bruschetta")

			_, _, err := e.favorite.AddFavorite(ctx, principal("anna"), recipe.ID)
			Expect(err).NotTo(HaveOccurred())
			_, _, err = e.favorite.AddFavorite(ctx, principal("anna"), otherRecipe.ID)
			Expect(err).NotTo(HaveOccurred())

			review, err := e.review.CreateReview(ctx, &entities.Review{Stars: 5, UserName: "Anna", ProductID: &product.ID})
			Expect(err).NotTo(HaveOccurred())

			Expect(e.product.DeleteProduct(ctx, product.ID)).To(Succeed())

			_, err = e.recipe.GetRecipe(ctx, recipe.ID)
			Expect(err).To(MatchError(domainerrors.ErrRecipeNotFound))

			Expect(e.favorite.FavoriteRecipeIDs(ctx, "anna")).To(Equal([]uint{otherRecipe.ID}))

			kept, err := e.reviews.FindByID(ctx, review.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(kept).NotTo(BeNil())
			Expect(kept.ProductID).To(BeNil())

			Expect(e.recipe.ListRecipes(ctx)).To(HaveLen(1))
		})
	})

	Describe("cache", func() {
		It("serve leituras repetidas do cache e invalida em update e delete", func() {
			c := newCountingCache()
			e = newEnvWithCache(c)
			product := e.mustProduct("Salsiccia", entities.CategorySalami)

			_, err := e.product.GetProduct(ctx, product.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = e.product.GetProduct(ctx, product.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.hits).To(Equal(1))

			_, err = e.product.UpdateProduct(ctx, product.ID, &entities.Product{Title: "Salsiccia piccante", Category: entities.CategorySalami})
			Expect(err).NotTo(HaveOccurred())
			Expect(c.entries).NotTo(HaveKey(product.ID))

			Expect(e.product.DeleteProduct(ctx, product.ID)).To(Succeed())
			Expect(c.invalidated).To(Equal([]uint{product.ID, product.ID}))
		})

		It("não regrava um produto lido antes de uma atualização concorrente", func() {
			c := newCountingCache()
			e = newEnvWithCache(c)
			product := e.mustProduct("Caciocavallo", entities.CategoryKaese)

			c.beforeSet = func() {
				_, err := e.product.UpdateProduct(ctx, product.ID, &entities.Product{
					Title:    "Caciocavallo stagionato",
					Category: entities.CategoryKaese,
					Price:    15,
				})
				Expect(err).NotTo(HaveOccurred())
			}

			stale, err := e.product.GetProduct(ctx, product.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stale.Title).To(Equal("Caciocavallo"))
			Expect(c.entries).NotTo(HaveKey(product.ID))

			fresh, err := e.product.GetProduct(ctx, product.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fresh.Title).To(Equal("Caciocavallo stagionato"))
			Expect(c.entries).To(HaveKey(product.ID))
		})

		It("não ressuscita um produto removido durante a leitura", func() {
			c := newCountingCache()
			e = newEnvWithCache(c)
			product := e.mustProduct("Salsiccia", entities.CategorySalami)

			c.beforeSet = func() {
				Expect(e.product.DeleteProduct(ctx, product.ID)).To(Succeed())
			}

			_, err := e.product.GetProduct(ctx, product.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = e.product.GetProduct(ctx, product.ID)
			Expect(err).To(MatchError(domainerrors.ErrProductNotFound))
		})
	})
})
