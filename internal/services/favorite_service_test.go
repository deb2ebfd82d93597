package services_test

import (
	"context"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
)

var _ = Describe("FavoriteService", func() {
	var (
		e       *env
		ctx     context.Context
		product *entities.Product
		recipe  *entities.Recipe
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
		product = e.mustProduct("Caciocavallo", entities.CategoryKaese)
		recipe = e.mustRecipe(product.ID, "Gratin")
	})

	Describe("AddFavorite", func() {
		It("cria o usuário no primeiro favorito e preenche receita e produto", func() {
			favorite, created, err := e.favorite.AddFavorite(ctx, principal("anna"), recipe.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())
			Expect(favorite.Recipe.Title).To(Equal("Gratin"))
			Expect(favorite.Product.Title).To(Equal("Caciocavallo"))
			Expect(favorite.CreatedAt).NotTo(BeZero())
			Expect(e.users.Count(ctx)).To(Equal(int64(1)))
		})

		It("é idempotente", func() {
			first, created, err := e.favorite.AddFavorite(ctx, principal("anna"), recipe.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			second, created, err := e.favorite.AddFavorite(ctx, principal("anna"), recipe.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())
			Expect(second.ID).To(Equal(first.ID))
			Expect(e.favorites.Count(ctx)).To(Equal(int64(1)))
		})

		It("retorna ErrRecipeNotFound para receita inexistente", func() {
			_, _, err := e.favorite.AddFavorite(ctx, principal("anna"), 404)
			Expect(err).To(MatchError(domainerrors.ErrRecipeNotFound))
		})

		It("chamadas concorrentes persistem um único favorito", func() {
			var wg sync.WaitGroup
			results := make([]bool, 2)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					_, created, err := e.favorite.AddFavorite(ctx, principal("race"), recipe.ID)
					Expect(err).NotTo(HaveOccurred())
					results[i] = created
				}(i)
			}
			wg.Wait()

			Expect(e.favorites.Count(ctx)).To(Equal(int64(1)))
			Expect(e.users.Count(ctx)).To(Equal(int64(1)))
			Expect(results).To(ContainElement(true))
		})
	})

	Describe("ToggleFavorite", func() {
		It("duas chamadas restauram o estado inicial", func() {
			state, err := e.favorite.ToggleFavorite(ctx, principal("anna"), recipe.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(state).To(BeTrue())
			Expect(e.favorite.IsFavorite(ctx, "anna", recipe.ID)).To(BeTrue())

			state, err = e.favorite.ToggleFavorite(ctx, principal("anna"), recipe.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(state).To(BeFalse())
			Expect(e.favorite.IsFavorite(ctx, "anna", recipe.ID)).To(BeFalse())
		})

		It("retorna ErrRecipeNotFound ao adicionar receita inexistente", func() {
			_, err := e.favorite.ToggleFavorite(ctx, principal("anna"), 404)
			Expect(err).To(MatchError(domainerrors.ErrRecipeNotFound))
		})
	})

	Describe("RemoveFavorite", func() {
		It("retorna ErrFavoriteNotFound quando não existe", func() {
			err := e.favorite.RemoveFavorite(ctx, "anna", recipe.ID)
			Expect(err).To(MatchError(domainerrors.ErrFavoriteNotFound))
		})

		It("remove apenas o favorito do chamador", func() {
			_, _, err := e.favorite.AddFavorite(ctx, principal("anna"), recipe.ID)
			Expect(err).NotTo(HaveOccurred())
			_, _, err = e.favorite.AddFavorite(ctx, principal("ben"), recipe.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(e.favorite.RemoveFavorite(ctx, "anna", recipe.ID)).To(Succeed())
			Expect(e.favorite.CountFavorites(ctx, "anna")).To(BeZero())
			Expect(e.favorite.CountFavorites(ctx, "ben")).To(Equal(int64(1)))
		})
	})

	Describe("consultas", func() {
		It("lista, ids e contagem do chamador", func() {
			second := e.mustRecipe(product.ID, "Fonduta")
			_, _, err := e.favorite.AddFavorite(ctx, principal("anna"), recipe.ID)
			Expect(err).NotTo(HaveOccurred())
			_, _, err = e.favorite.AddFavorite(ctx, principal("anna"), second.ID)
			Expect(err).NotTo(HaveOccurred())

			list, err := e.favorite.ListFavorites(ctx, "anna")
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))

			Expect(e.favorite.FavoriteRecipeIDs(ctx, "anna")).To(ConsistOf(recipe.ID, second.ID))
			Expect(e.favorite.CountFavorites(ctx, "anna")).To(Equal(int64(2)))
			Expect(e.favorite.ListFavorites(ctx, "nobody")).To(BeEmpty())
		})

		It("estatísticas usam o total de usuários", func() {
			stats, err := e.favorite.Stats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.AveragePerUser).To(BeZero())

			_, _, err = e.favorite.AddFavorite(ctx, principal("anna"), recipe.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = e.identity.Resolve(ctx, principal("ben"))
			Expect(err).NotTo(HaveOccurred())

			stats, err = e.favorite.Stats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalFavorites).To(Equal(int64(1)))
			Expect(stats.TotalUsers).To(Equal(int64(2)))
			Expect(stats.AveragePerUser).To(Equal(0.5))

			all, err := e.favorite.ListAllFavorites(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
			Expect(all[0].User.OAuthID).To(Equal("anna"))
		})
	})
})
