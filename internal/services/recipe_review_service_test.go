package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
)

var _ = Describe("RecipeService", func() {
	var (
		e       *env
		ctx     context.Context
		product *entities.Product
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
		product = e.mustProduct("Caciocavallo", entities.CategoryKaese)
	})

	It("cria vinculada ao produto e lista por produto", func() {
		recipe, err := e.recipe.CreateRecipe(ctx, product.ID, &entities.Recipe{
			ID:         99,
			Title:      "Gratin",
			Text:       "Im Ofen überbacken",
			YouTubeURL: "https://youtube.com/watch?v=abc",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(recipe.ID).NotTo(Equal(uint(99)))
		Expect(*recipe.ProductID).To(Equal(product.ID))

		list, err := e.recipe.ListByProduct(ctx, product.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].YouTubeURL).To(Equal("https://youtube.com/watch?v=abc"))
	})

	It("retorna ErrProductNotFound para produto inexistente", func() {
		_, err := e.recipe.CreateRecipe(ctx, 404, &entities.Recipe{Title: "Gratin"})
		Expect(err).To(MatchError(domainerrors.ErrProductNotFound))

		_, err = e.recipe.ListByProduct(ctx, 404)
		Expect(err).To(MatchError(domainerrors.ErrProductNotFound))
	})

	It("valida o título", func() {
		_, err := e.recipe.CreateRecipe(ctx, product.ID, &entities.Recipe{Title: "G"})
		Expect(domainerrors.IsBadRequest(err)).To(BeTrue())
	})

	It("atualiza sem trocar o produto", func() {
		recipe := e.mustRecipe(product.ID, "Gratin")

		updated, err := e.recipe.UpdateRecipe(ctx, recipe.ID, &entities.Recipe{Title: "Fonduta", PDFURL: "https://x/y.pdf"})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Title).To(Equal("Fonduta"))
		Expect(updated.PDFURL).To(Equal("https://x/y.pdf"))
		Expect(*updated.ProductID).To(Equal(product.ID))
	})

	It("remove a receita e seus favoritos", func() {
		recipe := e.mustRecipe(product.ID, "Gratin")
		_, _, err := e.favorite.AddFavorite(ctx, principal("anna"), recipe.ID)
		Expect(err).NotTo(HaveOccurred())

		Expect(e.recipe.DeleteRecipe(ctx, recipe.ID)).To(Succeed())
		Expect(e.favorite.CountFavorites(ctx, "anna")).To(BeZero())
		Expect(e.recipe.DeleteRecipe(ctx, recipe.ID)).To(MatchError(domainerrors.ErrRecipeNotFound))
	})
})

var _ = Describe("ReviewService", func() {
	var (
		e       *env
		ctx     context.Context
		product *entities.Product
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
		product = e.mustProduct("Focaccia", entities.CategoryBrot)
	})

	DescribeTable("valida estrelas entre 1 e 5",
		func(stars int, ok bool) {
			_, err := e.review.CreateReview(ctx, &entities.Review{Stars: stars, UserName: "Anna", ProductID: &product.ID})
			if ok {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(MatchError(domainerrors.ErrInvalidStars))
			}
		},
		Entry("zero", 0, false),
		Entry("um", 1, true),
		Entry("cinco", 5, true),
		Entry("seis", 6, false),
	)

	It("rejeita produto ausente ou inexistente", func() {
		_, err := e.review.CreateReview(ctx, &entities.Review{Stars: 4})
		Expect(err).To(MatchError(domainerrors.ErrReviewProductMissing))

		missing := uint(404)
		_, err = e.review.CreateReview(ctx, &entities.Review{Stars: 4, ProductID: &missing})
		Expect(err).To(MatchError(domainerrors.ErrReviewProductMissing))
		Expect(domainerrors.IsBadRequest(err)).To(BeTrue())
	})

	It("lista por produto e remove", func() {
		review, err := e.review.CreateReview(ctx, &entities.Review{Stars: 4, Text: "Gut", UserName: "Ben", ProductID: &product.ID})
		Expect(err).NotTo(HaveOccurred())

		Expect(e.review.ListByProduct(ctx, product.ID)).To(HaveLen(1))
		Expect(e.review.ListByProduct(ctx, 404)).To(BeEmpty())

		Expect(e.review.DeleteReview(ctx, review.ID)).To(Succeed())
		Expect(e.review.DeleteReview(ctx, review.ID)).To(MatchError(domainerrors.ErrReviewNotFound))
		Expect(e.review.ListReviews(ctx)).To(BeEmpty())
	})
})
