package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
	"github.com/casellese/catalog-backend/internal/services"
)

func strPtr(s string) *string {
	return &s
}

var _ = Describe("UserService", func() {
	var (
		e   *env
		ctx context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
	})

	It("perfil cria o usuário na primeira leitura", func() {
		user, err := e.user.GetProfile(ctx, principal("anna"))
		Expect(err).NotTo(HaveOccurred())
		Expect(user.Role).To(Equal(entities.RoleRegular))
	})

	It("atualização de perfil sem usuário retorna ErrUserNotFound", func() {
		_, err := e.user.UpdateProfile(ctx, "ghost", services.UpdateProfileInput{Name: strPtr("X")})
		Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
	})

	It("atualiza nome e email do perfil sem alterar o papel", func() {
		_, err := e.user.GetProfile(ctx, principal("anna"))
		Expect(err).NotTo(HaveOccurred())

		user, err := e.user.UpdateProfile(ctx, "anna", services.UpdateProfileInput{
			Name:  strPtr("Anna Rossi"),
			Email: strPtr("anna.rossi@example.com"),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(user.Name).To(Equal("Anna Rossi"))
		Expect(user.Email.String()).To(Equal("anna.rossi@example.com"))
		Expect(user.Role).To(Equal(entities.RoleRegular))
	})

	It("rejeita email malformado antes de persistir", func() {
		_, err := e.user.GetProfile(ctx, principal("anna"))
		Expect(err).NotTo(HaveOccurred())

		_, err = e.user.UpdateProfile(ctx, "anna", services.UpdateProfileInput{Email: strPtr("kaputt")})
		Expect(err).To(MatchError(domainerrors.ErrInvalidEmail))

		stored, err := e.users.FindByOAuthID(ctx, "anna")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Email.String()).To(Equal("anna@example.com"))
	})

	It("admin altera o papel de outro usuário", func() {
		target, err := e.user.GetProfile(ctx, principal("ben"))
		Expect(err).NotTo(HaveOccurred())

		admin := entities.RoleAdmin
		updated, err := e.user.UpdateUser(ctx, target.ID, services.UpdateUserInput{Role: &admin})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.IsAdmin()).To(BeTrue())
		Expect(e.identity.IsAdmin(ctx, "ben")).To(BeTrue())

		_, err = e.user.GetUser(ctx, 404)
		Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		Expect(e.user.ListUsers(ctx)).To(HaveLen(1))
	})

	It("não permite limpar o email de uma conta ainda não vinculada", func() {
		provisioned, err := entities.NewProvisionedUser("chef@casellese.de", "Chef", entities.RoleAdmin)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.users.Create(ctx, provisioned)).To(Succeed())

		_, err = e.user.UpdateUser(ctx, provisioned.ID, services.UpdateUserInput{Email: strPtr("")})

		var verrs domainerrors.ValidationErrors
		Expect(errors.As(err, &verrs)).To(BeTrue())
		Expect(verrs).To(ConsistOf(domainerrors.FieldError{Field: "email", Code: domainerrors.ValidationRequired}))

		stored, err := e.users.FindByID(ctx, provisioned.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Email.String()).To(Equal("chef@casellese.de"))
	})
})

var _ = Describe("SeedService", func() {
	var (
		e   *env
		ctx context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
	})

	It("carrega o catálogo uma única vez", func() {
		result, err := e.seed.Run(ctx, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.ProductsCreated).To(Equal(3))

		again, err := e.seed.Run(ctx, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(again.ProductsCreated).To(BeZero())
		Expect(again.ProductsSkipped).To(Equal(3))

		Expect(e.products.Count(ctx)).To(Equal(int64(3)))
		Expect(e.recipe.ListRecipes(ctx)).To(HaveLen(3))
		Expect(e.review.ListReviews(ctx)).To(HaveLen(4))

		category := entities.CategoryKaese
		cheese, err := e.product.ListProducts(ctx, repositories.ProductFilters{Category: &category})
		Expect(err).NotTo(HaveOccurred())
		Expect(cheese).To(HaveLen(1))
		Expect(cheese[0].Price).To(Equal(12.99))
	})

	It("preenche imagens de vitrine e de receitas de cada produto", func() {
		_, err := e.seed.Run(ctx, "")
		Expect(err).NotTo(HaveOccurred())

		products, err := e.product.ListProducts(ctx, repositories.ProductFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(products).To(HaveLen(3))

		images := map[string][2]string{}
		for _, p := range products {
			Expect(p.Description).NotTo(BeEmpty())
			images[p.Title] = [2]string{p.ImageURL, p.ImageURLDetails}
		}
		Expect(images).To(Equal(map[string][2]string{
			"Caciocavallo": {
				"https://nucccio.github.io/casellese-images/caciocavallo.webp",
				"https://nucccio.github.io/casellese-images/caciocavallo-rezepte.webp",
			},
			"Salsiccia": {
				"https://nucccio.github.io/casellese-images/salsiccia.webp",
				"https://nucccio.github.io/casellese-images/salsiccia-rezepte.webp",
			},
			"Focaccia": {
				"https://nucccio.github.io/casellese-images/brot.webp",
				"https://nucccio.github.io/casellese-images/brot-rezepte.webp",
			},
		}))
	})

	It("provisiona o admin e vincula no primeiro login", func() {
		result, err := e.seed.Run(ctx, "Admin@Casellese.de")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.AdminProvisioned).To(BeTrue())

		again, err := e.seed.Run(ctx, "admin@casellese.de")
		Expect(err).NotTo(HaveOccurred())
		Expect(again.AdminProvisioned).To(BeFalse())

		user, err := e.identity.Resolve(ctx, &ports.Principal{Subject: "auth0-admin", Email: "admin@casellese.de"})
		Expect(err).NotTo(HaveOccurred())
		Expect(user.IsAdmin()).To(BeTrue())
		Expect(e.identity.IsAdmin(ctx, "auth0-admin")).To(BeTrue())
	})

	It("rejeita email de admin inválido", func() {
		_, err := e.seed.Run(ctx, "kein-email")
		Expect(err).To(HaveOccurred())
		Expect(e.products.Count(ctx)).To(BeZero())
	})
})
