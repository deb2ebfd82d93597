package services_test

import (
	"context"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
	"github.com/casellese/catalog-backend/internal/domain/ports"
)

var _ = Describe("IdentityService", func() {
	var (
		e   *env
		ctx context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
	})

	Describe("Resolve", func() {
		It("cria um usuário REGULAR para um subject novo", func() {
			user, err := e.identity.Resolve(ctx, principal("anna"))
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeZero())
			Expect(user.OAuthID).To(Equal("anna"))
			Expect(user.Role).To(Equal(entities.RoleRegular))
			Expect(user.Email.String()).To(Equal("anna@example.com"))
		})

		It("reutiliza o usuário existente", func() {
			first, err := e.identity.Resolve(ctx, principal("anna"))
			Expect(err).NotTo(HaveOccurred())
			second, err := e.identity.Resolve(ctx, principal("anna"))
			Expect(err).NotTo(HaveOccurred())

			Expect(second.ID).To(Equal(first.ID))
			Expect(e.users.Count(ctx)).To(Equal(int64(1)))
		})

		It("vincula o subject a uma conta provisionada pelo email", func() {
			provisioned, err := entities.NewProvisionedUser("boss@example.com", "", entities.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.users.Create(ctx, provisioned)).To(Succeed())

			user, err := e.identity.Resolve(ctx, &ports.Principal{
				Subject: "boss",
				Name:    "Chefin",
				Email:   "Boss@Example.com",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(provisioned.ID))
			Expect(user.OAuthID).To(Equal("boss"))
			Expect(user.Name).To(Equal("Chefin"))
			Expect(user.IsAdmin()).To(BeTrue())
			Expect(e.users.Count(ctx)).To(Equal(int64(1)))
		})

		It("não reaproveita conta já vinculada a outro subject", func() {
			_, err := e.identity.Resolve(ctx, &ports.Principal{Subject: "first", Email: "shared@example.com"})
			Expect(err).NotTo(HaveOccurred())

			second, err := e.identity.Resolve(ctx, &ports.Principal{Subject: "second", Email: "shared@example.com"})
			Expect(err).NotTo(HaveOccurred())
			Expect(second.OAuthID).To(Equal("second"))
			Expect(e.users.Count(ctx)).To(Equal(int64(2)))
		})

		It("ignora claim de email malformada", func() {
			user, err := e.identity.Resolve(ctx, &ports.Principal{Subject: "nomail", Email: "not-an-email"})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email.IsZero()).To(BeTrue())
		})

		It("rejeita subject em branco", func() {
			_, err := e.identity.Resolve(ctx, &ports.Principal{Subject: "   "})
			Expect(err).To(MatchError(domainerrors.ErrBlankOAuthID))
		})

		It("logins concorrentes do mesmo subject geram um único usuário", func() {
			var wg sync.WaitGroup
			ids := make([]uint, 4)
			for i := range ids {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					user, err := e.identity.Resolve(ctx, principal("race"))
					Expect(err).NotTo(HaveOccurred())
					ids[i] = user.ID
				}(i)
			}
			wg.Wait()

			for _, id := range ids {
				Expect(id).To(Equal(ids[0]))
			}
			Expect(e.users.Count(ctx)).To(Equal(int64(1)))
		})
	})

	Describe("IsAdmin", func() {
		It("é falso para subject desconhecido", func() {
			Expect(e.identity.IsAdmin(ctx, "ghost")).To(BeFalse())
		})

		It("é falso para REGULAR e verdadeiro para ADMIN", func() {
			user, err := e.identity.Resolve(ctx, principal("maria"))
			Expect(err).NotTo(HaveOccurred())
			Expect(e.identity.IsAdmin(ctx, "maria")).To(BeFalse())

			user.Role = entities.RoleAdmin
			Expect(e.users.Update(ctx, user)).To(Succeed())
			Expect(e.identity.IsAdmin(ctx, "maria")).To(BeTrue())
		})

		It("não cria usuários", func() {
			_, _ = e.identity.IsAdmin(ctx, "ghost")
			Expect(e.users.Count(ctx)).To(BeZero())
		})
	})
})
