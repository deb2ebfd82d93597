package services

import (
	"context"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
)

// UserService contém a lógica de negócio para perfil e administração de usuários
type UserService struct {
	userRepo repositories.UserRepository
	identity *IdentityService
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	identity *IdentityService,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		identity: identity,
		logger:   logger,
	}
}

// UpdateProfileInput contém os campos que o próprio usuário pode alterar; nil mantém o valor
type UpdateProfileInput struct {
	Name  *string
	Email *string
}

// UpdateUserInput contém os campos que um admin pode alterar
type UpdateUserInput struct {
	Name  *string
	Email *string
	Role  *entities.Role
}

// GetProfile resolve (ou cria) o User do chamador
func (s *UserService) GetProfile(ctx context.Context, principal *ports.Principal) (*entities.User, error) {
	return s.identity.Resolve(ctx, principal)
}

// UpdateProfile altera nome e email; o papel nunca muda por aqui
func (s *UserService) UpdateProfile(ctx context.Context, subject string, input UpdateProfileInput) (*entities.User, error) {
	user, err := s.userRepo.FindByOAuthID(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	if err := user.ApplyProfile(input.Name, input.Email); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", user.ID)
	return user, nil
}

// ListUsers lista todos os usuários
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.List(ctx)
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

// UpdateUser altera nome, email e papel de qualquer usuário
func (s *UserService) UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		user.Role = *input.Role
	}
	if err := user.ApplyProfile(input.Name, input.Email); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", id, "role", user.Role)
	return user, nil
}
