package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	domainerrors "github.com/casellese/catalog-backend/internal/domain/errors"
	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/domain/repositories"
	"github.com/casellese/catalog-backend/internal/domain/valueobjects"
)

// IdentityService resolve o User de um subject verificado e responde se ele é admin
type IdentityService struct {
	userRepo repositories.UserRepository
	metrics  ports.Metrics
	logger   ports.Logger
}

// NewIdentityService cria um novo IdentityService
func NewIdentityService(
	userRepo repositories.UserRepository,
	metrics ports.Metrics,
	logger ports.Logger,
) *IdentityService {
	return &IdentityService{
		userRepo: userRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// Resolve encontra ou cria o User do principal.
// Ordem: oauthId, depois conta provisionada com o mesmo email, depois criação como REGULAR.
func (s *IdentityService) Resolve(ctx context.Context, principal *ports.Principal) (*entities.User, error) {
	if principal == nil || strings.TrimSpace(principal.Subject) == "" {
		return nil, domainerrors.ErrBlankOAuthID
	}

	user, err := s.userRepo.FindByOAuthID(ctx, principal.Subject)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = s.linkByEmail(ctx, principal)
	if err != nil || user != nil {
		return user, err
	}

	return s.create(ctx, principal)
}

// linkByEmail vincula o subject a uma conta ainda sem oauthId
func (s *IdentityService) linkByEmail(ctx context.Context, principal *ports.Principal) (*entities.User, error) {
	email, err := valueobjects.NewEmail(principal.Email)
	if err != nil {
		return nil, nil
	}

	user, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsLinked() {
		return nil, nil
	}

	if err := user.LinkOAuthID(principal.Subject); err != nil {
		return nil, err
	}
	if user.Name == "" {
		user.Name = principal.Name
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return s.refetch(ctx, principal.Subject)
		}
		return nil, err
	}

	s.metrics.UserCreated("linked")
	s.logger.Info("linked identity to existing user",
		"user_id", user.ID,
		"oauth_id", principal.Subject,
	)
	return user, nil
}

func (s *IdentityService) create(ctx context.Context, principal *ports.Principal) (*entities.User, error) {
	user, err := entities.NewUser(principal.Subject, principal.Name, principal.Email)
	if errors.Is(err, domainerrors.ErrInvalidEmail) {
		s.logger.Warn("ignoring malformed email claim", "oauth_id", principal.Subject)
		user, err = entities.NewUser(principal.Subject, principal.Name, "")
	}
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Login concorrente do mesmo subject venceu a corrida
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return s.refetch(ctx, principal.Subject)
		}
		return nil, err
	}

	s.metrics.UserCreated("created")
	s.logger.Info("user created",
		"user_id", user.ID,
		"oauth_id", user.OAuthID,
	)
	return user, nil
}

func (s *IdentityService) refetch(ctx context.Context, oauthID string) (*entities.User, error) {
	user, err := s.userRepo.FindByOAuthID(ctx, oauthID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found after duplicate key", oauthID)
	}
	return user, nil
}

// IsAdmin implementa ports.Authorizer; subject sem User nunca é admin
func (s *IdentityService) IsAdmin(ctx context.Context, subject string) (bool, error) {
	user, err := s.userRepo.FindByOAuthID(ctx, subject)
	if err != nil {
		return false, err
	}
	return user != nil && user.IsAdmin(), nil
}

var _ ports.Authorizer = (*IdentityService)(nil)
