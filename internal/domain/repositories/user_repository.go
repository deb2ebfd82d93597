package repositories

import (
	"context"

	"github.com/casellese/catalog-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Métodos Find* retornam (nil, nil) quando o registro não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByOAuthID(ctx context.Context, oauthID string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	List(ctx context.Context) ([]*entities.User, error)
	Count(ctx context.Context) (int64, error)
}
