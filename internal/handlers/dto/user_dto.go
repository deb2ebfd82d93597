package dto

import (
	"time"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	"github.com/casellese/catalog-backend/internal/services"
)

// UpdateProfileRequest representa a atualização do próprio perfil; role não é aceito
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=200"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// ToInput converte para o input do serviço
func (r UpdateProfileRequest) ToInput() services.UpdateProfileInput {
	return services.UpdateProfileInput{Name: r.Name, Email: r.Email}
}

// UpdateUserRequest representa a atualização administrativa de um usuário
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=200"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role" binding:"omitempty,role"`
}

// ToInput converte para o input do serviço
func (r UpdateUserRequest) ToInput() services.UpdateUserInput {
	input := services.UpdateUserInput{Name: r.Name, Email: r.Email}
	if r.Role != nil {
		if role, ok := entities.ParseRole(*r.Role); ok {
			input.Role = &role
		}
	}
	return input
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name"`
	OAuthID   string    `json:"oauthId,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Name:      user.Name,
		OAuthID:   user.OAuthID,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
