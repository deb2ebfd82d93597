package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/casellese/catalog-backend/internal/domain/errors"
	"github.com/casellese/catalog-backend/internal/domain/valueobjects"
)

const UserNameMaxLength = 200

// User representa um usuário do sistema.
// OAuthID vazio indica uma conta provisionada por email que ainda não fez login.
type User struct {
	ID        uint
	Email     valueobjects.Email
	Name      string
	OAuthID   string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser cria um usuário REGULAR a partir das claims de um token verificado
func NewUser(oauthID, name, email string) (*User, error) {
	if strings.TrimSpace(oauthID) == "" {
		return nil, errors.ErrBlankOAuthID
	}

	parsed, err := valueobjects.NewOptionalEmail(email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	user := &User{
		OAuthID: oauthID,
		Name:    truncateName(name),
		Email:   parsed,
		Role:    RoleRegular,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// NewProvisionedUser cria uma conta ainda não vinculada a um subject OAuth
func NewProvisionedUser(email, name string, role Role) (*User, error) {
	parsed, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	user := &User{
		Email: parsed,
		Name:  name,
		Role:  role,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsLinked indica se a conta já está vinculada a um subject OAuth
func (u *User) IsLinked() bool {
	return u.OAuthID != ""
}

// LinkOAuthID vincula o subject a uma conta provisionada; o vínculo é imutável
func (u *User) LinkOAuthID(oauthID string) error {
	if strings.TrimSpace(oauthID) == "" {
		return errors.ErrBlankOAuthID
	}
	if u.IsLinked() && u.OAuthID != oauthID {
		return errors.ErrOAuthIDImmutable
	}
	u.OAuthID = oauthID
	return nil
}

// ApplyProfile altera nome e/ou email; nil mantém o valor atual
func (u *User) ApplyProfile(name, email *string) error {
	if email != nil {
		parsed, err := valueobjects.NewOptionalEmail(*email)
		if err != nil {
			return errors.ErrInvalidEmail
		}
		u.Email = parsed
	}
	if name != nil {
		u.Name = *name
	}
	return u.Validate()
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	var errs errors.ValidationErrors

	if u.IsLinked() && strings.TrimSpace(u.OAuthID) == "" {
		errs.Add("oauthId", errors.ValidationRequired)
	}
	// conta provisionada só é encontrada no login pelo email
	if !u.IsLinked() && u.Email.IsZero() {
		errs.Add("email", errors.ValidationRequired)
	}

	if utf8.RuneCountInString(u.Name) > UserNameMaxLength {
		errs.Add("name", errors.ValidationTooLong)
	}

	if !u.Role.IsValid() {
		errs.Add("role", errors.ValidationInvalidRole)
	}

	return errs.OrNil()
}

func truncateName(name string) string {
	if utf8.RuneCountInString(name) <= UserNameMaxLength {
		return name
	}
	return string([]rune(name)[:UserNameMaxLength])
}
