package entities

import "strings"

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleRegular Role = "REGULAR"
)

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleRegular
}

// ParseRole converte uma string (case-insensitive) em Role
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(value)))
	if !role.IsValid() {
		return "", false
	}
	return role, true
}
