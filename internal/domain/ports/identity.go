package ports

import "context"

// Principal é a identidade verificada extraída de um bearer token
type Principal struct {
	Subject string
	Name    string
	Email   string
}

// TokenVerifier valida assinatura, issuer e audience de um token.
// Implementações retornam erro para qualquer token não confiável.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Principal, error)
}

// Authorizer responde se um subject verificado tem papel de administrador
type Authorizer interface {
	IsAdmin(ctx context.Context, subject string) (bool, error)
}
