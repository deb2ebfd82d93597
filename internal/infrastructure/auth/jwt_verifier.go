package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/infrastructure/config"
)

var (
	ErrMissingSubject = errors.New("token has no subject")
	ErrNoVerifierKey  = errors.New("no verification key configured")
)

// Claims são as claims esperadas nos tokens do provedor de identidade
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// JWTVerifier implementa ports.TokenVerifier para tokens HS256 ou RS256
type JWTVerifier struct {
	key    any
	parser *jwt.Parser
}

// NewJWTVerifier cria um verificador a partir da configuração.
// A chave pública RSA tem prioridade sobre o segredo HS256.
func NewJWTVerifier(cfg config.AuthConfig) (*JWTVerifier, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	var key any
	switch {
	case cfg.RSAPublicKey != "":
		pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.RSAPublicKey))
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		key = pub
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	case cfg.HS256Secret != "":
		key = []byte(cfg.HS256Secret)
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	default:
		return nil, ErrNoVerifierKey
	}

	return &JWTVerifier{
		key:    key,
		parser: jwt.NewParser(opts...),
	}, nil
}

// Verify valida o token e retorna o principal autenticado
func (v *JWTVerifier) Verify(_ context.Context, rawToken string) (*ports.Principal, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(rawToken, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrMissingSubject
	}

	return &ports.Principal{
		Subject: claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
	}, nil
}
