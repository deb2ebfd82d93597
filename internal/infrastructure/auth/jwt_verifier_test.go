package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casellese/catalog-backend/internal/infrastructure/config"
)

const testSecret = "test-secret-with-enough-length-123"

func signHS256(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(subject string) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    "https://issuer.example.com/",
			Audience:  jwt.ClaimStrings{"catalog-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Name:  "Maria",
		Email: "maria@example.com",
	}
}

func TestJWTVerifier_HS256(t *testing.T) {
	ctx := context.Background()
	verifier, err := NewJWTVerifier(config.AuthConfig{
		Issuer:      "https://issuer.example.com/",
		Audience:    "catalog-api",
		HS256Secret: testSecret,
	})
	require.NoError(t, err)

	t.Run("aceita token válido", func(t *testing.T) {
		principal, err := verifier.Verify(ctx, signHS256(t, testSecret, validClaims("auth0|123")))
		require.NoError(t, err)
		assert.Equal(t, "auth0|123", principal.Subject)
		assert.Equal(t, "Maria", principal.Name)
		assert.Equal(t, "maria@example.com", principal.Email)
	})

	t.Run("rejeita assinatura com outro segredo", func(t *testing.T) {
		_, err := verifier.Verify(ctx, signHS256(t, "another-secret", validClaims("auth0|123")))
		assert.Error(t, err)
	})

	t.Run("rejeita token expirado", func(t *testing.T) {
		claims := validClaims("auth0|123")
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		_, err := verifier.Verify(ctx, signHS256(t, testSecret, claims))
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("rejeita token sem exp", func(t *testing.T) {
		claims := validClaims("auth0|123")
		claims.ExpiresAt = nil
		_, err := verifier.Verify(ctx, signHS256(t, testSecret, claims))
		assert.Error(t, err)
	})

	t.Run("rejeita issuer diferente", func(t *testing.T) {
		claims := validClaims("auth0|123")
		claims.Issuer = "https://evil.example.com/"
		_, err := verifier.Verify(ctx, signHS256(t, testSecret, claims))
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("rejeita audience diferente", func(t *testing.T) {
		claims := validClaims("auth0|123")
		claims.Audience = jwt.ClaimStrings{"other-api"}
		_, err := verifier.Verify(ctx, signHS256(t, testSecret, claims))
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
	})

	t.Run("rejeita subject em branco", func(t *testing.T) {
		_, err := verifier.Verify(ctx, signHS256(t, testSecret, validClaims("  ")))
		assert.ErrorIs(t, err, ErrMissingSubject)
	})

	t.Run("rejeita lixo", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "not-a-token")
		assert.Error(t, err)
	})
}

func TestJWTVerifier_RS256(t *testing.T) {
	ctx := context.Background()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	verifier, err := NewJWTVerifier(config.AuthConfig{RSAPublicKey: string(publicPEM)})
	require.NoError(t, err)

	t.Run("aceita token RS256", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, validClaims("auth0|rsa")).SignedString(privateKey)
		require.NoError(t, err)

		principal, err := verifier.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "auth0|rsa", principal.Subject)
	})

	t.Run("rejeita algoritmo HS256", func(t *testing.T) {
		_, err := verifier.Verify(ctx, signHS256(t, string(publicPEM), validClaims("auth0|rsa")))
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})
}

func TestNewJWTVerifier(t *testing.T) {
	t.Run("erro sem chave", func(t *testing.T) {
		_, err := NewJWTVerifier(config.AuthConfig{})
		assert.ErrorIs(t, err, ErrNoVerifierKey)
	})

	t.Run("erro com PEM inválido", func(t *testing.T) {
		_, err := NewJWTVerifier(config.AuthConfig{RSAPublicKey: "not a pem"})
		assert.Error(t, err)
	})
}
