package guard

import (
	"context"

	"github.com/tair/inventory-service/pkg/auth"
)

// TokenVerifier validates a raw session token.
type TokenVerifier interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// TokenSessionProvider resolves sessions from the signed token in the
// request context. Missing or invalid tokens resolve to no session.
type TokenSessionProvider struct {
	verifier TokenVerifier
}

// NewTokenSessionProvider creates a provider backed by verifier.
func NewTokenSessionProvider(verifier TokenVerifier) *TokenSessionProvider {
	return &TokenSessionProvider{verifier: verifier}
}

func (p *TokenSessionProvider) Session(ctx context.Context) (*Session, error) {
	token := auth.TokenFromContext(ctx)
	if token == "" {
		return nil, nil
	}

	claims, err := p.verifier.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	s := &Session{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
