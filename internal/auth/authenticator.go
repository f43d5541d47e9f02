package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Authenticator resolves a bearer token to an existing actor.
type Authenticator struct {
	tokens *JWTManager
	users  userRepo
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(tokens *JWTManager, users userRepo) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// ValidateToken returns the actor id carried by token. Tokens for unknown
// users are rejected with domain.ErrUnauthorized.
func (a *Authenticator) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := a.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	if _, err := a.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("%w: unknown user %s", domain.ErrUnauthorized, userID)
		}
		return uuid.Nil, fmt.Errorf("load user: %w", err)
	}

	return userID, nil
}
