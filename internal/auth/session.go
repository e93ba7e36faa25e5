package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gatehouse/internal/model"
	"gatehouse/internal/repository"
)

// SessionIssuer turns a verified identity into a new opaque session token.
//
// The token is the hash digest of the user's id. Because the hasher salts per
// call, every login produces a different digest for the same id; the stored
// value is therefore the only valid copy, and verification is an equality
// lookup against it (see SessionGate). Recomputing the hash at verification
// time would never match.
type SessionIssuer struct {
	users  repository.UserRepository
	hasher Hasher
}

// NewSessionIssuer builds a SessionIssuer over the given store and hasher.
func NewSessionIssuer(users repository.UserRepository, hasher Hasher) *SessionIssuer {
	return &SessionIssuer{users: users, hasher: hasher}
}

// Issue mints a token for the user and persists it, replacing any prior
// token. The previous cookie holder gets no signal; their token simply stops
// matching. Returns the user record carrying the new token.
func (i *SessionIssuer) Issue(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	token, err := i.hasher.Hash(userID.String())
	if err != nil {
		return nil, fmt.Errorf("derive session token: %w", err)
	}
	user, err := i.users.UpdateByID(ctx, userID, map[string]any{"session_token": token})
	if err != nil {
		return nil, fmt.Errorf("persist session token: %w", err)
	}
	return user, nil
}
