package auth

import (
	"context"

	"gatehouse/internal/model"
)

type identityKey struct{}

// WithIdentity returns a context carrying the authenticated user. The session
// gate attaches it; downstream gates and handlers read it with IdentityFrom.
func WithIdentity(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, identityKey{}, user)
}

// IdentityFrom returns the authenticated user attached to the context, if any.
func IdentityFrom(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(identityKey{}).(*model.User)
	return user, ok
}
