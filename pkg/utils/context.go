package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the decoded acting identity attached to a request after the
// bearer token has been verified. Downstream code trusts it as-is.
type Identity struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

func SetIdentityContext(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	val := ctx.Value(identityKey)
	if val == nil {
		return Identity{}, false
	}

	identity, ok := val.(Identity)
	return identity, ok
}
