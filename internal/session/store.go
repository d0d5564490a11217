// Package session resolves session tokens to account identities and carries
// the resolved identity on the request context. It is the thin boundary
// around the external auth layer: nothing here issues credentials.
package session

import "context"

// Store resolves session tokens to account ids.
type Store interface {
	// Lookup returns the account id bound to token, or "" when the session
	// is unknown or expired. An error means the store itself failed.
	Lookup(ctx context.Context, token string) (string, error)
}

type identityKey struct{}

// WithIdentity attaches an authenticated account id to ctx.
func WithIdentity(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, identityKey{}, accountID)
}

// IdentityFrom returns the authenticated account id on ctx, if any.
func IdentityFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(identityKey{}).(string)
	return id, ok && id != ""
}
