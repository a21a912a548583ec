package auth

import "context"

type claimsKey struct{}

// WithClaims stores the verified session claims in ctx for downstream use.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromCtx returns the session claims attached by the session
// middleware, or nil when the request was not authenticated.
func ClaimsFromCtx(ctx context.Context) *Claims {
	if c, ok := ctx.Value(claimsKey{}).(*Claims); ok {
		return c
	}
	return nil
}
