package auth

import "context"

type ctxKey struct{}

func ContextWithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ctxKey{}, email)
}

// EmailFromContext returns the email of the logged user, put there by the auth middleware.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ctxKey{}).(string)
	return email, ok && email != ""
}
