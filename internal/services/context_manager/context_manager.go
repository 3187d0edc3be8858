package context_manager

import (
	"context"
	"errors"
	"strings"
)

// ErrNotAuthenticated is returned when no user identity is present in
// the context. Callers surface it as a re-authentication trigger.
var ErrNotAuthenticated = errors.New("not authenticated")

type userKey struct{}

// SetUserContext stores the authenticated user id into context
func SetUserContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, strings.TrimSpace(userID))
}

// GetUserContext retrieves the authenticated user id from context
func GetUserContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userKey{}).(string)
	if !ok || userID == "" {
		return "", ErrNotAuthenticated
	}
	return userID, nil
}
