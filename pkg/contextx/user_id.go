package contextx

import (
	"context"
	"fmt"
)

// UserID is the name of the trusted client resolved from its bearer token.
type UserID string

type contextKeyUserID struct{}

func (u UserID) String() string {
	return string(u)
}

func WithUserID(ctx context.Context, userID UserID) context.Context {
	return context.WithValue(ctx, contextKeyUserID{}, userID)
}

func UserIDFromContext(ctx context.Context) (UserID, error) {
	userID, ok := ctx.Value(contextKeyUserID{}).(UserID)
	if !ok || userID == "" {
		return "", fmt.Errorf("user id: %w", ErrNoValue)
	}

	return userID, nil
}

// IsAuthenticated reports whether an authentication middleware attached a user
// id to the context.
func IsAuthenticated(ctx context.Context) bool {
	_, err := UserIDFromContext(ctx)

	return err == nil
}
