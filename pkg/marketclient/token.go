package marketclient

import (
	"context"
	"errors"
)

var ErrNoToken = errors.New("marketclient: no token")

// StaticToken is a bearer token that never changes. An empty token fails
// authentication instead of sending an empty header.
type StaticToken string

func (t StaticToken) Authenticate(context.Context) error {
	if t == "" {
		return ErrNoToken
	}

	return nil
}

func (t StaticToken) BearerToken() string {
	return string(t)
}
