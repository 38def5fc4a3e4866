package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var ErrBodyNotRewindable = errors.New("request body can not be sent twice")

type authenticator interface {
	Authenticate(context.Context) error
	BearerToken() string
}

// AuthBearerRoundTripper sets the bearer token on every request and retries
// once with a fresh token after a 401.
type AuthBearerRoundTripper struct {
	next          http.RoundTripper
	authenticator authenticator
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	authenticator authenticator,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:          next,
		authenticator: authenticator,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.authenticator.BearerToken() == "" {
		if err := rt.authenticator.Authenticate(req.Context()); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}
	}

	rt.setAuthorizationHeader(req)

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()

		if err = rt.authenticator.Authenticate(req.Context()); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}

		retry, err := rewind(req)
		if err != nil {
			return nil, err
		}

		rt.setAuthorizationHeader(retry)

		return rt.next.RoundTrip(retry) //nolint:wrapcheck
	}

	return resp, nil
}

func (rt AuthBearerRoundTripper) setAuthorizationHeader(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+rt.authenticator.BearerToken())
}

// rewind clones the request with a fresh body, the original one is already
// consumed by the first attempt.
func rewind(req *http.Request) (*http.Request, error) {
	retry := req.Clone(req.Context())

	if req.Body == nil || req.Body == http.NoBody {
		return retry, nil
	}

	if req.GetBody == nil {
		return nil, ErrBodyNotRewindable
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("req.GetBody: %w", err)
	}

	retry.Body = body

	return retry, nil
}
