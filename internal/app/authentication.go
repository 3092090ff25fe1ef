package app

import (
	"context"
	"fmt"

	"github.com/bft-labs/signin/internal/domain"
	"github.com/bft-labs/signin/internal/ports"
)

// RemoteAuthentication signs users in against a remote login endpoint.
// It is configured once and holds no per-call state, so a single instance
// can serve concurrent callers.
type RemoteAuthentication struct {
	url    string
	client ports.HTTPPostClient[domain.AuthenticationParams, domain.AccountModel]
	logger ports.Logger
}

var _ ports.Authentication = (*RemoteAuthentication)(nil)

// NewRemoteAuthentication creates the use case for the given login URL.
func NewRemoteAuthentication(
	url string,
	client ports.HTTPPostClient[domain.AuthenticationParams, domain.AccountModel],
	logger ports.Logger,
) *RemoteAuthentication {
	return &RemoteAuthentication{
		url:    url,
		client: client,
		logger: logger,
	}
}

// URL returns the login endpoint this instance posts to.
func (a *RemoteAuthentication) URL() string {
	return a.url
}

// Auth posts params to the login endpoint and classifies the response.
// Transport failures are returned wrapped but unclassified.
func (a *RemoteAuthentication) Auth(ctx context.Context, params domain.AuthenticationParams) (domain.AccountModel, error) {
	resp, err := a.client.Post(ctx, ports.HTTPPostParams[domain.AuthenticationParams]{
		URL:  a.url,
		Body: params,
	})
	if err != nil {
		a.logger.Error("authentication request failed", ports.String("url", a.url), ports.Err(err))
		return domain.AccountModel{}, fmt.Errorf("authenticate: %w", err)
	}

	switch resp.StatusCode {
	case ports.StatusOK:
		a.logger.Debug("authenticated", ports.String("email", params.Email))
		return resp.Body, nil
	case ports.StatusUnauthorized:
		a.logger.Info("credentials rejected", ports.String("email", params.Email))
		return domain.AccountModel{}, domain.ErrInvalidCredentials
	default:
		a.logger.Warn("unexpected authentication response",
			ports.String("url", a.url),
			ports.Int("status", int(resp.StatusCode)),
		)
		return domain.AccountModel{}, domain.ErrUnexpected
	}
}
