// Package signin signs users in against a remote login endpoint.
//
// Example usage:
//
//	auth := signin.New("https://auth.example.com/api/login",
//	    signin.WithTimeout(10*time.Second),
//	)
//	account, err := auth.Auth(ctx, signin.AuthenticationParams{
//	    Email:    "a@b.com",
//	    Password: "secret",
//	})
//	switch {
//	case errors.Is(err, signin.ErrInvalidCredentials):
//	    // ask again
//	case err != nil:
//	    log.Fatal(err)
//	}
package signin

import (
	"net/http"
	"time"

	httpAdapter "github.com/bft-labs/signin/internal/adapters/http"
	logAdapter "github.com/bft-labs/signin/internal/adapters/log"
	"github.com/bft-labs/signin/internal/app"
	"github.com/bft-labs/signin/internal/domain"
	"github.com/bft-labs/signin/internal/ports"
)

// AuthenticationParams holds the credentials posted to the login endpoint.
type AuthenticationParams = domain.AuthenticationParams

// AccountModel is the session returned on a successful sign-in.
type AccountModel = domain.AccountModel

// Authentication is implemented by every authenticator, including RemoteAuthentication.
type Authentication = ports.Authentication

// RemoteAuthentication is the authenticator returned by New.
type RemoteAuthentication = app.RemoteAuthentication

// Logger is the interface for structured logging.
type Logger = ports.Logger

// LogField represents a structured log field.
type LogField = ports.Field

var (
	// ErrInvalidCredentials is returned when the server answers 401.
	ErrInvalidCredentials = domain.ErrInvalidCredentials

	// ErrUnexpected is returned for any other non-success answer.
	ErrUnexpected = domain.ErrUnexpected
)

// DefaultTimeout bounds a sign-in request when no HTTP client is supplied.
const DefaultTimeout = 15 * time.Second

// Option configures optional behavior of New.
type Option func(*options)

type options struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     ports.Logger
}

// WithHTTPClient sets the *http.Client requests are sent with.
// Its own Timeout is kept unless WithTimeout is also given.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates an authenticator posting to loginURL.
func New(loginURL string, opts ...Option) *RemoteAuthentication {
	o := options{logger: logAdapter.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil && o.timeout <= 0 {
		o.timeout = DefaultTimeout
	}

	rc := httpAdapter.NewRestyClient(o.httpClient, o.timeout, o.logger)
	client := httpAdapter.NewPostClient[domain.AuthenticationParams, domain.AccountModel](rc, o.logger)
	return app.NewRemoteAuthentication(loginURL, client, o.logger)
}
