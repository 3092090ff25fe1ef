package ports

import (
	"context"

	"github.com/bft-labs/signin/internal/domain"
)

// Authentication signs a user in and returns the resulting account.
// Failures are domain.ErrInvalidCredentials, domain.ErrUnexpected, or a
// transport error from the underlying client.
type Authentication interface {
	Auth(ctx context.Context, params domain.AuthenticationParams) (domain.AccountModel, error)
}
