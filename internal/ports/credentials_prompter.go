package ports

import (
	"context"

	"github.com/bft-labs/signin/internal/domain"
)

// CredentialsPrompter asks the user for credentials.
// attempt starts at 1 and grows each time the previous credentials were rejected.
type CredentialsPrompter interface {
	Prompt(ctx context.Context, attempt int) (domain.AuthenticationParams, error)
}
