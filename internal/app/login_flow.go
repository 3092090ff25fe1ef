package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bft-labs/signin/internal/domain"
	"github.com/bft-labs/signin/internal/ports"
)

// LoginFlow drives an interactive sign-in: prompt, authenticate, and prompt
// again while the server rejects the credentials. Each round issues exactly
// one request; any failure other than rejected credentials ends the flow.
type LoginFlow struct {
	auth        ports.Authentication
	prompter    ports.CredentialsPrompter
	logger      ports.Logger
	maxAttempts int
}

// NewLoginFlow creates a flow allowing up to maxAttempts rounds (minimum 1).
func NewLoginFlow(auth ports.Authentication, prompter ports.CredentialsPrompter, logger ports.Logger, maxAttempts int) *LoginFlow {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &LoginFlow{
		auth:        auth,
		prompter:    prompter,
		logger:      logger,
		maxAttempts: maxAttempts,
	}
}

// Run returns the account on success. When every attempt is rejected, or the
// prompt fails after a rejection, the error matches domain.ErrInvalidCredentials.
func (f *LoginFlow) Run(ctx context.Context) (domain.AccountModel, error) {
	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.AccountModel{}, err
		}

		params, err := f.prompter.Prompt(ctx, attempt)
		if err != nil {
			err = fmt.Errorf("read credentials: %w", err)
			// a rejection already happened; the prompt failing must not hide it
			if attempt > 1 && ctx.Err() == nil {
				err = errors.Join(domain.ErrInvalidCredentials, err)
			}
			return domain.AccountModel{}, err
		}

		account, err := f.auth.Auth(ctx, params)
		if err == nil {
			f.logger.Info("signed in", ports.String("name", account.Name), ports.Int("attempt", attempt))
			return account, nil
		}
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			return domain.AccountModel{}, err
		}

		f.logger.Warn("invalid credentials",
			ports.Int("attempt", attempt),
			ports.Int("remaining", f.maxAttempts-attempt),
		)
	}
	return domain.AccountModel{}, domain.ErrInvalidCredentials
}
