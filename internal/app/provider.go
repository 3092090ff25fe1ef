package app

import (
	"context"
	"sync/atomic"

	"github.com/bft-labs/signin/internal/domain"
	"github.com/bft-labs/signin/internal/ports"
)

// Provider holds the current Authentication and delegates to it.
// Swap replaces it wholesale; an Auth call already in flight keeps
// the instance it started with.
type Provider struct {
	current atomic.Pointer[ports.Authentication]
}

var _ ports.Authentication = (*Provider)(nil)

// NewProvider creates a provider starting with auth.
func NewProvider(auth ports.Authentication) *Provider {
	p := &Provider{}
	p.Swap(auth)
	return p
}

// Swap installs auth for subsequent calls.
func (p *Provider) Swap(auth ports.Authentication) {
	p.current.Store(&auth)
}

// Current returns the installed Authentication.
func (p *Provider) Current() ports.Authentication {
	return *p.current.Load()
}

// Auth delegates to the current Authentication.
func (p *Provider) Auth(ctx context.Context, params domain.AuthenticationParams) (domain.AccountModel, error) {
	return p.Current().Auth(ctx, params)
}
