// Package auth supplies credentials to the HTTP layer.
package auth

import (
	"context"
	"errors"
)

// Static errors for err113 compliance.
var (
	ErrNoToken = errors.New("no access token available")
)

// TokenProvider supplies the Bearer credential for API requests.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenProvider holds a HubSpot private app token. Private app tokens
// do not expire or refresh, so the provider is a plain value.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider for a fixed token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// Token implements TokenProvider.
func (p *StaticTokenProvider) Token(ctx context.Context) (string, error) {
	if p.token == "" {
		return "", ErrNoToken
	}

	return p.token, nil
}
