// Package account exposes the authenticated account's profile to resolvers.
// It delegates to the remote account service; nothing is cached between
// requests, so concurrent queries for different accounts never interfere.
package account

import (
	"context"

	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/logger"
	"github.com/compasshq/compass/internal/session"
)

// Provider turns the identity on a request context into a full Account.
type Provider struct {
	fetcher Fetcher
	logger  logger.Logger
}

func NewProvider(fetcher Fetcher, log logger.Logger) *Provider {
	return &Provider{fetcher: fetcher, logger: log}
}

// Current fetches the profile for the identity on ctx, exactly one upstream
// call per invocation. No identity yields *domain.UnauthenticatedError; an
// upstream failure passes through as *domain.UpstreamError, unretried.
func (p *Provider) Current(ctx context.Context) (*domain.Account, error) {
	accountID, ok := session.IdentityFrom(ctx)
	if !ok {
		return nil, &domain.UnauthenticatedError{}
	}

	record, err := p.fetcher.Fetch(ctx, "/accounts/"+accountID)
	if err != nil {
		p.logger.Warn("account fetch failed",
			logger.String("account_id", accountID),
			logger.Error(err))
		if domain.IsUpstream(err) {
			return nil, err
		}
		return nil, &domain.UpstreamError{Err: err}
	}

	id := record.ID
	if id == "" {
		id = accountID
	}

	return &domain.Account{
		ID:          id,
		Login:       record.Login,
		Email:       record.Email,
		EmailHash:   domain.EmailHash(record.Email),
		CompanyName: record.CompanyName,
		FirstName:   record.FirstName,
		LastName:    record.LastName,
		Phone:       record.Phone,
		Created:     record.Created,
		Updated:     record.Updated,
	}, nil
}
