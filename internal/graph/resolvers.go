// Package graph defines the GraphQL schema of the navigation API and the
// resolver set behind it. Every Query field maps to exactly one entry in the
// resolver table; NewSchema refuses to build otherwise.
package graph

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"

	"github.com/compasshq/compass/internal/account"
	"github.com/compasshq/compass/internal/catalog"
	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/logger"
)

// Resolvers composes the catalog and the account provider into the named
// operations of the query schema.
type Resolvers struct {
	Catalog  *catalog.Catalog
	Accounts *account.Provider
	Logger   logger.Logger
}

// QueryFields is the explicit operation -> resolver table for the Query
// type. Keep it in sync with the fields declared in NewSchema; the schema
// constructor checks the mapping 1:1 at startup.
func (r *Resolvers) QueryFields() map[string]graphql.FieldResolveFn {
	return map[string]graphql.FieldResolveFn{
		"account":    r.resolveAccount,
		"datacenter": r.resolveDatacenter,
		"regions":    r.resolveRegions,
		"categories": r.resolveCategories,
		"service":    r.resolveService,
	}
}

func (r *Resolvers) resolveAccount(p graphql.ResolveParams) (interface{}, error) {
	acct, err := r.Accounts.Current(p.Context)
	if err != nil {
		return nil, err
	}
	return acct, nil
}

func (r *Resolvers) resolveDatacenter(graphql.ResolveParams) (interface{}, error) {
	return r.Catalog.CurrentDatacenter(), nil
}

func (r *Resolvers) resolveRegions(graphql.ResolveParams) (interface{}, error) {
	return r.Catalog.Regions(), nil
}

func (r *Resolvers) resolveCategories(graphql.ResolveParams) (interface{}, error) {
	return r.Catalog.Categories(), nil
}

func (r *Resolvers) resolveService(p graphql.ResolveParams) (interface{}, error) {
	slug, _ := p.Args["slug"].(string)
	svc, err := r.Catalog.FindService(slug)
	if err != nil {
		// Unknown slug is a null field, not an error entry.
		if domain.IsNotFound(err) {
			r.Logger.Debug("service lookup missed", logger.String("slug", slug))
			return nil, nil
		}
		return nil, err
	}
	return svc, nil
}

// resolveAccountServices backs the services subfield of Account. The parent
// resolver already authenticated, so a missing account id here is a bug.
func (r *Resolvers) resolveAccountServices(p graphql.ResolveParams) (interface{}, error) {
	acct, ok := p.Source.(*domain.Account)
	if !ok {
		return nil, fmt.Errorf("account services resolved outside an account, got %T", p.Source)
	}
	services, err := r.Catalog.AccountServices(acct.ID)
	if err != nil {
		return nil, err
	}
	return services, nil
}

// HasUnauthenticated reports whether any error in the result came from an
// account-scoped field resolved without a session. The transport uses it to
// pick between a login redirect and a 401.
func HasUnauthenticated(result *graphql.Result) bool {
	for _, formatted := range result.Errors {
		if unwrapOriginal(formatted.OriginalError(), domain.IsUnauthenticated) {
			return true
		}
	}
	return false
}

// unwrapOriginal walks both gqlerrors wrappers and regular error chains.
func unwrapOriginal(err error, pred func(error) bool) bool {
	for err != nil {
		if pred(err) {
			return true
		}
		switch wrapped := err.(type) {
		case *gqlerrors.Error:
			err = wrapped.OriginalError
		case gqlerrors.Error:
			err = wrapped.OriginalError
		case gqlerrors.FormattedError:
			err = wrapped.OriginalError()
		default:
			err = errors.Unwrap(err)
		}
	}
	return false
}
