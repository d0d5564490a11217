// Package catalog holds the immutable navigation model and the read-only
// lookups over it. The model is built once at startup from the navigation
// file and never mutated afterwards, so accessors need no locking.
package catalog

import (
	"fmt"
	"net/url"

	"github.com/compasshq/compass/internal/domain"
)

// Params is the raw, already-classified configuration the catalog is built
// from. The navfile mapper produces it; tests build it directly.
type Params struct {
	BaseURL         string
	DCName          string
	Regions         []domain.Region
	Categories      []domain.Category
	AccountServices []domain.AccountService
}

// Catalog is the process-wide navigation model. Construct it with Load and
// pass it explicitly to whatever needs it; there is no package-level state.
type Catalog struct {
	baseURL         string
	current         domain.Datacenter
	regions         []domain.Region
	categories      []domain.Category
	accountServices []domain.AccountService
	bySlug          map[string]domain.Service
}

// Load validates p and builds the catalog. Any failure is a
// *domain.ConfigurationError and must abort startup.
func Load(p Params) (*Catalog, error) {
	base, err := url.Parse(p.BaseURL)
	if err != nil || !base.IsAbs() || base.Host == "" {
		return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("base url %q is not an absolute URL", p.BaseURL)}
	}

	c := &Catalog{
		baseURL:         p.BaseURL,
		regions:         p.Regions,
		categories:      p.Categories,
		accountServices: p.AccountServices,
		bySlug:          make(map[string]domain.Service),
	}

	var currentFound bool
	for _, region := range p.Regions {
		if len(region.Datacenters) == 0 {
			return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("region %q has no datacenters", region.Name)}
		}
		for _, dc := range region.Datacenters {
			if dc.Name == p.DCName && !currentFound {
				c.current = dc
				currentFound = true
			}
		}
	}
	if !currentFound {
		return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("datacenter %q is not declared in any region", p.DCName)}
	}

	seen := make(map[string]bool)
	for _, cat := range p.Categories {
		for _, svc := range cat.Services {
			if err := checkSlug(seen, svc.Slug, svc.Name); err != nil {
				return nil, err
			}
			if svc.URL.Kind == domain.URLTemplated {
				return nil, &domain.ConfigurationError{Reason: fmt.Sprintf("service %q declares a templated url outside the account scope", svc.Slug)}
			}
			c.bySlug[svc.Slug] = svc
		}
	}
	for _, svc := range p.AccountServices {
		if err := checkSlug(seen, svc.Slug, svc.Name); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func checkSlug(seen map[string]bool, slug, name string) error {
	if slug == "" {
		return &domain.ConfigurationError{Reason: fmt.Sprintf("service %q has no slug", name)}
	}
	if seen[slug] {
		return &domain.ConfigurationError{Reason: fmt.Sprintf("duplicate slug %q", slug)}
	}
	seen[slug] = true
	return nil
}

// BaseURL is the active console base URL services resolve against.
func (c *Catalog) BaseURL() string { return c.baseURL }

// CurrentDatacenter is the one datacenter this process serves, selected at
// startup by name.
func (c *Catalog) CurrentDatacenter() domain.Datacenter { return c.current }

// Regions lists every region with its datacenters, in configured order.
// Datacenter URLs are absolute as configured; nothing to resolve.
func (c *Catalog) Regions() []domain.Region { return c.regions }

// Categories lists the catalog in configured order with every service URL
// resolved against the process base URL.
func (c *Catalog) Categories() []domain.ResolvedCategory {
	out := make([]domain.ResolvedCategory, 0, len(c.categories))
	for _, cat := range c.categories {
		rc := domain.ResolvedCategory{
			Name:     cat.Name,
			Services: make([]domain.ResolvedService, 0, len(cat.Services)),
		}
		for _, svc := range cat.Services {
			// Load rejects templated catalog entries, so resolution of the
			// remaining kinds cannot fail.
			resolved, _ := svc.URL.Resolve(c.baseURL, "")
			rc.Services = append(rc.Services, domain.ResolvedService{
				Name: svc.Name,
				Slug: svc.Slug,
				URL:  resolved,
			})
		}
		out = append(out, rc)
	}
	return out
}

// FindService looks a service up by slug and resolves its URL. Unknown slugs
// yield a *domain.NotFoundError; the query layer maps that to null.
func (c *Catalog) FindService(slug string) (domain.ResolvedService, error) {
	svc, ok := c.bySlug[slug]
	if !ok {
		return domain.ResolvedService{}, &domain.NotFoundError{Slug: slug}
	}
	resolved, err := svc.URL.Resolve(c.baseURL, "")
	if err != nil {
		return domain.ResolvedService{}, err
	}
	return domain.ResolvedService{Name: svc.Name, Slug: svc.Slug, URL: resolved}, nil
}

// AccountServices resolves the account-scoped entries for accountID, in
// configured order. Calling it without an account id is a usage error.
func (c *Catalog) AccountServices(accountID string) ([]domain.ResolvedService, error) {
	if accountID == "" {
		return nil, &domain.MissingContextError{Op: "list account services"}
	}
	out := make([]domain.ResolvedService, 0, len(c.accountServices))
	for _, svc := range c.accountServices {
		resolved, err := svc.URL.Resolve(c.baseURL, accountID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ResolvedService{
			Name: svc.Name,
			Slug: svc.Slug,
			URL:  resolved,
		})
	}
	return out, nil
}
