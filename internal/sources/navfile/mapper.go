package navfile

import (
	"github.com/compasshq/compass/internal/catalog"
	"github.com/compasshq/compass/internal/domain"
)

// Mapper converts the parsed navigation file into catalog load parameters,
// classifying every URL into its tagged form along the way. Validation is
// the catalog's job, not the mapper's.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map converts config to catalog.Params, preserving file order everywhere.
func (m *Mapper) Map(config *Config) catalog.Params {
	p := catalog.Params{
		BaseURL: config.BaseURL,
		DCName:  config.Datacenter,
	}

	for _, region := range config.Regions {
		r := domain.Region{Name: region.Name}
		for _, dc := range region.Datacenters {
			r.Datacenters = append(r.Datacenters, domain.Datacenter{
				Name: dc.Name,
				URL:  dc.URL,
			})
		}
		p.Regions = append(p.Regions, r)
	}

	for _, category := range config.Categories {
		c := domain.Category{Name: category.Name}
		for _, svc := range category.Services {
			c.Services = append(c.Services, domain.Service{
				Name: svc.Name,
				Slug: svc.Slug,
				URL:  domain.ClassifyURL(svc.URL, false),
			})
		}
		p.Categories = append(p.Categories, c)
	}

	for _, svc := range config.AccountServices {
		p.AccountServices = append(p.AccountServices, domain.AccountService{
			Name: svc.Name,
			Slug: svc.Slug,
			URL:  domain.ClassifyURL(svc.URL, true),
		})
	}

	return p
}
