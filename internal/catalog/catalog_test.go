package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasshq/compass/internal/domain"
)

func fixtureParams() Params {
	return Params{
		BaseURL: "http://us-east-1.test.com",
		DCName:  "us-east-1",
		Regions: []domain.Region{
			{
				Name: "us",
				Datacenters: []domain.Datacenter{
					{Name: "us-east-1", URL: "http://localhost"},
					{Name: "us-west-1", URL: "http://us-west-1.test.com"},
				},
			},
			{
				Name: "eu",
				Datacenters: []domain.Datacenter{
					{Name: "eu-central-1", URL: "http://eu-central-1.test.com"},
				},
			},
		},
		Categories: []domain.Category{
			{
				Name: "Compute",
				Services: []domain.Service{
					{Name: "VMs & Containers", Slug: "vms-containers", URL: domain.ClassifyURL("/instances", false)},
					{Name: "Dashboard", Slug: "dashboard", URL: domain.ClassifyURL("/", false)},
				},
			},
			{
				Name: "Help & Support",
				Services: []domain.Service{
					{Name: "Contact Support", Slug: "contact-support", URL: domain.ClassifyURL("https://help.test.com/tickets", false)},
				},
			},
		},
		AccountServices: []domain.AccountService{
			{Name: "Change Password", Slug: "change-password", URL: domain.ClassifyURL("https://sso.test.com/changepassword/{id}", true)},
			{Name: "Billing", Slug: "billing", URL: domain.ClassifyURL("/billing", true)},
		},
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{
			name:   "unknown datacenter",
			mutate: func(p *Params) { p.DCName = "mars-1" },
		},
		{
			name:   "region without datacenters",
			mutate: func(p *Params) { p.Regions[1].Datacenters = nil },
		},
		{
			name:   "relative base url",
			mutate: func(p *Params) { p.BaseURL = "/console" },
		},
		{
			name:   "empty base url",
			mutate: func(p *Params) { p.BaseURL = "" },
		},
		{
			name: "duplicate catalog slug",
			mutate: func(p *Params) {
				p.Categories[1].Services[0].Slug = "vms-containers"
			},
		},
		{
			name: "account slug colliding with catalog slug",
			mutate: func(p *Params) {
				p.AccountServices[0].Slug = "dashboard"
			},
		},
		{
			name: "missing slug",
			mutate: func(p *Params) {
				p.Categories[0].Services[0].Slug = ""
			},
		},
		{
			name: "templated url on catalog service",
			mutate: func(p *Params) {
				p.Categories[0].Services[0].URL = domain.ClassifyURL("/accounts/{id}", true)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fixtureParams()
			tt.mutate(&p)

			_, err := Load(p)
			require.Error(t, err)
			var cfgErr *domain.ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestCurrentDatacenter(t *testing.T) {
	c, err := Load(fixtureParams())
	require.NoError(t, err)

	dc := c.CurrentDatacenter()
	assert.Equal(t, "us-east-1", dc.Name)
	assert.Equal(t, "http://localhost", dc.URL)
}

func TestRegionsPreserveOrder(t *testing.T) {
	c, err := Load(fixtureParams())
	require.NoError(t, err)

	regions := c.Regions()
	require.Len(t, regions, 2)
	assert.Equal(t, "us", regions[0].Name)
	assert.Equal(t, "eu", regions[1].Name)
	assert.Equal(t, "us-east-1", regions[0].Datacenters[0].Name)
	assert.Equal(t, "us-west-1", regions[0].Datacenters[1].Name)
}

func TestCategoriesResolveURLs(t *testing.T) {
	c, err := Load(fixtureParams())
	require.NoError(t, err)

	cats := c.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "Compute", cats[0].Name)
	assert.Equal(t, "Help & Support", cats[1].Name)

	compute := cats[0].Services
	require.Len(t, compute, 2)
	assert.Equal(t, "http://us-east-1.test.com/instances", compute[0].URL)
	// Root-relative means the base URL itself, no trailing slash appended.
	assert.Equal(t, "http://us-east-1.test.com", compute[1].URL)
	assert.Equal(t, "https://help.test.com/tickets", cats[1].Services[0].URL)
}

func TestFindService(t *testing.T) {
	c, err := Load(fixtureParams())
	require.NoError(t, err)

	svc, err := c.FindService("contact-support")
	require.NoError(t, err)
	assert.Equal(t, "Contact Support", svc.Name)
	assert.Equal(t, "https://help.test.com/tickets", svc.URL)

	_, err = c.FindService("no-such-slug")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestAccountServices(t *testing.T) {
	c, err := Load(fixtureParams())
	require.NoError(t, err)

	services, err := c.AccountServices("4fc1d638")
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "https://sso.test.com/changepassword/4fc1d638", services[0].URL)
	assert.Equal(t, "http://us-east-1.test.com/billing", services[1].URL)
}

func TestAccountServicesWithoutAccount(t *testing.T) {
	c, err := Load(fixtureParams())
	require.NoError(t, err)

	_, err = c.AccountServices("")
	require.Error(t, err)
	assert.True(t, domain.IsMissingContext(err))
}
