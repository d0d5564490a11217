package navfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasshq/compass/internal/domain"
)

func TestMapperMap(t *testing.T) {
	config := &Config{
		BaseURL:    "http://us-east-1.test.com",
		Datacenter: "us-east-1",
		Regions: []RegionConfig{
			{
				Name: "us",
				Datacenters: []DatacenterConfig{
					{Name: "us-east-1", URL: "http://localhost"},
				},
			},
		},
		Categories: []CategoryConfig{
			{
				Name: "Compute",
				Services: []ServiceConfig{
					{Name: "VMs & Containers", Slug: "vms-containers", URL: "/instances"},
					{Name: "Dashboard", Slug: "dashboard", URL: "/"},
					{Name: "Support", Slug: "contact-support", URL: "https://help.test.com"},
				},
			},
		},
		AccountServices: []ServiceConfig{
			{Name: "Change Password", Slug: "change-password", URL: "https://sso.test.com/changepassword/{id}"},
		},
	}

	p := NewMapper().Map(config)

	assert.Equal(t, "http://us-east-1.test.com", p.BaseURL)
	assert.Equal(t, "us-east-1", p.DCName)

	require.Len(t, p.Regions, 1)
	assert.Equal(t, "us-east-1", p.Regions[0].Datacenters[0].Name)

	require.Len(t, p.Categories, 1)
	services := p.Categories[0].Services
	require.Len(t, services, 3)
	assert.Equal(t, domain.URLRelative, services[0].URL.Kind)
	assert.Equal(t, domain.URLRoot, services[1].URL.Kind)
	assert.Equal(t, domain.URLAbsolute, services[2].URL.Kind)

	require.Len(t, p.AccountServices, 1)
	assert.Equal(t, domain.URLTemplated, p.AccountServices[0].URL.Kind)
}

func TestMapperPreservesOrder(t *testing.T) {
	config := &Config{
		Categories: []CategoryConfig{
			{Name: "First"},
			{Name: "Second"},
			{Name: "Third"},
		},
	}

	p := NewMapper().Map(config)

	require.Len(t, p.Categories, 3)
	assert.Equal(t, "First", p.Categories[0].Name)
	assert.Equal(t, "Second", p.Categories[1].Name)
	assert.Equal(t, "Third", p.Categories[2].Name)
}
