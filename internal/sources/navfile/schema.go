package navfile

// Config is the top-level structure of the navigation catalog file.
type Config struct {
	BaseURL         string           `yaml:"base_url"`
	Datacenter      string           `yaml:"datacenter"`
	Regions         []RegionConfig   `yaml:"regions"`
	Categories      []CategoryConfig `yaml:"categories"`
	AccountServices []ServiceConfig  `yaml:"account_services,omitempty"`
}

// RegionConfig declares one region and its datacenters, in display order.
type RegionConfig struct {
	Name        string             `yaml:"name"`
	Datacenters []DatacenterConfig `yaml:"datacenters"`
}

// DatacenterConfig declares one datacenter; url is the absolute base URL of
// that deployment.
type DatacenterConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// CategoryConfig declares one navigation category, in display order.
type CategoryConfig struct {
	Name     string          `yaml:"name"`
	Services []ServiceConfig `yaml:"services"`
}

// ServiceConfig declares one service. The url may be absolute, relative,
// the bare "/", or (account services only) templated on {id}.
type ServiceConfig struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
	URL  string `yaml:"url"`
}
