package domain

// Datacenter is one deployment of the console. Its URL is the absolute base
// URL of that deployment and needs no resolution step.
type Datacenter struct {
	Name string
	URL  string
}

// Region is a named, ordered group of datacenters. Order is the configured
// display order and is preserved byte-for-byte through every query response.
type Region struct {
	Name        string
	Datacenters []Datacenter
}

// Service is a catalog entry reachable from the console navigation.
//
// The slug is unique across the entire catalog and is the lookup key for the
// service(slug) query, independent of the display name.
type Service struct {
	Name string
	Slug string
	URL  URLSpec
}

// Category is a named, ordered group of services. Categories keep their
// configured order; it is semantically meaningful (display order).
type Category struct {
	Name     string
	Services []Service
}

// AccountService is a per-account navigation entry (change password, usage,
// billing...). It lives in its own ordered sequence, separate from the
// category catalog, and only resolves behind an authenticated account since
// its URL may be templated on the account id.
type AccountService struct {
	Name string
	Slug string
	URL  URLSpec
}

// ResolvedService is a Service (or AccountService) with its final URL
// computed for the active environment.
type ResolvedService struct {
	Name string
	Slug string
	URL  string
}

// ResolvedCategory is a Category whose services carry final URLs.
type ResolvedCategory struct {
	Name     string
	Services []ResolvedService
}
