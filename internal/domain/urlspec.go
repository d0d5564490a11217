package domain

import (
	"strings"
)

// URLKind enumerates the closed set of URL forms a catalog entry may declare.
// Classification happens once at catalog load; query-time resolution only
// switches on the kind and never re-inspects the raw string.
type URLKind int

const (
	// URLAbsolute is a fully qualified URL, used verbatim.
	URLAbsolute URLKind = iota
	// URLRelative is a path joined onto the active base URL.
	URLRelative
	// URLRoot is the bare "/", meaning the active base URL itself.
	URLRoot
	// URLTemplated carries {id} placeholders filled with the authenticated
	// account's id. Only account services may declare this form.
	URLTemplated
)

func (k URLKind) String() string {
	switch k {
	case URLAbsolute:
		return "absolute"
	case URLRelative:
		return "relative"
	case URLRoot:
		return "root"
	case URLTemplated:
		return "templated"
	}
	return "unknown"
}

// AccountPlaceholder is the token replaced by the account id in templated
// URLs, e.g. "https://sso.example.com/changepassword/{id}".
const AccountPlaceholder = "{id}"

// URLSpec is a classified URL declaration.
type URLSpec struct {
	Kind  URLKind
	Value string
}

// ClassifyURL maps a raw configured URL string to its URLSpec. accountScoped
// enables the templated form; catalog services never template on the account.
func ClassifyURL(raw string, accountScoped bool) URLSpec {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "/":
		return URLSpec{Kind: URLRoot, Value: raw}
	case accountScoped && strings.Contains(raw, AccountPlaceholder):
		return URLSpec{Kind: URLTemplated, Value: raw}
	case strings.Contains(raw, "://"):
		return URLSpec{Kind: URLAbsolute, Value: raw}
	default:
		return URLSpec{Kind: URLRelative, Value: raw}
	}
}

// Resolve computes the final URL against baseURL. accountID is
// only consulted for templated specs. The transform is pure: equal inputs
// always produce equal output, and no I/O happens here.
func (s URLSpec) Resolve(baseURL, accountID string) (string, error) {
	switch s.Kind {
	case URLAbsolute:
		return s.Value, nil
	case URLRoot:
		return baseURL, nil
	case URLRelative:
		// Exactly one separator between base and path, whatever the
		// configured slashes look like.
		return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(s.Value, "/"), nil
	case URLTemplated:
		if accountID == "" {
			return "", &MissingContextError{Op: "resolve " + s.Value}
		}
		return strings.ReplaceAll(s.Value, AccountPlaceholder, accountID), nil
	}
	return "", &ConfigurationError{Reason: "unknown url kind for " + s.Value}
}
