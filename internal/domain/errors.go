package domain

import (
	"errors"
	"fmt"
)

// ConfigurationError reports invalid navigation configuration detected at
// load time. It is fatal: the process must not start with a broken catalog.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// NotFoundError reports a slug with no matching catalog entry. The query
// layer surfaces it as a null field, never as a request failure.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no service with slug %q", e.Slug)
}

// MissingContextError reports account-scoped resolution attempted without an
// account id. This is a caller bug: account services must only be resolved
// behind an authenticated session.
type MissingContextError struct {
	Op string
}

func (e *MissingContextError) Error() string {
	return e.Op + ": account context required"
}

// UnauthenticatedError reports an account-scoped field requested without an
// authenticated session. The transport layer turns it into a login redirect
// or a 401, never into data.
type UnauthenticatedError struct{}

func (e *UnauthenticatedError) Error() string {
	return "not authenticated"
}

// UpstreamError wraps a failure from the remote account service. It is
// attached to the response as a field-level error; the rest of the query
// still resolves.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "account service: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsUnauthenticated(err error) bool {
	var ua *UnauthenticatedError
	return errors.As(err, &ua)
}

func IsMissingContext(err error) bool {
	var mc *MissingContextError
	return errors.As(err, &mc)
}

func IsUpstream(err error) bool {
	var up *UpstreamError
	return errors.As(err, &up)
}
