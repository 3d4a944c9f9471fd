package authcore

import "errors"

// passwordField is the fixed request field holding the submitted password.
const passwordField = "password"

// ErrNoIdentifier is returned by selectors when none of their candidate
// fields is present in the request parameters.
var ErrNoIdentifier = errors.New("no identifier field in params")

// IdentifierSelector extracts the identifying field name, the identifier
// value, and the password from raw request parameters. It is the closed
// form of the caller's identification strategy: a fixed field, a
// first-match list, or an arbitrary function.
type IdentifierSelector interface {
	Select(params map[string]string) (fieldName, identifier, password string, err error)
}

// ByField identifies the user by a single fixed field, e.g.
// ByField("email") or ByField("username").
type ByField string

// Select reads the named field and the password from params. A missing
// identifier field selects an empty identifier rather than failing, so
// the attempt still runs the full denial path.
func (f ByField) Select(params map[string]string) (string, string, string, error) {
	return string(f), params[string(f)], params[passwordField], nil
}

// FirstOf identifies the user by the first of several candidate fields
// present in the parameters.
type FirstOf []string

func (f FirstOf) Select(params map[string]string) (string, string, string, error) {
	for _, field := range f {
		if value, ok := params[field]; ok {
			return field, value, params[passwordField], nil
		}
	}
	return "", "", "", ErrNoIdentifier
}

// SelectorFunc adapts a plain function into an [IdentifierSelector].
type SelectorFunc func(params map[string]string) (fieldName, identifier, password string, err error)

func (fn SelectorFunc) Select(params map[string]string) (string, string, string, error) {
	return fn(params)
}
