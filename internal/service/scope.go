package service

import "errors"

// Scope selects whether a listing covers every user's resources or only
// the viewer's own.
type Scope string

const (
	ScopeAll  Scope = "all"
	ScopeUser Scope = "user"
)

var ErrInvalidScope = errors.New("scope must be all or user")

func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeAll, ScopeUser:
		return Scope(s), nil
	}
	return "", ErrInvalidScope
}
