// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrAuthRequired is returned when "@me" is used without an authenticated caller.
	ErrAuthRequired = errors.New("authentication required")
	// ErrInvalidToken signals an API token that matches no system.
	ErrInvalidToken = errors.New("invalid token")
	// ErrSystemNotFound signals a system reference that resolved to nothing.
	ErrSystemNotFound = errors.New("system not found")
	// ErrMemberNotFound signals a member reference that resolved to nothing.
	ErrMemberNotFound = errors.New("member not found")
	// ErrGroupNotFound signals a group reference that resolved to nothing.
	ErrGroupNotFound = errors.New("group not found")
	// ErrNotImplemented marks endpoints that exist but do nothing yet.
	ErrNotImplemented = errors.New("not implemented")
)
