// Package types provides type definitions for structured data used throughout the troop-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "errors"

var (
	// ErrUnknownResourceKind indicates a kind name outside the fixed resource dimensions.
	ErrUnknownResourceKind = errors.New("unknown resource kind")
	// ErrInvalidResources indicates a textual resource vector that cannot be parsed.
	ErrInvalidResources = errors.New("invalid resources")
	// ErrUnknownUnit indicates a unit name missing from a catalog.
	ErrUnknownUnit = errors.New("unknown unit")
)
