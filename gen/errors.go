package gen

import "errors"

var (
	// ErrNoTypes indicates that a Config names no identifier types
	ErrNoTypes = errors.New("gen: no identifier types to generate")

	// ErrInvalidPackage indicates that the package name is not a Go identifier
	ErrInvalidPackage = errors.New("gen: invalid package name")

	// ErrInvalidName indicates that a type name is not usable as a Go type name
	ErrInvalidName = errors.New("gen: invalid type name")

	// ErrDuplicateName indicates that two generated declarations share a name
	ErrDuplicateName = errors.New("gen: duplicate declaration")
)
