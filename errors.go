package mouuid

import "errors"

var (
	// ErrInvalidFormat indicates that a hex or base64 encoded ID is malformed
	ErrInvalidFormat = errors.New("mouuid: invalid ID format")

	// ErrInvalidLength indicates that the ID byte slice has incorrect length
	ErrInvalidLength = errors.New("mouuid: invalid ID length (expected 16 bytes)")
)
