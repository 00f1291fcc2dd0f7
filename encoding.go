package mouuid

import (
	"database/sql/driver"
	"encoding/base64"
	"encoding/hex"
)

// The codecs below delegate to the wrapped UUID so that an ID encodes exactly
// like its bare uuid.UUID: a JSON or YAML ID is a plain UUID string, not an object.

// MarshalText implements the encoding.TextMarshaler interface
func (id ID[K]) MarshalText() ([]byte, error) {
	return id.UUID.MarshalText()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (id *ID[K]) UnmarshalText(data []byte) error {
	return id.UUID.UnmarshalText(data)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (id ID[K]) MarshalBinary() ([]byte, error) {
	return id.UUID.MarshalBinary()
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
// A slice that is not 16 bytes long fails with the uuid package's error and
// leaves id unchanged.
func (id *ID[K]) UnmarshalBinary(data []byte) error {
	return id.UUID.UnmarshalBinary(data)
}

// Scan implements the sql.Scanner interface for database compatibility.
// A NULL or empty source leaves the ID unchanged.
func (id *ID[K]) Scan(src interface{}) error {
	return id.UUID.Scan(src)
}

// Value implements the driver.Valuer interface for database compatibility
func (id ID[K]) Value() (driver.Value, error) {
	return id.UUID.Value()
}

// EncodeToHex encodes the ID to a hexadecimal string without hyphens
func (id ID[K]) EncodeToHex() string {
	return hex.EncodeToString(id.UUID[:])
}

// EncodeToBase64 encodes the ID to a base64 string (URL-safe, no padding)
func (id ID[K]) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(id.UUID[:])
}

// DecodeFromHex decodes a 32 digit hexadecimal string to an ID
func DecodeFromHex[K Kind](s string) (ID[K], error) {
	var id ID[K]
	if len(s) != 32 {
		return id, ErrInvalidFormat
	}
	if _, err := hex.Decode(id.UUID[:], []byte(s)); err != nil {
		return ID[K]{}, ErrInvalidFormat
	}
	return id, nil
}

// DecodeFromBase64 decodes a base64 string (URL-safe encoding) to an ID
func DecodeFromBase64[K Kind](s string) (ID[K], error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return ID[K]{}, ErrInvalidFormat
	}
	return FromBytes[K](data)
}
