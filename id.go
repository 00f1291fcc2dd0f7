package mouuid

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// Kind names an identifier domain. Implementations are zero-size tag types whose
// KindName returns a constant, for example:
//
//	type entity struct{}
//
//	func (entity) KindName() string { return "EntityId" }
type Kind interface {
	KindName() string
}

// ID is a UUID bound to the identifier domain K. ID[A] and ID[B] are distinct
// types whenever A and B are, so mixing them up is a compile error.
//
// The wrapped UUID is deliberately exposed; ID is not an opaque type.
type ID[K Kind] struct {
	UUID uuid.UUID
}

// New returns an ID wrapping a freshly generated random (version 4) UUID.
func New[K Kind]() ID[K] {
	return ID[K]{UUID: uuid.New()}
}

// FromUUID returns an ID wrapping u as is.
func FromUUID[K Kind](u uuid.UUID) ID[K] {
	return ID[K]{UUID: u}
}

// Parse parses s into an ID. It accepts the forms understood by uuid.Parse:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
//
// Hex digits are case-insensitive. The parser's error is returned unchanged.
func Parse[K Kind](s string) (ID[K], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID[K]{}, err
	}
	return ID[K]{UUID: u}, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse[K Kind](s string) ID[K] {
	id, err := Parse[K](s)
	if err != nil {
		var k K
		panic(fmt.Sprintf("mouuid: Parse[%s](%q): %v", k.KindName(), s, err))
	}
	return id
}

// FromBytes creates an ID from a 16 byte slice.
func FromBytes[K Kind](b []byte) (ID[K], error) {
	if len(b) != 16 {
		return ID[K]{}, ErrInvalidLength
	}
	var id ID[K]
	copy(id.UUID[:], b)
	return id, nil
}

// String renders the ID as Kind(xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx).
func (id ID[K]) String() string {
	var k K
	return k.KindName() + "(" + id.UUID.String() + ")"
}

// Bytes returns a copy of the underlying 16 bytes.
func (id ID[K]) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, id.UUID[:])
	return b
}

// IsNil returns true if the ID wraps the nil UUID (all zeros).
func (id ID[K]) IsNil() bool {
	return id.UUID == uuid.Nil
}

// Equal returns true if id and other wrap the same UUID.
func (id ID[K]) Equal(other ID[K]) bool {
	return id == other
}

// Compare returns an integer comparing two IDs lexicographically.
// The result will be 0 if id==other, -1 if id < other, and +1 if id > other.
func (id ID[K]) Compare(other ID[K]) int {
	return bytes.Compare(id.UUID[:], other.UUID[:])
}
