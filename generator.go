package mouuid

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/google/uuid"
)

// Generator is a thread-safe source of random (version 4) IDs backed by an
// arbitrary io.Reader. Most code should call New; a Generator is for callers
// that need a specific entropy source, such as deterministic tests.
type Generator struct {
	mu         sync.Mutex
	randReader io.Reader
}

// NewGenerator creates a new generator with crypto/rand as the random source
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
	}
}

// NewGeneratorWithReader creates a new generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
	}
}

// NewUUID draws 16 bytes from the generator's reader and sets the version 4
// and RFC 4122 variant bits.
func (g *Generator) NewUUID() (uuid.UUID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return uuid.NewRandomFromReader(g.randReader)
}

// Generate returns a new random ID of kind K drawn from g.
func Generate[K Kind](g *Generator) (ID[K], error) {
	u, err := g.NewUUID()
	if err != nil {
		return ID[K]{}, err
	}
	return ID[K]{UUID: u}, nil
}

// Must is a helper that wraps a call to a function returning (ID[K], error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = mouuid.Must(mouuid.Generate[entity](gen))
func Must[K Kind](id ID[K], err error) ID[K] {
	if err != nil {
		panic(err)
	}
	return id
}
