package mouuid

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator()

	id, err := Generate[entityKind](gen)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if id.IsNil() {
		t.Error("Generate() returned nil ID")
	}
	if id.UUID.Version() != 4 {
		t.Errorf("Generate() version = %v, want 4", id.UUID.Version())
	}
}

func TestNewGeneratorWithReader(t *testing.T) {
	seed := bytes.Repeat([]byte{0xab}, 32)

	a, err := Generate[entityKind](NewGeneratorWithReader(bytes.NewReader(seed)))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := Generate[entityKind](NewGeneratorWithReader(bytes.NewReader(seed)))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if a != b {
		t.Errorf("same reader contents should give the same ID: %v != %v", a, b)
	}
	// 0xab with the version nibble forced to 4 and the variant bits to 10.
	want := "abababab-abab-4bab-abab-abababababab"
	if a.UUID.String() != want {
		t.Errorf("Generate() = %v, want %s", a.UUID, want)
	}
}

func TestGenerator_ReaderError(t *testing.T) {
	gen := NewGeneratorWithReader(bytes.NewReader([]byte{1, 2, 3}))
	id, err := Generate[entityKind](gen)
	if err == nil {
		t.Fatal("Generate() expected error for short reader")
	}
	if !id.IsNil() {
		t.Errorf("Generate() = %v alongside an error, want nil ID", id)
	}
}

func TestGenerator_ConcurrentSafety(t *testing.T) {
	gen := NewGenerator()
	const goroutines = 10
	const perGoroutine = 100

	var (
		mu   sync.Mutex
		seen = make(map[EntityId]struct{}, goroutines*perGoroutine)
		wg   sync.WaitGroup
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				id, err := Generate[entityKind](gen)
				if err != nil {
					t.Errorf("Generate() error = %v", err)
					return
				}
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != goroutines*perGoroutine {
		t.Errorf("got %d unique IDs, want %d", len(seen), goroutines*perGoroutine)
	}
}

func TestMust(t *testing.T) {
	id := Must(Generate[assetKind](NewGenerator()))
	if id.IsNil() {
		t.Error("Must() returned nil ID")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Must() should panic on error")
		}
	}()
	Must(AssetId{}, errors.New("test error"))
}
