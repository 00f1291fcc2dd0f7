// Package mouuid lets you make your own UUID types, so that identifiers from
// different domains cannot be confused with each other.
//
// Programs that juggle many kinds of UUIDs (entities, assets, prefabs that are
// addressed like assets, ...) lose the help of the type system once everything
// is a uuid.UUID. Wrapping each kind in its own type turns a mixed-up comparison
// or assignment into a compile error, while the raw UUID stays one field access
// away. Hiding the UUID is a non-goal.
//
// Two flavours are provided.
//
// Phantom-tag IDs:
//
//	type entity struct{}
//
//	func (entity) KindName() string { return "EntityId" }
//
//	type asset struct{}
//
//	func (asset) KindName() string { return "AssetId" }
//
//	type EntityId = mouuid.ID[entity]
//	type AssetId = mouuid.ID[asset]
//
//	type Entity struct {
//	    ID     EntityId
//	    Sprite AssetId
//	}
//
//	e := Entity{ID: mouuid.New[entity](), Sprite: mouuid.New[asset]()}
//	other := mouuid.New[asset]()
//
//	// if e.ID == other { ... }   does not compile
//	if e.Sprite == other {
//	    // a UUID collision; the impossible happened
//	}
//
// Generated IDs:
//
// The mouuid command (cmd/mouuid) emits one standalone struct per name, with
// NewX, XFromUUID and ParseX constructors, for packages that prefer plain named
// types over generics:
//
//	//go:generate mouuid -type=EntityId -doc="An EntityId is my favorite id."
//
// Both flavours share the same contract:
//   - the zero value wraps the nil UUID
//   - equality and map hashing are those of the underlying 16 bytes
//   - String renders Name(xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx)
//   - text, binary and SQL encodings are exactly those of the bare UUID
//   - parsing is the only operation that can fail
//
// Thread Safety:
//
// IDs are plain values and may be copied and shared between goroutines freely.
// A Generator serializes reads from its random source.
package mouuid
