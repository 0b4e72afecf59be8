package goini

// Presence is the bit flag collected by DecodeWithMeta.
type Presence uint8

const (
	PresenceSeen  Presence = 1 << iota // Key appeared in the input.
	PresenceEmpty                      // Key appeared with nothing after '='.
)

// PresenceMap maps field paths ("/name") to Presence flags. Fields that never
// appeared have no entry.
type PresenceMap map[string]Presence

// Decoded carries the decoded value along with presence metadata.
type Decoded[T any] struct {
	Value    T
	Presence PresenceMap
}

// Seen reports whether the field's key appeared in the input.
func (pm PresenceMap) Seen(name string) bool { return pm[fieldPath(name)]&PresenceSeen != 0 }

// Empty reports whether the field's key appeared without a value.
func (pm PresenceMap) Empty(name string) bool { return pm[fieldPath(name)]&PresenceEmpty != 0 }

func (pm PresenceMap) mark(p RawPair) {
	if pm == nil {
		return
	}
	f := PresenceSeen
	if !p.Present {
		f |= PresenceEmpty
	}
	pm[fieldPath(p.Key)] |= f
}
