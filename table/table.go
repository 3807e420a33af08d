package table

import "iter"

// Version numbers a negotiated compression table. Versions are sourced from
// the peer's advertisement messages and increase monotonically per
// (peer, table kind) pair.
//
// int64 is wide enough that rollover is unreachable in practice: at one
// advertisement per millisecond a peer would need ~292 million years.
type Version int64

const (
	// VersionNone is the version held before any table has been activated.
	// It is lower than every legitimate version; seed tables start at 0.
	VersionNone Version = -1

	// NotCompressed is returned by Compress for values without an assigned
	// code, instructing the encoder to write the value in full. It is
	// reserved globally and never appears as a real code.
	NotCompressed = -1

	// NoOpIdentityCode is the code pre-assigned to the well-known no-op
	// identity in the identity specialization, so that identity compresses
	// even before any real table negotiation occurs.
	NoOpIdentityCode = 0
)

// CompressionTable is an immutable carrier of one negotiated value→code
// mapping. It is produced fully formed by the advertisement collaborator and
// consumed exactly once by Flip; the mapping must not be mutated after
// construction.
type CompressionTable[T comparable] struct {
	version Version
	mapping map[T]int
}

// New creates a compression table from an advertised version and mapping.
//
// The table takes ownership of mapping; callers must not modify it afterwards.
// A nil mapping is valid and yields an empty table.
func New[T comparable](version Version, mapping map[T]int) CompressionTable[T] {
	return CompressionTable[T]{
		version: version,
		mapping: mapping,
	}
}

// Version returns the advertised version of this table.
func (t CompressionTable[T]) Version() Version {
	return t.version
}

// Size returns the number of value→code entries in this table.
func (t CompressionTable[T]) Size() int {
	return len(t.mapping)
}

// All returns an iterator over the (value, code) entries of this table.
// Iteration order is unspecified.
func (t CompressionTable[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for value, code := range t.mapping {
			if !yield(value, code) {
				return
			}
		}
	}
}
