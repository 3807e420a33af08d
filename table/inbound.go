package table

import (
	"fmt"
	"sync/atomic"

	"github.com/meshkit/wiretab/format"
)

// inboundSnapshot is the immutable state an Inbound holder publishes
// atomically. Codes are dense on the decode side, so the read-optimized
// structure is a slice indexed by code.
type inboundSnapshot[T any] struct {
	version Version
	values  []T
}

// Inbound holds the currently active decompression table for one
// (peer, table kind) pair on the receiver side: the inverse of Outbound,
// mapping codes back to values.
//
// It follows the same versioning and publish protocol as Outbound: Decompress
// is wait-free, Flip is a lock-free compare-and-publish retry loop, and
// duplicate or stale advertisements are ignored and reported to the Events
// observer.
type Inbound[T any] struct {
	kind    format.TableKind
	events  Events
	current atomic.Pointer[inboundSnapshot[T]]
}

// NewInbound creates a holder with no active table: ActiveVersion reports
// VersionNone and every Decompress misses until the first Flip. A nil events
// observer defaults to NopEvents.
func NewInbound[T any](kind format.TableKind, events Events) *Inbound[T] {
	if events == nil {
		events = NopEvents{}
	}

	i := &Inbound[T]{
		kind:   kind,
		events: events,
	}
	i.current.Store(&inboundSnapshot[T]{version: VersionNone})

	return i
}

// NewIdentityInbound creates the endpoint-identity specialization, seeded
// with a version-0 table that decodes NoOpIdentityCode to the well-known
// no-op identity.
func NewIdentityInbound[T any](noop T, events Events) *Inbound[T] {
	i := NewInbound[T](format.TableIdentity, events)
	i.Flip(0, []T{noop})

	return i
}

// NewManifestInbound creates the type-descriptor specialization, seeded with
// an empty version-0 table.
func NewManifestInbound[T any](events Events) *Inbound[T] {
	i := NewInbound[T](format.TableManifest, events)
	i.Flip(0, nil)

	return i
}

// Flip atomically replaces the active table with the given code→value slice
// if version is strictly higher than the active version. values is indexed by
// code; it is copied, so the caller may reuse the slice.
//
// The version protocol matches Outbound.Flip: duplicates and stale versions
// are ignored and reported, lost publish races are retried against a fresh
// read, and no reader ever observes a version that later decreases.
func (i *Inbound[T]) Flip(version Version, values []T) {
	var next *inboundSnapshot[T]

	for {
		current := i.current.Load()

		switch {
		case version > current.version:
			if next == nil {
				owned := make([]T, len(values))
				copy(owned, values)
				next = &inboundSnapshot[T]{version: version, values: owned}
			}
			if i.current.CompareAndSwap(current, next) {
				return
			}

		case version == current.version:
			i.events.TableDuplicate(i.kind, version)
			return

		default:
			i.events.TableStale(i.kind, current.version, version)
			return
		}
	}
}

// Decompress returns the value assigned to code in the active table. The
// second result is false when the code is out of range for the active table,
// including the NotCompressed sentinel.
//
// Wait-free: one atomic snapshot read plus one bounds-checked slice index.
func (i *Inbound[T]) Decompress(code int) (T, bool) {
	snap := i.current.Load()
	if code < 0 || code >= len(snap.values) {
		var zero T
		return zero, false
	}

	return snap.values[code], true
}

// ActiveVersion returns the version of the currently active table.
// Advisory only, like Outbound.ActiveVersion.
func (i *Inbound[T]) ActiveVersion() Version {
	return i.current.Load().version
}

// ActiveSize returns the entry count of the currently active table.
func (i *Inbound[T]) ActiveSize() int {
	return len(i.current.Load().values)
}

// Kind returns the value domain this holder decompresses.
func (i *Inbound[T]) Kind() format.TableKind {
	return i.kind
}

// String returns a debug description with the active version and table size.
func (i *Inbound[T]) String() string {
	snap := i.current.Load()

	return fmt.Sprintf("InboundCompressionTable(kind=%s, version=%d, size=%d)",
		i.kind, snap.version, len(snap.values))
}
