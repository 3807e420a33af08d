package table

import (
	"fmt"
	"sync/atomic"

	"github.com/meshkit/wiretab/format"
)

// snapshot is the immutable state an Outbound holder publishes atomically.
// The lookup map is built once, sized exactly to its table, and never written
// after publish, so readers need no synchronization beyond the pointer load.
type snapshot[T comparable] struct {
	version Version
	lookup  map[T]int
}

// Outbound holds the currently active compression table for one
// (peer, table kind) pair on the sender side.
//
// Compress is wait-free and allocation-free; Flip is lock-free with an
// optimistic retry loop. Both may be called concurrently from any number of
// goroutines with no external coordination. The zero value is not usable;
// create holders with NewOutbound or one of the seeded constructors.
type Outbound[T comparable] struct {
	kind    format.TableKind
	events  Events
	current atomic.Pointer[snapshot[T]]
}

// NewOutbound creates a holder with no active table: ActiveVersion reports
// VersionNone and Compress returns NotCompressed for every value until the
// first Flip. A nil events observer defaults to NopEvents.
//
// Most callers want NewIdentityOutbound or NewManifestOutbound instead, which
// seed the holder with its version-0 table.
func NewOutbound[T comparable](kind format.TableKind, events Events) *Outbound[T] {
	if events == nil {
		events = NopEvents{}
	}

	o := &Outbound[T]{
		kind:   kind,
		events: events,
	}
	o.current.Store(&snapshot[T]{version: VersionNone})

	return o
}

// NewIdentityOutbound creates the endpoint-identity specialization: a holder
// seeded with a version-0 table mapping the well-known no-op identity to
// NoOpIdentityCode, so Compress(noop) never misses, even before any real
// advertisement arrives.
func NewIdentityOutbound[T comparable](noop T, events Events) *Outbound[T] {
	o := NewOutbound[T](format.TableIdentity, events)
	o.Flip(New(0, map[T]int{noop: NoOpIdentityCode}))

	return o
}

// NewManifestOutbound creates the type-descriptor specialization: a holder
// seeded with an empty version-0 table, so ActiveVersion starts at a defined,
// non-sentinel version even though nothing is compressible yet.
func NewManifestOutbound[T comparable](events Events) *Outbound[T] {
	o := NewOutbound[T](format.TableManifest, events)
	o.Flip(New[T](0, nil))

	return o
}

// Flip atomically replaces the active table with activate if it carries a
// strictly higher version.
//
// The replacement is an optimistic compare-and-publish: the new snapshot is
// fully built off to the side, then swapped in only if no concurrent Flip
// published in the meantime; on a lost race the whole comparison restarts
// against the winner's table. Concurrent flips for distinct versions converge
// on the highest version regardless of interleaving, and no reader ever
// observes a half-built table or a version that later decreases.
//
// An activate version equal to the active one is a duplicate advertisement
// and is ignored; a lower version is a stale advertisement and is ignored,
// the active table keeps serving. Both are reported to the Events observer.
// Flip never blocks waiting for another Flip.
func (o *Outbound[T]) Flip(activate CompressionTable[T]) {
	for {
		current := o.current.Load()

		switch {
		case activate.version > current.version:
			if o.current.CompareAndSwap(current, prepare(activate)) {
				return
			}
			// Lost the publish race. A concurrent Flip may have installed a
			// version between current and activate, so re-read and re-judge
			// rather than retrying the swap blindly.

		case activate.version == current.version:
			o.events.TableDuplicate(o.kind, activate.version)
			return

		default:
			o.events.TableStale(o.kind, current.version, activate.version)
			return
		}
	}
}

// prepare builds the read-optimized snapshot for activate.
//
// The lookup map is sized exactly to the table so it never grows after
// construction, and it is never written again once published. prepare does no
// atomic operations and is safe to run redundantly on a failed retry.
func prepare[T comparable](activate CompressionTable[T]) *snapshot[T] {
	lookup := make(map[T]int, len(activate.mapping))
	for value, code := range activate.mapping {
		lookup[value] = code
	}

	return &snapshot[T]{
		version: activate.version,
		lookup:  lookup,
	}
}

// Compress returns the code for value in the active table, or NotCompressed
// if the value has no assigned code. A miss is an expected, common outcome
// meaning "send the value itself, uncompressed".
//
// This is the per-message hot-path call: one atomic snapshot read plus one
// map lookup. It never blocks, never allocates, and never panics on a miss.
func (o *Outbound[T]) Compress(value T) int {
	if code, ok := o.current.Load().lookup[value]; ok {
		return code
	}

	return NotCompressed
}

// ActiveVersion returns the version of the currently active table.
//
// Advisory only: a concurrent Flip may publish between this call and a
// subsequent Compress, so callers must not assume the two observe the same
// table.
func (o *Outbound[T]) ActiveVersion() Version {
	return o.current.Load().version
}

// ActiveSize returns the entry count of the currently active table.
// Advisory only, like ActiveVersion.
func (o *Outbound[T]) ActiveSize() int {
	return len(o.current.Load().lookup)
}

// Kind returns the value domain this holder compresses.
func (o *Outbound[T]) Kind() format.TableKind {
	return o.kind
}

// String returns a debug description with the active version and table size.
func (o *Outbound[T]) String() string {
	snap := o.current.Load()

	return fmt.Sprintf("OutboundCompressionTable(kind=%s, version=%d, size=%d)",
		o.kind, snap.version, len(snap.lookup))
}
