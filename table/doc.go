// Package table implements the versioned, lock-free compression tables that
// shrink repeated wire values (endpoint identities, type manifests) to small
// integer codes negotiated with a peer.
//
// The outbound holder is consulted on every outgoing message, so its lookup
// path is wait-free: a single atomic snapshot read followed by one map access,
// with no locks, no allocation, and no contention with table replacement.
// Replacement ("flip") is an optimistic compare-and-publish loop over
// immutable snapshots; a snapshot is fully built before it becomes visible to
// any reader, and versions only ever move forward.
//
// # Basic Usage
//
// Outbound (sender) side:
//
//	out := table.NewIdentityOutbound("local/noop", table.NopEvents{})
//	code := out.Compress(ref)         // >= 0: write the code instead of ref
//	if code == table.NotCompressed {  // -1: write ref in full
//	    ...
//	}
//
// When the peer advertises a new table:
//
//	out.Flip(table.New(version, mapping))
//
// Inbound (receiver) side:
//
//	in := table.NewIdentityInbound("local/noop", table.NopEvents{})
//	ref, ok := in.Decompress(code)
//
// Duplicate and out-of-order advertisements never change state; they are
// reported through the injected Events observer so the holder itself stays
// free of any I/O dependency.
package table
