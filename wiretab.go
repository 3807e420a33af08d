// Package wiretab implements the wire-value compression tables of a
// high-throughput messaging transport: versioned, lock-free tables that let a
// sender replace frequently-repeated, large-on-the-wire values (remote
// endpoint identities, type descriptors) with small integer codes negotiated
// with the receiving peer.
//
// The outbound holder is consulted for every outgoing message; its Compress
// call is wait-free and allocation-free. Table replacement is an atomic
// compare-and-publish over immutable snapshots, so lookups never contend with
// updates and versions only move forward.
//
// # Basic Usage
//
// Sender side, one holder per remote peer:
//
//	out := wiretab.NewIdentityOutbound("wiretab://local/noop", logger)
//
//	// Per outgoing message:
//	code := out.Compress(ref)
//	if code == wiretab.NotCompressed {
//	    // write ref in full
//	} else {
//	    // write code instead of ref
//	}
//
// When the peer advertises a new table:
//
//	t, kind, err := wiretab.DecodeAdvertisement(msg)
//	if err != nil {
//	    // corrupt advertisement, drop it
//	}
//	out.Flip(t)
//
// Receiver side, decoding codes back into values:
//
//	in := wiretab.NewIdentityInbound("wiretab://local/noop", logger)
//	ref, ok := in.Decompress(code)
//
// # Package Structure
//
// This package provides convenient wrappers around the table and advert
// packages, wiring the zap logging adapter for table protocol events. For
// fine-grained control (custom Events observers, non-string value types,
// per-peer registries) use the table, advert, and registry packages directly.
package wiretab

import (
	"go.uber.org/zap"

	"github.com/meshkit/wiretab/advert"
	"github.com/meshkit/wiretab/format"
	"github.com/meshkit/wiretab/table"
)

const (
	// NotCompressed is returned by Compress for values without an assigned
	// code, instructing the encoder to write the value in full.
	NotCompressed = table.NotCompressed

	// NoOpIdentityCode is the code pre-assigned to the well-known no-op
	// identity in the identity specialization.
	NoOpIdentityCode = table.NoOpIdentityCode
)

// NewIdentityOutbound creates a sender-side holder for endpoint identity
// compression, seeded so that Compress(noop) returns NoOpIdentityCode before
// any advertisement arrives. A nil logger discards table protocol events.
func NewIdentityOutbound(noop string, logger *zap.Logger) *table.Outbound[string] {
	return table.NewIdentityOutbound(noop, NewLogEvents(logger))
}

// NewManifestOutbound creates a sender-side holder for type-descriptor
// compression, seeded with an empty version-0 table. A nil logger discards
// table protocol events.
func NewManifestOutbound(logger *zap.Logger) *table.Outbound[string] {
	return table.NewManifestOutbound[string](NewLogEvents(logger))
}

// NewIdentityInbound creates the receiver-side counterpart of
// NewIdentityOutbound, decoding NoOpIdentityCode to noop from the start.
func NewIdentityInbound(noop string, logger *zap.Logger) *table.Inbound[string] {
	return table.NewIdentityInbound(noop, NewLogEvents(logger))
}

// NewManifestInbound creates the receiver-side counterpart of
// NewManifestOutbound.
func NewManifestInbound(logger *zap.Logger) *table.Inbound[string] {
	return table.NewManifestInbound[string](NewLogEvents(logger))
}

// EncodeAdvertisement serializes a compression table advertisement.
// See the advert package for the wire format and encode options.
func EncodeAdvertisement(t table.CompressionTable[string], kind format.TableKind, opts ...advert.EncodeOption) ([]byte, error) {
	return advert.Encode(t, kind, opts...)
}

// DecodeAdvertisement parses an advertisement message into the table to feed
// to the matching holder's Flip.
func DecodeAdvertisement(data []byte) (table.CompressionTable[string], format.TableKind, error) {
	return advert.Decode(data)
}

// logEvents adapts a zap logger to the table.Events observer, keeping the
// holders themselves free of any logging dependency.
type logEvents struct {
	logger *zap.Logger
}

var _ table.Events = logEvents{}

// NewLogEvents returns an Events observer that logs duplicate advertisements
// at Warn and stale advertisements at Error. A nil logger yields NopEvents.
func NewLogEvents(logger *zap.Logger) table.Events {
	if logger == nil {
		return table.NopEvents{}
	}

	return logEvents{logger: logger}
}

func (e logEvents) TableDuplicate(kind format.TableKind, version table.Version) {
	e.logger.Warn("duplicate compression table advertised, ignored",
		zap.Stringer("kind", kind),
		zap.Int64("version", int64(version)),
	)
}

func (e logEvents) TableStale(kind format.TableKind, active, received table.Version) {
	e.logger.Error("stale compression table advertised, ignored",
		zap.Stringer("kind", kind),
		zap.Int64("activeVersion", int64(active)),
		zap.Int64("receivedVersion", int64(received)),
	)
}
