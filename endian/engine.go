// Package endian provides byte order utilities for encoding and decoding
// compression table advertisements.
//
// It combines the ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single EndianEngine interface so codec code can both read fixed-width
// fields and append them without an intermediate scratch buffer.
//
// Advertisements default to little-endian; the big-endian engine exists for
// interoperability with peers on big-endian wire conventions.
//
// The returned engines are immutable and stateless, and therefore safe for
// concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// The interface is satisfied by binary.LittleEndian and binary.BigEndian,
// so it composes with any existing code that takes a binary.ByteOrder.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the wiretab default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
