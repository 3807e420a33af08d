// Package advert encodes and decodes compression table advertisements: the
// control messages that carry a negotiated value→code table from the receiver
// that built it to the sender that will compress with it.
//
// The package owns only the byte format; it performs no network I/O. The
// transport's control channel moves the bytes, and the advertisement
// collaborator feeds the decoded table to the matching holder's Flip.
//
// # Wire Format
//
// A fixed 28-byte header followed by the entry payload:
//
//	offset  size  field
//	0       2     magic number 0xCA7B (always little-endian)
//	2       1     format version (currently 1)
//	3       1     flags (bit 0: payload fields are big-endian)
//	4       1     table kind (format.TableKind)
//	5       1     payload compression (format.CompressionType)
//	6       2     reserved, must be zero
//	8       8     table version (two's complement int64)
//	16      4     entry count
//	20      8     xxHash64 checksum of the (possibly compressed) payload
//	28      -     payload
//
// Each payload entry is a uvarint value length, the value bytes, and a
// uvarint code. The payload as a whole may be compressed with any codec from
// the compress package; advertisements are small, so the default is none.
package advert
