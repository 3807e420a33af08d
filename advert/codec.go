package advert

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/meshkit/wiretab/compress"
	"github.com/meshkit/wiretab/endian"
	"github.com/meshkit/wiretab/errs"
	"github.com/meshkit/wiretab/format"
	"github.com/meshkit/wiretab/internal/hash"
	"github.com/meshkit/wiretab/internal/pool"
	"github.com/meshkit/wiretab/table"
)

const (
	// HeaderSize is the fixed advertisement header size in bytes.
	HeaderSize = 28

	// MagicNumber identifies an advertisement message.
	MagicNumber uint16 = 0xCA7B

	// FormatVersion is the advertisement format revision this package writes.
	FormatVersion = 1

	// MaxEntries bounds the declared entry count so a hostile advertisement
	// cannot force an unbounded allocation before the payload is validated.
	MaxEntries = 1 << 20

	// MaxValueLength bounds a single entry value. Endpoint identities and
	// type manifests are short strings; 64KiB is far beyond any real value.
	MaxValueLength = 1 << 16

	// flagBigEndian marks payload fields encoded big-endian.
	flagBigEndian = 0x01
)

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	compression format.CompressionType
	engine      endian.EndianEngine
	bigEndian   bool
}

// WithCompression selects the payload compression codec.
// The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) EncodeOption {
	return func(cfg *encodeConfig) {
		cfg.compression = compression
	}
}

// WithBigEndian encodes the header fields big-endian for interoperability
// with big-endian wire conventions. The default is little-endian.
func WithBigEndian() EncodeOption {
	return func(cfg *encodeConfig) {
		cfg.engine = endian.GetBigEndianEngine()
		cfg.bigEndian = true
	}
}

// Encode serializes a compression table advertisement.
//
// Entry codes must be non-negative and values must not exceed MaxValueLength;
// the table size must not exceed MaxEntries. The returned slice is newly
// allocated and owned by the caller.
func Encode(t table.CompressionTable[string], kind format.TableKind, opts ...EncodeOption) ([]byte, error) {
	if !kind.IsValid() {
		return nil, errs.ErrInvalidTableKind
	}
	if t.Size() > MaxEntries {
		return nil, errs.ErrEntryCountExceeded
	}

	cfg := encodeConfig{
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, cfg.compression)
	}

	buf := pool.GetAdvertBuffer()
	defer pool.PutAdvertBuffer(buf)

	for value, code := range t.All() {
		if code < 0 || code > math.MaxInt32 {
			return nil, errs.ErrInvalidCode
		}
		if len(value) > MaxValueLength {
			return nil, errs.ErrValueTooLong
		}

		buf.Grow(2*binary.MaxVarintLen32 + len(value))
		buf.B = binary.AppendUvarint(buf.B, uint64(len(value)))
		buf.MustWrite([]byte(value))
		buf.B = binary.AppendUvarint(buf.B, uint64(code))
	}

	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress advertisement payload: %w", err)
	}

	out := make([]byte, HeaderSize, HeaderSize+len(payload))
	out[0] = byte(MagicNumber & 0xFF)
	out[1] = byte(MagicNumber >> 8)
	out[2] = FormatVersion
	if cfg.bigEndian {
		out[3] |= flagBigEndian
	}
	out[4] = byte(kind)
	out[5] = byte(cfg.compression)
	cfg.engine.PutUint64(out[8:16], uint64(t.Version())) //nolint:gosec
	cfg.engine.PutUint32(out[16:20], uint32(t.Size()))   //nolint:gosec
	cfg.engine.PutUint64(out[20:28], hash.Sum(payload))

	return append(out, payload...), nil
}

// Decode parses an advertisement produced by Encode.
//
// Decode validates the magic number, format version, table kind, compression
// type, entry count bound, and payload checksum before building the table,
// returning the matching errs sentinel on the first violation. The input
// slice is not retained.
func Decode(data []byte) (table.CompressionTable[string], format.TableKind, error) {
	var zero table.CompressionTable[string]

	if len(data) < HeaderSize {
		return zero, 0, errs.ErrInvalidHeaderSize
	}

	// The magic number and flags are little-endian regardless of the payload
	// byte order, so the engine can be chosen after reading them.
	magic := uint16(data[0]) | uint16(data[1])<<8
	if magic != MagicNumber {
		return zero, 0, errs.ErrInvalidMagicNumber
	}
	if data[2] != FormatVersion {
		return zero, 0, errs.ErrInvalidFormatVersion
	}

	engine := endian.GetLittleEndianEngine()
	if data[3]&flagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}

	kind := format.TableKind(data[4])
	if !kind.IsValid() {
		return zero, 0, errs.ErrInvalidTableKind
	}

	compression := format.CompressionType(data[5])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return zero, 0, errs.ErrInvalidCompression
	}

	version := table.Version(engine.Uint64(data[8:16])) //nolint:gosec
	count := engine.Uint32(data[16:20])
	if count > MaxEntries {
		return zero, 0, errs.ErrEntryCountExceeded
	}

	payload := data[HeaderSize:]
	if engine.Uint64(data[20:28]) != hash.Sum(payload) {
		return zero, 0, errs.ErrChecksumMismatch
	}

	payload, err = codec.Decompress(payload)
	if err != nil {
		return zero, 0, fmt.Errorf("decompress advertisement payload: %w", err)
	}

	mapping := make(map[string]int, count)
	for i := uint32(0); i < count; i++ {
		length, n := binary.Uvarint(payload)
		if n <= 0 || length > MaxValueLength {
			return zero, 0, errs.ErrTruncatedPayload
		}
		payload = payload[n:]

		if uint64(len(payload)) < length {
			return zero, 0, errs.ErrTruncatedPayload
		}
		value := string(payload[:length])
		payload = payload[length:]

		code, n := binary.Uvarint(payload)
		if n <= 0 {
			return zero, 0, errs.ErrTruncatedPayload
		}
		if code > math.MaxInt32 {
			return zero, 0, errs.ErrInvalidCode
		}
		payload = payload[n:]

		if _, exists := mapping[value]; exists {
			return zero, 0, errs.ErrDuplicateValue
		}
		mapping[value] = int(code)
	}

	if len(payload) != 0 {
		return zero, 0, errs.ErrTruncatedPayload
	}

	return table.New(version, mapping), kind, nil
}
