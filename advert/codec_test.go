package advert

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshkit/wiretab/errs"
	"github.com/meshkit/wiretab/format"
	"github.com/meshkit/wiretab/internal/hash"
	"github.com/meshkit/wiretab/table"
)

func testMapping() map[string]int {
	return map[string]int{
		"wiretab://host-a:25520/user/noop":   0,
		"wiretab://host-b:25520/user/worker": 1,
		"wiretab://host-c:25520/user/sink":   7,
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	data, err := Encode(table.New(42, testMapping()), format.TableIdentity)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), HeaderSize)

	decoded, kind, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, format.TableIdentity, kind)
	require.Equal(t, table.Version(42), decoded.Version())
	require.Equal(t, len(testMapping()), decoded.Size())

	seen := make(map[string]int)
	for value, code := range decoded.All() {
		seen[value] = code
	}
	require.Equal(t, testMapping(), seen)
}

func TestEncode_HeaderLayout(t *testing.T) {
	data, err := Encode(table.New(7, testMapping()), format.TableIdentity)
	require.NoError(t, err)

	// The magic number is written least-significant byte first regardless of
	// the payload byte order.
	require.Equal(t, byte(0x7B), data[0])
	require.Equal(t, byte(0xCA), data[1])
	require.Equal(t, uint16(MagicNumber), binary.LittleEndian.Uint16(data[0:2]))

	require.Equal(t, byte(FormatVersion), data[2])
	require.Equal(t, byte(0), data[3], "flags must be clear for little-endian")
	require.Equal(t, byte(format.TableIdentity), data[4])
	require.Equal(t, byte(format.CompressionNone), data[5])
	require.Equal(t, []byte{0, 0}, data[6:8], "reserved bytes must be zero")
	require.Equal(t, uint64(7), binary.LittleEndian.Uint64(data[8:16]))
	require.Equal(t, uint32(len(testMapping())), binary.LittleEndian.Uint32(data[16:20]))
}

func TestEncodeDecode_Compressed(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			data, err := Encode(table.New(3, testMapping()), format.TableManifest,
				WithCompression(compression))
			require.NoError(t, err)
			require.Equal(t, byte(compression), data[5])

			decoded, kind, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, format.TableManifest, kind)
			require.Equal(t, table.Version(3), decoded.Version())
			require.Equal(t, len(testMapping()), decoded.Size())
		})
	}
}

func TestEncodeDecode_BigEndian(t *testing.T) {
	data, err := Encode(table.New(9, testMapping()), format.TableIdentity, WithBigEndian())
	require.NoError(t, err)

	decoded, _, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, table.Version(9), decoded.Version())
	require.Equal(t, len(testMapping()), decoded.Size())
}

func TestEncodeDecode_EmptyTable(t *testing.T) {
	data, err := Encode(table.New[string](0, nil), format.TableManifest)
	require.NoError(t, err)
	require.Equal(t, HeaderSize, len(data))

	decoded, kind, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, format.TableManifest, kind)
	require.Equal(t, table.Version(0), decoded.Version())
	require.Equal(t, 0, decoded.Size())
}

func TestEncode_Validation(t *testing.T) {
	_, err := Encode(table.New(1, testMapping()), format.TableKind(0xEE))
	require.ErrorIs(t, err, errs.ErrInvalidTableKind)

	_, err = Encode(table.New(1, map[string]int{"a": -1}), format.TableIdentity)
	require.ErrorIs(t, err, errs.ErrInvalidCode)

	long := make([]byte, MaxValueLength+1)
	_, err = Encode(table.New(1, map[string]int{string(long): 1}), format.TableIdentity)
	require.ErrorIs(t, err, errs.ErrValueTooLong)

	_, err = Encode(table.New(1, testMapping()), format.TableIdentity,
		WithCompression(format.CompressionType(0xEE)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestDecode_HeaderValidation(t *testing.T) {
	valid, err := Encode(table.New(1, testMapping()), format.TableIdentity)
	require.NoError(t, err)

	corrupt := func(offset int, b byte) []byte {
		data := make([]byte, len(valid))
		copy(data, valid)
		data[offset] = b
		return data
	}

	_, _, err = Decode(valid[:HeaderSize-1])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	_, _, err = Decode(corrupt(0, 0x00))
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)

	_, _, err = Decode(corrupt(2, 0x09))
	require.ErrorIs(t, err, errs.ErrInvalidFormatVersion)

	_, _, err = Decode(corrupt(4, 0xEE))
	require.ErrorIs(t, err, errs.ErrInvalidTableKind)

	_, _, err = Decode(corrupt(5, 0xEE))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestDecode_ChecksumMismatch(t *testing.T) {
	valid, err := Encode(table.New(1, testMapping()), format.TableIdentity)
	require.NoError(t, err)

	data := make([]byte, len(valid))
	copy(data, valid)
	data[len(data)-1] ^= 0xFF

	_, _, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestDecode_EntryCountExceeded(t *testing.T) {
	valid, err := Encode(table.New(1, testMapping()), format.TableIdentity)
	require.NoError(t, err)

	data := make([]byte, len(valid))
	copy(data, valid)
	binary.LittleEndian.PutUint32(data[16:20], MaxEntries+1)

	_, _, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrEntryCountExceeded)
}

func TestDecode_CountPayloadMismatch(t *testing.T) {
	valid, err := Encode(table.New(1, testMapping()), format.TableIdentity)
	require.NoError(t, err)

	// The checksum covers the payload only, so lying about the count in the
	// header must still be caught by payload parsing.
	overCount := make([]byte, len(valid))
	copy(overCount, valid)
	binary.LittleEndian.PutUint32(overCount[16:20], uint32(len(testMapping())+1))

	_, _, err = Decode(overCount)
	require.ErrorIs(t, err, errs.ErrTruncatedPayload)

	underCount := make([]byte, len(valid))
	copy(underCount, valid)
	binary.LittleEndian.PutUint32(underCount[16:20], uint32(len(testMapping())-1))

	_, _, err = Decode(underCount)
	require.ErrorIs(t, err, errs.ErrTruncatedPayload)
}

func TestDecode_DuplicateValue(t *testing.T) {
	// Encode cannot produce a duplicate value (map keys are unique), so craft
	// the payload by hand: the entry ("a" -> 1) twice.
	payload := []byte{0x01, 'a', 0x01, 0x01, 'a', 0x01}

	data := make([]byte, HeaderSize, HeaderSize+len(payload))
	data[0] = byte(MagicNumber & 0xFF)
	data[1] = byte(MagicNumber >> 8)
	data[2] = FormatVersion
	data[4] = byte(format.TableIdentity)
	data[5] = byte(format.CompressionNone)
	binary.LittleEndian.PutUint64(data[8:16], 5)
	binary.LittleEndian.PutUint32(data[16:20], 2)
	binary.LittleEndian.PutUint64(data[20:28], hash.Sum(payload))
	data = append(data, payload...)

	_, _, err := Decode(data)
	require.ErrorIs(t, err, errs.ErrDuplicateValue)
}

func TestDecode_NegativeVersionRoundTrip(t *testing.T) {
	// The sentinel version is never advertised in practice, but the codec
	// must carry the full signed range faithfully.
	data, err := Encode(table.New(table.VersionNone, testMapping()), format.TableIdentity)
	require.NoError(t, err)

	decoded, _, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, table.VersionNone, decoded.Version())
}

func TestEncodeFlipDecode_EndToEnd(t *testing.T) {
	// The full advertisement path: build, encode, decode, flip, compress.
	out := table.NewIdentityOutbound("local/noop", nil)

	data, err := Encode(table.New(1, map[string]int{
		"local/noop":    0,
		"remote/worker": 1,
	}), format.TableIdentity)
	require.NoError(t, err)

	decoded, kind, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, format.TableIdentity, kind)

	out.Flip(decoded)

	require.Equal(t, table.Version(1), out.ActiveVersion())
	require.Equal(t, 1, out.Compress("remote/worker"))
	require.Equal(t, 0, out.Compress("local/noop"))
	require.Equal(t, table.NotCompressed, out.Compress("remote/stranger"))
}
