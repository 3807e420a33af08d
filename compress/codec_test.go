package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshkit/wiretab/format"
)

// advertLikePayload builds a payload with the repetition profile of a real
// identity table: many entries sharing long common prefixes.
func advertLikePayload() []byte {
	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		buf.WriteString("wiretab://node-17.cluster.internal:25520/user/shard/")
		buf.WriteByte(byte('a' + i%26))
	}

	return buf.Bytes()
}

func TestGetCodec(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xEE))
	require.Error(t, err)
}

func TestNoOpCompressor_Bypass(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := advertLikePayload()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := advertLikePayload()

	codecs := map[string]Codec{
		"Zstd": NewZstdCompressor(),
		"S2":   NewS2Compressor(),
		"LZ4":  NewLZ4Compressor(),
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload),
				"repetitive advertisement payloads must shrink")

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	codecs := []Codec{
		NewZstdCompressor(),
		NewS2Compressor(),
		NewLZ4Compressor(),
	}

	for _, codec := range codecs {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestCodecs_CorruptInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03}

	for name, codec := range map[string]Codec{
		"Zstd": NewZstdCompressor(),
		"LZ4":  NewLZ4Compressor(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}
