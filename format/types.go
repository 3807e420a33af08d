package format

type (
	CompressionType uint8
	TableKind       uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	TableIdentity TableKind = 0x1 // TableIdentity compresses remote endpoint identities.
	TableManifest TableKind = 0x2 // TableManifest compresses type descriptors (manifests).
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the compression type is one of the defined codecs.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (k TableKind) String() string {
	switch k {
	case TableIdentity:
		return "Identity"
	case TableManifest:
		return "Manifest"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the table kind is one of the defined value domains.
func (k TableKind) IsValid() bool {
	return k == TableIdentity || k == TableManifest
}
