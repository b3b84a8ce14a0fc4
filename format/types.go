package format

type (
	Family          uint8
	CompressionType uint8
)

const (
	FamilyUint32 Family = 0x1 // FamilyUint32 identifies the 32-bit codec family.
	FamilyUint64 Family = 0x2 // FamilyUint64 identifies the 64-bit codec family.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no outer compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (f Family) String() string {
	switch f {
	case FamilyUint32:
		return "Uint32"
	case FamilyUint64:
		return "Uint64"
	default:
		return "Unknown"
	}
}

// ElemBytes returns the element size of the family in bytes.
func (f Family) ElemBytes() int {
	switch f {
	case FamilyUint32:
		return 4
	case FamilyUint64:
		return 8
	default:
		return 0
	}
}

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
