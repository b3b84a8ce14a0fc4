package container

import (
	"fmt"

	"github.com/arloliu/vpack/format"
	"github.com/arloliu/vpack/internal/options"
)

type encodeConfig struct {
	compression format.CompressionType
	checksum    bool
}

// Option configures container encoding.
type Option = options.Option[*encodeConfig]

func newEncodeConfig(opts ...Option) (*encodeConfig, error) {
	cfg := &encodeConfig{
		compression: format.CompressionNone,
		checksum:    true,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCompression selects the outer compression codec applied to the
// frame payload. The default is format.CompressionNone: packed frames are
// already dense, and the outer stage mostly pays off on wide value
// distributions with long uncompressed tails.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *encodeConfig) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = compression
			return nil
		default:
			return fmt.Errorf("invalid container compression: %s", compression)
		}
	})
}

// WithChecksumDisabled omits the payload checksum. Decoders skip
// verification for such containers; use only when an outer transport
// already guarantees integrity.
func WithChecksumDisabled() Option {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.checksum = false
	})
}
