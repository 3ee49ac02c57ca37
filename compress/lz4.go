package compress

import (
	"bytes"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// LZ4Compressor reads and writes LZ4 frames.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
//
// Returns:
//   - LZ4Compressor: New LZ4 codec instance
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into an LZ4 frame.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: LZ4 frame (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if err := w.Apply(lz4.ConcurrencyOption(1)); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decodes an LZ4 frame.
//
// Parameters:
//   - data: LZ4 frame to decompress
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: Frame or checksum error, or output larger than 128MB
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return readBounded(lz4.NewReader(bytes.NewReader(data)), "lz4")
}
