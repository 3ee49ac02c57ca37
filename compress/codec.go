package compress

import (
	"fmt"

	"github.com/arloliu/bigo/format"
)

// Compressor wraps data in a compression container.
type Compressor interface {
	// Compress returns a newly allocated container holding data.
	// The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor unwraps a compression container.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(fileContents)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
type Decompressor interface {
	// Decompress returns the original bytes held by the container.
	//
	// It returns an error if the data is corrupted or was written with a
	// different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.Compression]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Parameters:
//   - compression: Type of compression (None, Zstd, S2, or LZ4)
//
// Returns:
//   - Codec: Shared codec instance for the specified type
//   - error: Unsupported compression type error
func GetCodec(compression format.Compression) (Codec, error) {
	if codec, ok := builtinCodecs[compression]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compression)
}
