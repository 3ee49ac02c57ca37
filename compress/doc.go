// Package compress provides the codecs used to read compressed observation files.
//
// Observation sets recorded by long benchmark runs are often shipped as
// compressed CSV, JSON or YAML. The dataset loader reads the whole file and
// hands it to the Decompressor selected by its extension:
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// # Supported Containers
//
//   - None (format.CompressionNone): data is returned unchanged
//   - Zstd (format.CompressionZstd): standard Zstandard frames, as written by the zstd CLI
//   - S2 (format.CompressionS2): S2 streams; Snappy framed streams are accepted too
//   - LZ4 (format.CompressionLZ4): LZ4 frames, as written by the lz4 CLI
//
// Every codec also implements Compressor so fixtures and exported datasets can
// be produced with the same container formats.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Zstandard
// encoders and decoders are pooled internally.
package compress
