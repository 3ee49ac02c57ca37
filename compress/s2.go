package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Compressor reads and writes S2 streams.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data into an S2 stream.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := s2.NewWriter(&buf, s2.WriterConcurrency(1))
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decodes an S2 or Snappy framed stream.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := s2.NewReader(bytes.NewReader(data), s2.ReaderMaxBlockSize(4<<20))

	return readBounded(r, "s2")
}

// readBounded drains r, failing once the output exceeds maxDecodedSize.
func readBounded(r io.Reader, algorithm string) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, maxDecodedSize+1))
	if err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", algorithm, err)
	}
	if len(out) > maxDecodedSize {
		return nil, fmt.Errorf("%s decompression failed: output exceeds %d bytes", algorithm, maxDecodedSize)
	}

	return out, nil
}
