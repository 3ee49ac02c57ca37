// Package format enumerates the observation file encodings and compression
// containers understood by the dataset loader.
package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

type (
	Encoding    uint8
	Compression uint8
)

const (
	EncodingCSV  Encoding = 0x1 // EncodingCSV represents comma-separated x,y rows.
	EncodingJSON Encoding = 0x2 // EncodingJSON represents a JSON array of pairs or objects.
	EncodingYAML Encoding = 0x3 // EncodingYAML represents a YAML sequence of pairs or mappings.

	CompressionNone Compression = 0x1 // CompressionNone represents no compression.
	CompressionZstd Compression = 0x2 // CompressionZstd represents Zstandard frames.
	CompressionS2   Compression = 0x3 // CompressionS2 represents an S2 stream.
	CompressionLZ4  Compression = 0x4 // CompressionLZ4 represents an LZ4 frame.
)

func (e Encoding) String() string {
	switch e {
	case EncodingCSV:
		return "CSV"
	case EncodingJSON:
		return "JSON"
	case EncodingYAML:
		return "YAML"
	default:
		return "Unknown"
	}
}

func (c Compression) String() string {
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

var (
	encodingExts = map[string]Encoding{
		".csv":  EncodingCSV,
		".json": EncodingJSON,
		".yaml": EncodingYAML,
		".yml":  EncodingYAML,
	}
	compressionExts = map[string]Compression{
		".zst":  CompressionZstd,
		".zstd": CompressionZstd,
		".s2":   CompressionS2,
		".lz4":  CompressionLZ4,
	}
)

// ParseEncoding parses an encoding name such as "csv" or "yaml".
func ParseEncoding(s string) (Encoding, error) {
	if e, ok := encodingExts["."+strings.ToLower(strings.TrimSpace(s))]; ok {
		return e, nil
	}

	return 0, fmt.Errorf("unknown encoding %q", s)
}

// ParseCompression parses a compression name such as "zstd" or "none".
func ParseCompression(s string) (Compression, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "", "none":
		return CompressionNone, nil
	case "zst":
		return CompressionZstd, nil
	default:
		for ext, c := range compressionExts {
			if ext == "."+name {
				return c, nil
			}
		}
	}

	return 0, fmt.Errorf("unknown compression %q", s)
}

// DetectPath infers the encoding and compression of a file from its
// extensions, for example "runs.csv.zst" is CSV inside a Zstandard frame.
func DetectPath(path string) (Encoding, Compression, error) {
	name := strings.ToLower(filepath.Base(path))
	comp := CompressionNone

	ext := filepath.Ext(name)
	if c, ok := compressionExts[ext]; ok {
		comp = c
		name = strings.TrimSuffix(name, ext)
		ext = filepath.Ext(name)
	}

	enc, ok := encodingExts[ext]
	if !ok {
		return 0, 0, fmt.Errorf("cannot detect encoding of %q", path)
	}

	return enc, comp, nil
}
