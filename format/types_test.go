package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrings(t *testing.T) {
	require.Equal(t, "CSV", EncodingCSV.String())
	require.Equal(t, "JSON", EncodingJSON.String())
	require.Equal(t, "YAML", EncodingYAML.String())
	require.Equal(t, "Unknown", Encoding(0).String())

	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", Compression(0xff).String())
}

func TestParse(t *testing.T) {
	enc, err := ParseEncoding(" YML ")
	require.NoError(t, err)
	require.Equal(t, EncodingYAML, enc)

	_, err = ParseEncoding("xml")
	require.Error(t, err)

	for in, want := range map[string]Compression{
		"":     CompressionNone,
		"none": CompressionNone,
		"zstd": CompressionZstd,
		"zst":  CompressionZstd,
		"S2":   CompressionS2,
		"lz4":  CompressionLZ4,
	} {
		got, err := ParseCompression(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err = ParseCompression("gzip")
	require.Error(t, err)
}

func TestDetectPath(t *testing.T) {
	tests := []struct {
		path string
		enc  Encoding
		comp Compression
	}{
		{"runs.csv", EncodingCSV, CompressionNone},
		{"/tmp/Runs.JSON", EncodingJSON, CompressionNone},
		{"data/sort.yaml", EncodingYAML, CompressionNone},
		{"sort.yml.lz4", EncodingYAML, CompressionLZ4},
		{"runs.csv.zst", EncodingCSV, CompressionZstd},
		{"runs.json.s2", EncodingJSON, CompressionS2},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			enc, comp, err := DetectPath(tt.path)
			require.NoError(t, err)
			require.Equal(t, tt.enc, enc)
			require.Equal(t, tt.comp, comp)
		})
	}

	for _, bad := range []string{"runs.txt", "runs.zst", "runs", "runs.csv.gz"} {
		_, _, err := DetectPath(bad)
		require.Error(t, err, bad)
	}
}
