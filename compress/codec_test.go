package compress

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/arloliu/bigo/format"
	"github.com/stretchr/testify/require"
)

func sampleCSV(rows int) []byte {
	var buf bytes.Buffer
	buf.WriteString("x,y\n")
	for i := 1; i <= rows; i++ {
		fmt.Fprintf(&buf, "%d,%d\n", i*100, i*i*37+11)
	}

	return buf.Bytes()
}

func TestGetCodec(t *testing.T) {
	for _, c := range []format.Compression{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(c)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.Compression(0))
	require.Error(t, err)
}

func TestCodecRoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"small":  []byte("x,y\n1,2\n"),
		"medium": sampleCSV(500),
		"large":  sampleCSV(50000),
	}

	for _, c := range []format.Compression{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(c)
		require.NoError(t, err)

		for name, data := range inputs {
			t.Run(c.String()+"/"+name, func(t *testing.T) {
				packed, err := codec.Compress(data)
				require.NoError(t, err)
				if c != format.CompressionNone && len(data) > 1000 {
					require.Less(t, len(packed), len(data))
				}

				got, err := codec.Decompress(packed)
				require.NoError(t, err)
				require.Equal(t, data, got)
			})
		}
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		got, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

func TestCodecCorruptInput(t *testing.T) {
	garbage := []byte("this is not a compressed container at all")

	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		_, err := codec.Decompress(garbage)
		require.Error(t, err)
	}
}

func TestCodecWrongAlgorithm(t *testing.T) {
	packed, err := NewZstdCompressor().Compress(sampleCSV(100))
	require.NoError(t, err)

	_, err = NewLZ4Compressor().Decompress(packed)
	require.Error(t, err)
	_, err = NewS2Compressor().Decompress(packed)
	require.Error(t, err)
}

func TestZstdConcurrent(t *testing.T) {
	codec := NewZstdCompressor()
	data := sampleCSV(2000)
	packed, err := codec.Compress(data)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 32)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := codec.Decompress(packed)
			if err == nil && !bytes.Equal(got, data) {
				err = fmt.Errorf("mismatch in goroutine %d", i)
			}
			errs[i] = err
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := sampleCSV(10000)
	for _, c := range []format.Compression{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, _ := GetCodec(c)
		packed, _ := codec.Compress(data)
		b.Run(c.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = codec.Decompress(packed)
			}
		})
	}
}
