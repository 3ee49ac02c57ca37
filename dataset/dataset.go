// Package dataset decodes observation sets from CSV, JSON or YAML files,
// optionally wrapped in a Zstandard, S2 or LZ4 container.
//
// CSV input holds two columns, x then y. A leading header row and lines
// starting with '#' are ignored. JSON and YAML input is a sequence of either
// [x, y] pairs or {x: .., y: ..} mappings:
//
//	[[1, 12.5], [2, 25.1], [4, 49.8]]
//	[{"x": 1, "y": 12.5}, {"x": 2, "y": 25.1}]
package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/bigo/complexity"
	"github.com/arloliu/bigo/compress"
	"github.com/arloliu/bigo/format"
)

// ErrMalformed is returned when the input does not describe observations.
var ErrMalformed = errors.New("dataset: malformed observations")

// LoadFile reads the observation file at path, detecting the encoding and
// compression from its extensions (e.g. "sort.csv", "sort.json.zst").
func LoadFile(path string) ([]complexity.Point, error) {
	enc, comp, err := format.DetectPath(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	points, err := Load(f, enc, comp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

// Load decodes observations from r.
//
// Parameters:
//   - r: source of the (possibly compressed) file contents
//   - enc: encoding of the decompressed contents
//   - comp: compression container wrapping the contents
//
// Returns:
//   - []complexity.Point: observations in file order
//   - error: I/O, decompression or ErrMalformed errors
func Load(r io.Reader, enc format.Encoding, comp format.Compression) ([]complexity.Point, error) {
	codec, err := compress.GetCodec(comp)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	switch enc {
	case format.EncodingCSV:
		return decodeCSV(data)
	case format.EncodingJSON:
		return decodeJSON(data)
	case format.EncodingYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("dataset: unsupported encoding %s", enc)
	}
}

func decodeCSV(data []byte) ([]complexity.Point, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comment = '#'
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true

	var points []complexity.Point
	for line := 1; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		x, errX := parseFloat(rec[0])
		y, errY := parseFloat(rec[1])
		if errX != nil || errY != nil {
			if len(points) == 0 && line == 1 {
				// header row
				continue
			}

			return nil, fmt.Errorf("%w: row %d: %q, %q", ErrMalformed, line, rec[0], rec[1])
		}
		points = append(points, complexity.Point{X: x, Y: y})
	}

	return points, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// pair decodes either [x, y] or {x: .., y: ..}.
type pair complexity.Point

func (p *pair) UnmarshalJSON(b []byte) error {
	var arr []float64
	if err := json.Unmarshal(b, &arr); err == nil {
		return p.fromSlice(arr)
	}

	var obj struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformed, b)
	}

	return p.fromFields(obj.X, obj.Y)
}

func (p *pair) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr []float64
		if err := node.Decode(&arr); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrMalformed, node.Line, err)
		}

		return p.fromSlice(arr)
	case yaml.MappingNode:
		var obj struct {
			X *float64 `yaml:"x"`
			Y *float64 `yaml:"y"`
		}
		if err := node.Decode(&obj); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrMalformed, node.Line, err)
		}

		return p.fromFields(obj.X, obj.Y)
	default:
		return fmt.Errorf("%w: line %d: expected pair or mapping", ErrMalformed, node.Line)
	}
}

func (p *pair) fromSlice(arr []float64) error {
	if len(arr) != 2 {
		return fmt.Errorf("%w: pair has %d values", ErrMalformed, len(arr))
	}
	p.X, p.Y = arr[0], arr[1]

	return nil
}

func (p *pair) fromFields(x, y *float64) error {
	if x == nil || y == nil {
		return fmt.Errorf("%w: observation needs both x and y", ErrMalformed)
	}
	p.X, p.Y = *x, *y

	return nil
}

func decodeJSON(data []byte) ([]complexity.Point, error) {
	var pairs []pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return toPoints(pairs), nil
}

func decodeYAML(data []byte) ([]complexity.Point, error) {
	var pairs []pair
	if err := yaml.Unmarshal(data, &pairs); err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return toPoints(pairs), nil
}

func toPoints(pairs []pair) []complexity.Point {
	points := make([]complexity.Point, len(pairs))
	for i, p := range pairs {
		points[i] = complexity.Point(p)
	}

	return points
}

// Encode writes points in the given encoding and compression. CSV output
// carries an "x,y" header row.
func Encode(w io.Writer, points []complexity.Point, enc format.Encoding, comp format.Compression) error {
	codec, err := compress.GetCodec(comp)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	var buf bytes.Buffer
	switch enc {
	case format.EncodingCSV:
		cw := csv.NewWriter(&buf)
		_ = cw.Write([]string{"x", "y"})
		for _, p := range points {
			_ = cw.Write([]string{formatFloat(p.X), formatFloat(p.Y)})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return fmt.Errorf("dataset: %w", err)
		}
	case format.EncodingJSON:
		if err := json.NewEncoder(&buf).Encode(points); err != nil {
			return fmt.Errorf("dataset: %w", err)
		}
	case format.EncodingYAML:
		if err := yaml.NewEncoder(&buf).Encode(points); err != nil {
			return fmt.Errorf("dataset: %w", err)
		}
	default:
		return fmt.Errorf("dataset: unsupported encoding %s", enc)
	}

	packed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	_, err = w.Write(packed)

	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
