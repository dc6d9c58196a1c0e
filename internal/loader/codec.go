package loader

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/ndreduce/internal/tensor"
)

// Document format:
// a YAML or JSON document whose root is either a single scalar or a
// rectangular nested sequence of scalars. The nesting depth is the rank and
// the sequence lengths are the dimensions, e.g. [[1, 2, 3], [4, 5, 6]] is 2x3.

// Load reads a document from path ("-" reads standard input) and decodes it as dtype.
func Load(path string, dtype tensor.DataType) (*tensor.RawTensor, error) {
	if path == "-" {
		return Decode(os.Stdin, dtype)
	}

	file, err := os.Open(path) //nolint:gosec // path is user input by design of the CLI
	if err != nil {
		return nil, errors.Wrap(err, "open array file")
	}
	defer func() { _ = file.Close() }()

	raw, err := Decode(file, dtype)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return raw, nil
}

// Decode parses one document from r into a new contiguous tensor of dtype.
func Decode(r io.Reader, dtype tensor.DataType) (*tensor.RawTensor, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(tensor.ErrInvalidShape, "empty document")
		}
		return nil, errors.Wrap(err, "parse document")
	}

	root := resolve(&doc)
	shape := inferShape(root)
	leaves := make([]*yaml.Node, 0, shape.NumElements())
	leaves, err := flatten(root, shape, 0, leaves)
	if err != nil {
		return nil, err
	}

	raw, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	if err := fill(raw, leaves); err != nil {
		return nil, err
	}
	return raw, nil
}

// resolve unwraps document and alias nodes.
func resolve(n *yaml.Node) *yaml.Node {
	for {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) == 1:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}
}

// inferShape follows the first element of every nested sequence.
func inferShape(n *yaml.Node) tensor.Shape {
	shape := tensor.Shape{}
	for n.Kind == yaml.SequenceNode {
		shape = append(shape, len(n.Content))
		if len(n.Content) == 0 {
			break
		}
		n = resolve(n.Content[0])
	}
	return shape
}

// flatten appends the scalars below n in row-major order, checking that every
// sequence at depth d has shape[d] items.
func flatten(n *yaml.Node, shape tensor.Shape, depth int, leaves []*yaml.Node) ([]*yaml.Node, error) {
	n = resolve(n)
	if depth == len(shape) {
		if n.Kind != yaml.ScalarNode {
			return nil, errors.Wrapf(tensor.ErrInvalidShape, "line %d: expected a value at depth %d", n.Line, depth)
		}
		return append(leaves, n), nil
	}

	if n.Kind != yaml.SequenceNode || len(n.Content) != shape[depth] {
		return nil, errors.Wrapf(tensor.ErrInvalidShape, "line %d: ragged input, expected %d items at depth %d",
			n.Line, shape[depth], depth)
	}
	var err error
	for _, child := range n.Content {
		if leaves, err = flatten(child, shape, depth+1, leaves); err != nil {
			return nil, err
		}
	}
	return leaves, nil
}

func fill(raw *tensor.RawTensor, leaves []*yaml.Node) error {
	switch raw.DType() {
	case tensor.Bool:
		return fillScalars[bool](raw, leaves)
	case tensor.Int8:
		return fillScalars[int8](raw, leaves)
	case tensor.Uint8:
		return fillScalars[uint8](raw, leaves)
	case tensor.Int16:
		return fillScalars[int16](raw, leaves)
	case tensor.Uint16:
		return fillScalars[uint16](raw, leaves)
	case tensor.Char16:
		return fillChars(raw, leaves)
	case tensor.Int32:
		return fillScalars[int32](raw, leaves)
	case tensor.Uint32:
		return fillScalars[uint32](raw, leaves)
	case tensor.Int64:
		return fillScalars[int64](raw, leaves)
	case tensor.Uint64:
		return fillScalars[uint64](raw, leaves)
	case tensor.Float32:
		return fillScalars[float32](raw, leaves)
	case tensor.Float64:
		return fillScalars[float64](raw, leaves)
	case tensor.Decimal:
		data := tensor.Data[decimal.Decimal](raw)
		for i, leaf := range leaves {
			d, err := decimal.NewFromString(leaf.Value)
			if err != nil {
				return errors.Wrapf(err, "line %d", leaf.Line)
			}
			data[i] = d
		}
		return nil
	default:
		return errors.Wrapf(tensor.ErrUnsupportedType, "decode %s", raw.DType())
	}
}

// fillScalars lets yaml.v3 decode each leaf, which rejects out-of-range and fractional integers.
func fillScalars[T tensor.Element](raw *tensor.RawTensor, leaves []*yaml.Node) error {
	data := tensor.Data[T](raw)
	for i, leaf := range leaves {
		if err := leaf.Decode(&data[i]); err != nil {
			return errors.Wrapf(err, "line %d", leaf.Line)
		}
	}
	return nil
}

// fillChars accepts either a single-character string or a UTF-16 code unit number.
func fillChars(raw *tensor.RawTensor, leaves []*yaml.Node) error {
	data := tensor.Data[tensor.Char](raw)
	for i, leaf := range leaves {
		if r := []rune(leaf.Value); leaf.ShortTag() == "!!str" && len(r) == 1 && r[0] <= math.MaxUint16 {
			data[i] = tensor.Char(r[0])
			continue
		}
		if err := leaf.Decode(&data[i]); err != nil {
			return errors.Wrapf(err, "line %d", leaf.Line)
		}
	}
	return nil
}

// Encode writes t as a flow-style nested sequence.
func Encode(w io.Writer, t *tensor.RawTensor) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(node(t.Nested())); err != nil {
		return errors.Wrap(err, "encode array")
	}
	return enc.Close()
}

func node(v any) *yaml.Node {
	if items, ok := v.([]any); ok {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, item := range items {
			seq.Content = append(seq.Content, node(item))
		}
		return seq
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: scalarText(v)}
}

// scalarText renders an element in a form yaml.v3 resolves back to the same number.
func scalarText(v any) string {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case decimal.Decimal:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}
