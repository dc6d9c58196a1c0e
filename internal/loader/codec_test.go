package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndreduce/internal/tensor"
)

func TestDecode_Matrix(t *testing.T) {
	raw, err := Decode(strings.NewReader("[[1, 2, 3], [4, 5, 6]]"), tensor.Int32)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, raw.Shape())
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, tensor.Values[int32](raw))
}

func TestDecode_BlockYAML(t *testing.T) {
	doc := `
- - 1.5
  - -2
- - .inf
  - 0
`
	raw, err := Decode(strings.NewReader(doc), tensor.Float64)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 2}, raw.Shape())
	assert.Equal(t, -2.0, tensor.At[float64](raw, 0, 1))
	assert.True(t, tensor.At[float64](raw, 1, 0) > 1e308)
}

func TestDecode_Scalar(t *testing.T) {
	raw, err := Decode(strings.NewReader("42"), tensor.Uint16)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{}, raw.Shape())
	assert.Equal(t, uint16(42), raw.Item())
}

func TestDecode_Empty(t *testing.T) {
	raw, err := Decode(strings.NewReader("[[], []]"), tensor.Float32)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 0}, raw.Shape())

	_, err = Decode(strings.NewReader(""), tensor.Float32)
	require.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestDecode_Ragged(t *testing.T) {
	for _, doc := range []string{
		"[[1, 2], [3]]",
		"[[1, 2], 3]",
		"[1, [2]]",
		"{a: 1}",
	} {
		_, err := Decode(strings.NewReader(doc), tensor.Int64)
		require.ErrorIs(t, err, tensor.ErrInvalidShape, doc)
	}
}

func TestDecode_ValueErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("[1, 300]"), tensor.Int8)
	require.Error(t, err)

	_, err = Decode(strings.NewReader("[1.5]"), tensor.Int32)
	require.Error(t, err)

	_, err = Decode(strings.NewReader("[abc]"), tensor.Decimal)
	require.Error(t, err)
}

func TestDecode_TypedValues(t *testing.T) {
	decimals, err := Decode(strings.NewReader(`["0.1", 0.2, 3]`), tensor.Decimal)
	require.NoError(t, err)
	values := tensor.Values[decimal.Decimal](decimals)
	assert.Equal(t, "0.1", values[0].String())
	assert.Equal(t, "0.2", values[1].String())

	chars, err := Decode(strings.NewReader(`[a, "b", 67]`), tensor.Char16)
	require.NoError(t, err)
	assert.Equal(t, []tensor.Char{'a', 'b', 'C'}, tensor.Values[tensor.Char](chars))

	bools, err := Decode(strings.NewReader(`[true, false]`), tensor.Bool)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, tensor.Values[bool](bools))
}

func TestEncode(t *testing.T) {
	raw, err := tensor.FromSlice(tensor.Shape{2, 2}, []float64{1, 2.5, -3, 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, raw))
	assert.Equal(t, "[[1, 2.5], [-3, 4]]\n", buf.String())

	tr, err := raw.Transpose()
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, Encode(&buf, tr))
	assert.Equal(t, "[[1, -3], [2.5, 4]]\n", buf.String())

	buf.Reset()
	require.NoError(t, Encode(&buf, tensor.Scalar(int64(7))))
	assert.Equal(t, "7\n", buf.String())
}

func TestEncodeDecodeDecimal(t *testing.T) {
	raw, err := tensor.FromSlice(tensor.Shape{2}, []decimal.Decimal{
		decimal.RequireFromString("0.1"), decimal.RequireFromString("-12.345"),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, raw))
	back, err := Decode(&buf, tensor.Decimal)
	require.NoError(t, err)
	assert.Equal(t, raw.Format(), back.Format())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "array.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ignored": 1}`), 0o600))
	_, err := Load(path, tensor.Float64)
	require.ErrorIs(t, err, tensor.ErrInvalidShape)
	assert.Contains(t, err.Error(), "array.json")

	require.NoError(t, os.WriteFile(path, []byte(`[[1, 2], [3, 4]]`), 0o600))
	raw, err := Load(path, tensor.Float64)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, raw.Shape())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), tensor.Float64)
	require.Error(t, err)
}
