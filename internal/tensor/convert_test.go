package tensor

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	assert.Equal(t, int8(44), Convert[int32, int8](300))
	assert.Equal(t, int32(-2), Convert[float64, int32](-2.9))
	assert.Equal(t, float32(0.5), Convert[float64, float32](0.5))
	assert.Equal(t, uint16(65535), Convert[int32, uint16](-1))
}

func TestDecimalConversions(t *testing.T) {
	assert.True(t, ToDecimal(int16(-7)).Equal(decimal.NewFromInt(-7)))
	assert.Equal(t, "18446744073709551615", ToDecimal(uint64(math.MaxUint64)).String())
	assert.True(t, ToDecimal(math.NaN()).IsZero())
	assert.True(t, ToDecimal(float32(math.Inf(1))).IsZero())

	d := decimal.RequireFromString("12.75")
	assert.Equal(t, int32(12), FromDecimal[int32](d))
	assert.Equal(t, 12.75, FromDecimal[float64](d))
	assert.Equal(t, uint64(math.MaxUint64), FromDecimal[uint64](decimal.RequireFromString("18446744073709551615")))
}

func TestCast(t *testing.T) {
	src, err := FromSlice(Shape{2, 2}, []float64{1.9, -1.9, 100.5, 0})
	require.NoError(t, err)

	asInt8, err := Cast(src, Int8)
	require.NoError(t, err)
	assert.Equal(t, Int8, asInt8.DType())
	assert.Equal(t, []int8{1, -1, 100, 0}, Values[int8](asInt8))

	asDecimal, err := Cast(src, Decimal)
	require.NoError(t, err)
	assert.Equal(t, "1.9", Values[decimal.Decimal](asDecimal)[0].String())

	bools, err := FromSlice(Shape{2}, []bool{true, false})
	require.NoError(t, err)
	asFloat, err := Cast(bools, Float32)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0}, Values[float32](asFloat))
}

func TestCastIntoStrided(t *testing.T) {
	src := mustArange(t, Shape{2, 3})
	tr, err := src.Transpose()
	require.NoError(t, err)

	dst, err := NewRaw(Shape{3, 2}, Float64)
	require.NoError(t, err)
	require.NoError(t, CastInto(dst, tr))
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, Data[float64](dst))

	require.ErrorIs(t, CastInto(dst, src), ErrIncorrectShape)
}

func TestSetter(t *testing.T) {
	dst, err := NewRaw(Shape{3}, Uint8)
	require.NoError(t, err)

	set := Setter[int64](dst)
	set(0, 256+7)
	set(2, -1)
	assert.Equal(t, []uint8{7, 0, 255}, Data[uint8](dst))

	decimals, err := NewRaw(Shape{1}, Decimal)
	require.NoError(t, err)
	DecimalSetter(decimals)(0, decimal.RequireFromString("3.5"))
	Setter[float32](dst)(1, 9.99)
	assert.Equal(t, "3.5", decimals.Item().(decimal.Decimal).String())
	assert.Equal(t, uint8(9), Data[uint8](dst)[1])
}

func TestOffsets(t *testing.T) {
	raw := mustArange(t, Shape{3, 4})
	n, err := raw.Narrow(0, 1, 2)
	require.NoError(t, err)
	tr, err := n.Transpose()
	require.NoError(t, err)

	var offsets []int
	for off := range tr.Offsets() {
		offsets = append(offsets, off)
	}
	assert.Equal(t, []int{4, 8, 5, 9, 6, 10, 7, 11}, offsets)

	empty, err := NewRaw(Shape{0, 2}, Float32)
	require.NoError(t, err)
	for range empty.Offsets() {
		t.Fatal("empty tensor has no offsets")
	}
}
