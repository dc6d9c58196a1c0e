package tensor

import (
	"fmt"
	"iter"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Convert converts between numeric element types with Go conversion semantics:
// integer narrowing wraps and float to integer truncates toward zero.
func Convert[From, To Number](v From) To {
	return To(v)
}

// ToDecimal converts a numeric value to a decimal.
// NaN and infinities have no decimal form and become zero.
func ToDecimal[V Number](v V) decimal.Decimal {
	switch x := any(v).(type) {
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat32(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(x)), 0)
	case uintptr:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(x)), 0)
	default:
		return decimal.NewFromInt(int64(v))
	}
}

// FromDecimal converts a decimal to a numeric value.
// Integer targets take the truncated integer part and wrap like Convert.
func FromDecimal[V Number](d decimal.Decimal) V {
	var zero V
	switch any(zero).(type) {
	case float32, float64:
		return V(d.InexactFloat64())
	}
	b := d.BigInt()
	if b.IsInt64() {
		return V(b.Int64())
	}
	return V(b.Uint64())
}

// Setter resolves dst's dtype once and returns a function that stores a V,
// converted to that dtype, at a buffer offset.
func Setter[V Number](dst *RawTensor) func(off int, v V) {
	switch dst.dtype {
	case Bool:
		s := Data[bool](dst)
		return func(off int, v V) { s[off] = v != 0 }
	case Int8:
		s := Data[int8](dst)
		return func(off int, v V) { s[off] = int8(v) }
	case Uint8:
		s := Data[uint8](dst)
		return func(off int, v V) { s[off] = uint8(v) }
	case Int16:
		s := Data[int16](dst)
		return func(off int, v V) { s[off] = int16(v) }
	case Uint16:
		s := Data[uint16](dst)
		return func(off int, v V) { s[off] = uint16(v) }
	case Char16:
		s := Data[Char](dst)
		return func(off int, v V) { s[off] = Char(v) }
	case Int32:
		s := Data[int32](dst)
		return func(off int, v V) { s[off] = int32(v) }
	case Uint32:
		s := Data[uint32](dst)
		return func(off int, v V) { s[off] = uint32(v) }
	case Int64:
		s := Data[int64](dst)
		return func(off int, v V) { s[off] = int64(v) }
	case Uint64:
		s := Data[uint64](dst)
		return func(off int, v V) { s[off] = uint64(v) }
	case Float32:
		s := Data[float32](dst)
		return func(off int, v V) { s[off] = float32(v) }
	case Float64:
		s := Data[float64](dst)
		return func(off int, v V) { s[off] = float64(v) }
	case Decimal:
		s := Data[decimal.Decimal](dst)
		return func(off int, v V) { s[off] = ToDecimal(v) }
	default:
		panic(fmt.Sprintf("setter: unknown data type %d", int(dst.dtype)))
	}
}

// DecimalSetter is Setter for decimal values.
func DecimalSetter(dst *RawTensor) func(off int, d decimal.Decimal) {
	switch dst.dtype {
	case Bool:
		s := Data[bool](dst)
		return func(off int, d decimal.Decimal) { s[off] = !d.IsZero() }
	case Int8:
		return decimalInto[int8](dst)
	case Uint8:
		return decimalInto[uint8](dst)
	case Int16:
		return decimalInto[int16](dst)
	case Uint16:
		return decimalInto[uint16](dst)
	case Char16:
		return decimalInto[Char](dst)
	case Int32:
		return decimalInto[int32](dst)
	case Uint32:
		return decimalInto[uint32](dst)
	case Int64:
		return decimalInto[int64](dst)
	case Uint64:
		return decimalInto[uint64](dst)
	case Float32:
		return decimalInto[float32](dst)
	case Float64:
		return decimalInto[float64](dst)
	case Decimal:
		s := Data[decimal.Decimal](dst)
		return func(off int, d decimal.Decimal) { s[off] = d }
	default:
		panic(fmt.Sprintf("setter: unknown data type %d", int(dst.dtype)))
	}
}

func decimalInto[V Number](dst *RawTensor) func(off int, d decimal.Decimal) {
	s := Data[V](dst)
	return func(off int, d decimal.Decimal) { s[off] = FromDecimal[V](d) }
}

// Cast returns a contiguous copy of src converted to dtype.
func Cast(src *RawTensor, dtype DataType) (*RawTensor, error) {
	out, err := NewRaw(src.shape, dtype)
	if err != nil {
		return nil, err
	}
	if err := CastInto(out, src); err != nil {
		return nil, err
	}
	return out, nil
}

// CastInto converts every element of src into dst, which must have the same shape.
// Both tensors may be arbitrary strided views.
func CastInto(dst, src *RawTensor) error {
	if !dst.shape.Equal(src.shape) {
		return fmt.Errorf("%w: cast %v into %v", ErrIncorrectShape, src.shape, dst.shape)
	}

	switch src.dtype {
	case Bool:
		data := Data[bool](src)
		set := Setter[uint8](dst)
		walkPair(dst, src, func(d, s int) {
			var v uint8
			if data[s] {
				v = 1
			}
			set(d, v)
		})
	case Int8:
		castFrom[int8](dst, src)
	case Uint8:
		castFrom[uint8](dst, src)
	case Int16:
		castFrom[int16](dst, src)
	case Uint16:
		castFrom[uint16](dst, src)
	case Char16:
		castFrom[Char](dst, src)
	case Int32:
		castFrom[int32](dst, src)
	case Uint32:
		castFrom[uint32](dst, src)
	case Int64:
		castFrom[int64](dst, src)
	case Uint64:
		castFrom[uint64](dst, src)
	case Float32:
		castFrom[float32](dst, src)
	case Float64:
		castFrom[float64](dst, src)
	case Decimal:
		data := Data[decimal.Decimal](src)
		set := DecimalSetter(dst)
		walkPair(dst, src, func(d, s int) { set(d, data[s]) })
	default:
		return fmt.Errorf("%w: cast from %s", ErrUnsupportedType, src.dtype)
	}
	return nil
}

func castFrom[S Number](dst, src *RawTensor) {
	data := Data[S](src)
	set := Setter[S](dst)
	walkPair(dst, src, func(d, s int) { set(d, data[s]) })
}

// walkPair calls f with matching row-major offsets of two equally shaped tensors.
func walkPair(dst, src *RawTensor, f func(d, s int)) {
	next, stop := iter.Pull(src.Offsets())
	defer stop()
	for d := range dst.Offsets() {
		s, ok := next()
		if !ok {
			panic(ErrInternalInvariant)
		}
		f(d, s)
	}
}
