package tensor

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/shopspring/decimal"
)

// Data returns the whole backing buffer of r as []T.
// Logical elements live at the offsets reported by Offsets or Lane, not at 0..n-1,
// unless the tensor is contiguous with zero offset.
// Panics if T does not match the tensor's dtype.
func Data[T Element](r *RawTensor) []T {
	if want := DataTypeOf[T](); want != r.dtype {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, want))
	}
	if r.dtype == Decimal {
		return any(r.buffer.decimals).([]T)
	}

	data := r.buffer.data
	if len(data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the buffer size
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), len(data)/r.dtype.Size())
}

// Offsets iterates the buffer offsets of the logical elements in row-major order.
func (r *RawTensor) Offsets() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := r.NumElements()
		if n == 0 {
			return
		}
		if r.IsContiguous() {
			for i := 0; i < n; i++ {
				if !yield(r.offset + i) {
					return
				}
			}
			return
		}

		coords := make([]int, len(r.shape))
		off := r.offset
		for i := 0; i < n; i++ {
			if !yield(off) {
				return
			}
			for d := len(coords) - 1; d >= 0; d-- {
				coords[d]++
				off += r.stride[d]
				if coords[d] < r.shape[d] {
					break
				}
				off -= coords[d] * r.stride[d]
				coords[d] = 0
			}
		}
	}
}

// Elements iterates the logical elements of r in row-major order, honouring strides.
func Elements[T Element](r *RawTensor) iter.Seq[T] {
	data := Data[T](r)
	return func(yield func(T) bool) {
		for off := range r.Offsets() {
			if !yield(data[off]) {
				return
			}
		}
	}
}

// LaneValues iterates the elements of a lane.
func LaneValues[T any](data []T, lane Lane) iter.Seq[T] {
	return func(yield func(T) bool) {
		off := lane.Offset
		for i := 0; i < lane.Len; i++ {
			if !yield(data[off]) {
				return
			}
			off += lane.Stride
		}
	}
}

// Values returns a row-major copy of the logical elements.
func Values[T Element](r *RawTensor) []T {
	out := make([]T, 0, r.NumElements())
	for v := range Elements[T](r) {
		out = append(out, v)
	}
	return out
}

// At returns the element at the given coordinates.
func At[T Element](r *RawTensor, coords ...int) T {
	r.checkCoords(coords)
	return Data[T](r)[r.OffsetOf(coords)]
}

// SetAt writes v at the given coordinates.
func SetAt[T Element](r *RawTensor, v T, coords ...int) {
	r.checkCoords(coords)
	Data[T](r)[r.OffsetOf(coords)] = v
}

// Item returns the single element of a one-element tensor as a Go value.
func (r *RawTensor) Item() any {
	if r.NumElements() != 1 {
		panic(fmt.Sprintf("item: tensor has %d elements, want 1", r.NumElements()))
	}
	for off := range r.Offsets() {
		return r.elementAt(off)
	}
	return nil
}

// Nested returns the elements as nested []any slices (a bare value for scalars).
func (r *RawTensor) Nested() any {
	if len(r.shape) == 0 {
		return r.elementAt(r.offset)
	}
	return r.nested(0, r.offset)
}

func (r *RawTensor) nested(dim, off int) []any {
	out := make([]any, r.shape[dim])
	for i := range out {
		o := off + i*r.stride[dim]
		if dim == len(r.shape)-1 {
			out[i] = r.elementAt(o)
		} else {
			out[i] = r.nested(dim+1, o)
		}
	}
	return out
}

// Format renders the elements as nested lists, e.g. [[1 2] [3 4]].
func (r *RawTensor) Format() string {
	return fmt.Sprint(r.Nested())
}

func (r *RawTensor) elementAt(off int) any {
	switch r.dtype {
	case Bool:
		return Data[bool](r)[off]
	case Int8:
		return Data[int8](r)[off]
	case Uint8:
		return Data[uint8](r)[off]
	case Int16:
		return Data[int16](r)[off]
	case Uint16:
		return Data[uint16](r)[off]
	case Char16:
		return Data[Char](r)[off]
	case Int32:
		return Data[int32](r)[off]
	case Uint32:
		return Data[uint32](r)[off]
	case Int64:
		return Data[int64](r)[off]
	case Uint64:
		return Data[uint64](r)[off]
	case Float32:
		return Data[float32](r)[off]
	case Float64:
		return Data[float64](r)[off]
	case Decimal:
		return Data[decimal.Decimal](r)[off]
	default:
		panic(fmt.Sprintf("unknown data type %d", int(r.dtype)))
	}
}
