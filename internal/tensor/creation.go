package tensor

import "fmt"

// Zeros creates a zero-filled tensor of the given shape and dtype.
func Zeros(shape Shape, dtype DataType) (*RawTensor, error) {
	return NewRaw(shape, dtype)
}

// FromSlice creates a contiguous tensor holding a copy of values.
//
// Example:
//
//	a, _ := tensor.FromSlice(tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
func FromSlice[T Element](shape Shape, values []T) (*RawTensor, error) {
	if len(values) != shape.NumElements() {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrInvalidShape, len(values), shape)
	}
	raw, err := NewRaw(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	copy(Data[T](raw), values)
	return raw, nil
}

// Scalar creates a zero-dimensional tensor holding v.
func Scalar[T Element](v T) *RawTensor {
	raw, err := NewRaw(Shape{}, DataTypeOf[T]())
	if err != nil {
		panic(err) // scalar shape is always valid
	}
	Data[T](raw)[0] = v
	return raw
}

// Full creates a tensor filled with v.
func Full[T Element](shape Shape, v T) (*RawTensor, error) {
	raw, err := NewRaw(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	data := Data[T](raw)
	for i := range data {
		data[i] = v
	}
	return raw, nil
}

// Arange creates a tensor of the given shape filled with 0, 1, 2, ... in row-major order.
func Arange[T Number](shape Shape) (*RawTensor, error) {
	raw, err := NewRaw(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	data := Data[T](raw)
	for i := range data {
		data[i] = T(i)
	}
	return raw, nil
}
