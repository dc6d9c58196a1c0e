package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// NDim returns the number of dimensions.
func (s Shape) NDim() int {
	return len(s)
}

// IsScalar reports whether the shape has no dimensions.
func (s Shape) IsScalar() bool {
	return len(s) == 0
}

// IsEmpty reports whether the shape holds zero elements, i.e. some dimension is 0.
// A scalar is never empty.
func (s Shape) IsEmpty() bool {
	for _, dim := range s {
		if dim == 0 {
			return true
		}
	}
	return false
}

// Validate checks if the shape is valid (no negative dimensions).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// NormalizeAxis maps a possibly negative axis onto [0, ndim).
// Negative values have ndim added until they become non-negative.
func (s Shape) NormalizeAxis(axis int) (int, error) {
	ndim := len(s)
	if ndim == 0 {
		return 0, fmt.Errorf("%w: axis %d for a scalar", ErrIndexOutOfRange, axis)
	}
	for axis < 0 {
		axis += ndim
	}
	if axis >= ndim {
		return 0, fmt.Errorf("%w: axis %d for %dD shape %v", ErrIndexOutOfRange, axis, ndim, s)
	}
	return axis, nil
}

// RemoveAxis returns a new shape without the given axis.
func (s Shape) RemoveAxis(axis int) Shape {
	out := make(Shape, 0, len(s)-1)
	for i, dim := range s {
		if i != axis {
			out = append(out, dim)
		}
	}
	return out
}

// SetAxisToOne returns a new shape with the given axis collapsed to size 1.
func (s Shape) SetAxisToOne(axis int) Shape {
	out := s.Clone()
	out[axis] = 1
	return out
}

// InsertAxis returns a new shape with a size-1 dimension inserted at axis.
func (s Shape) InsertAxis(axis int) Shape {
	out := make(Shape, 0, len(s)+1)
	out = append(out, s[:axis]...)
	out = append(out, 1)
	return append(out, s[axis:]...)
}

// Ones returns an n-dimensional shape of ones.
func Ones(n int) Shape {
	out := make(Shape, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
