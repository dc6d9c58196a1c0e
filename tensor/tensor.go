// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndreduce/internal/tensor"
)

// RawTensor is a strided view over a shared, reference-counted buffer.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := tensor.Data[float32](raw) // zero-copy access
type RawTensor = tensor.RawTensor

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// DataType represents runtime type information for tensors.
type DataType = tensor.DataType

// Char is a UTF-16 code unit element.
type Char = tensor.Char

// Lane describes a 1-D run of elements in a buffer.
type Lane = tensor.Lane

// Element is a constraint for every type a tensor can store.
type Element = tensor.Element

// Number is a constraint for every fixed-width numeric element type.
type Number = tensor.Number

// Supported data types.
const (
	Bool    = tensor.Bool
	Int8    = tensor.Int8
	Uint8   = tensor.Uint8
	Int16   = tensor.Int16
	Uint16  = tensor.Uint16
	Char16  = tensor.Char16
	Int32   = tensor.Int32
	Uint32  = tensor.Uint32
	Int64   = tensor.Int64
	Uint64  = tensor.Uint64
	Float32 = tensor.Float32
	Float64 = tensor.Float64
	Decimal = tensor.Decimal
)

// Errors returned by reductions and constructors. Match them with errors.Is.
var (
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
	ErrIncorrectShape  = tensor.ErrIncorrectShape
	ErrInvalidShape    = tensor.ErrInvalidShape
	ErrUnsupportedType = tensor.ErrUnsupportedType
	ErrDTypeMismatch   = tensor.ErrDTypeMismatch
	ErrInvalidDDOF     = tensor.ErrInvalidDDOF
	ErrEmptyReduction  = tensor.ErrEmptyReduction
)

// ParseDataType resolves a data type from its name.
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}

// NewRaw creates a zero-initialized contiguous tensor.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.Zeros(shape, dtype)
}

// FromSlice creates a contiguous tensor holding a copy of values.
func FromSlice[T Element](shape Shape, values []T) (*RawTensor, error) {
	return tensor.FromSlice(shape, values)
}

// Scalar creates a zero-dimensional tensor holding v.
func Scalar[T Element](v T) *RawTensor {
	return tensor.Scalar(v)
}

// Full creates a tensor filled with v.
func Full[T Element](shape Shape, v T) (*RawTensor, error) {
	return tensor.Full(shape, v)
}

// Arange creates a tensor filled with 0, 1, 2, ... in row-major order.
func Arange[T Number](shape Shape) (*RawTensor, error) {
	return tensor.Arange[T](shape)
}

// Cast returns a contiguous copy of src converted to dtype.
func Cast(src *RawTensor, dtype DataType) (*RawTensor, error) {
	return tensor.Cast(src, dtype)
}

// Data returns the backing buffer of r as []T. Panics if T does not match the dtype.
func Data[T Element](r *RawTensor) []T {
	return tensor.Data[T](r)
}

// Values returns a row-major copy of the logical elements.
func Values[T Element](r *RawTensor) []T {
	return tensor.Values[T](r)
}

// At returns the element at the given coordinates.
func At[T Element](r *RawTensor, coords ...int) T {
	return tensor.At[T](r, coords...)
}
