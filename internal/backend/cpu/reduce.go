package cpu

import (
	"github.com/born-ml/ndreduce/internal/tensor"
)

// ReduceMax returns the largest element, along an axis or over the whole tensor.
//
// Parameters:
//   - x: source tensor of any numeric dtype (Bool is rejected)
//   - opts: WithAxis (negative values count from the end), WithKeepDims, WithDType, WithOut
//
// The result defaults to the source dtype. Comparison happens in the source
// type; the winner is converted once.
//
// Example:
//
//	x, _ := tensor.FromSlice(tensor.Shape{2, 3}, []int32{1, 5, 2, 7, 0, 3})
//	y, _ := backend.ReduceMax(x, tensor.WithAxis(1))                       // [5 7], shape [2]
//	z, _ := backend.ReduceMax(x, tensor.WithAxis(-1), tensor.WithKeepDims()) // shape [2, 1]
func (cpu *CPUBackend) ReduceMax(x *tensor.RawTensor, opts ...tensor.ReduceOption) (*tensor.RawTensor, error) {
	return cpu.reduce(x, opMax, opts)
}

// ReduceMin returns the smallest element, along an axis or over the whole tensor.
// It accepts the same options as ReduceMax.
func (cpu *CPUBackend) ReduceMin(x *tensor.RawTensor, opts ...tensor.ReduceOption) (*tensor.RawTensor, error) {
	return cpu.reduce(x, opMin, opts)
}

// ReduceArgMax returns the position of the first largest element.
// Along an axis the position is the index within the axis; without one it is
// the flat row-major index. The result defaults to Int64.
func (cpu *CPUBackend) ReduceArgMax(x *tensor.RawTensor, opts ...tensor.ReduceOption) (*tensor.RawTensor, error) {
	return cpu.reduce(x, opArgMax, opts)
}

// ReduceArgMin returns the position of the first smallest element.
func (cpu *CPUBackend) ReduceArgMin(x *tensor.RawTensor, opts ...tensor.ReduceOption) (*tensor.RawTensor, error) {
	return cpu.reduce(x, opArgMin, opts)
}

// ReduceSum adds up elements, along an axis or over the whole tensor.
//
// Parameters:
//   - x: source tensor of any numeric dtype
//   - opts: WithAxis, WithKeepDims, WithDType, WithOut
//
// Values are accumulated in the widened accumulator type (int8 -> int32,
// uint16 -> uint32, int32 -> int64, float32 -> float64, ...), which is also
// the default result dtype. A narrower WithDType converts the final sum.
// Empty inputs sum to 0.
//
// Example:
//
//	x, _ := tensor.FromSlice(tensor.Shape{3}, []int8{100, 100, 100})
//	y, _ := backend.ReduceSum(x) // int32 scalar 300
func (cpu *CPUBackend) ReduceSum(x *tensor.RawTensor, opts ...tensor.ReduceOption) (*tensor.RawTensor, error) {
	return cpu.reduce(x, opSum, opts)
}

// ReduceProd multiplies elements in the widened accumulator type.
// Empty inputs multiply to 1.
func (cpu *CPUBackend) ReduceProd(x *tensor.RawTensor, opts ...tensor.ReduceOption) (*tensor.RawTensor, error) {
	return cpu.reduce(x, opProd, opts)
}

// ReduceMean computes the arithmetic mean.
// Integer sources produce Float64; floating-point and decimal sources keep their dtype.
// Empty inputs return ErrEmptyReduction.
func (cpu *CPUBackend) ReduceMean(x *tensor.RawTensor, opts ...tensor.ReduceOption) (*tensor.RawTensor, error) {
	return cpu.reduce(x, opMean, opts)
}

// ReduceVar computes the variance with a two-pass algorithm.
//
// Parameters:
//   - x: source tensor of any numeric dtype
//   - opts: WithAxis, WithKeepDims, WithDType, WithOut, WithDDOF
//
// The sum of squared deviations is divided by n - ddof (ddof defaults to 0,
// the population variance). A single value has variance 0. ErrInvalidDDOF is
// returned when n - ddof <= 0.
//
// Example:
//
//	x, _ := tensor.FromSlice(tensor.Shape{4}, []float64{1, 2, 3, 4})
//	v, _ := backend.ReduceVar(x)                       // 1.25
//	s, _ := backend.ReduceVar(x, tensor.WithDDOF(1))   // 1.6666...
func (cpu *CPUBackend) ReduceVar(x *tensor.RawTensor, opts ...tensor.ReduceOption) (*tensor.RawTensor, error) {
	return cpu.reduce(x, opVar, opts)
}

// ReduceStd computes the standard deviation, the square root of ReduceVar.
func (cpu *CPUBackend) ReduceStd(x *tensor.RawTensor, opts ...tensor.ReduceOption) (*tensor.RawTensor, error) {
	return cpu.reduce(x, opStd, opts)
}
