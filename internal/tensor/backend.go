package tensor

// Backend defines the reductions a compute backend implements.
//
// Every method accepts the same options (WithAxis, WithKeepDims, WithDType,
// WithOut, and WithDDOF for the variance family) and returns either a fully
// populated result or an error, never both.
//
// Implementations:
//   - CPU: Pure Go, optionally partitioned across goroutines
type Backend interface {
	// Name returns the backend name.
	Name() string

	// Extremes
	ReduceMax(x *RawTensor, opts ...ReduceOption) (*RawTensor, error)
	ReduceMin(x *RawTensor, opts ...ReduceOption) (*RawTensor, error)
	ReduceArgMax(x *RawTensor, opts ...ReduceOption) (*RawTensor, error)
	ReduceArgMin(x *RawTensor, opts ...ReduceOption) (*RawTensor, error)

	// Accumulations in the widened accumulator type
	ReduceSum(x *RawTensor, opts ...ReduceOption) (*RawTensor, error)
	ReduceProd(x *RawTensor, opts ...ReduceOption) (*RawTensor, error)

	// Statistics in the computing type
	ReduceMean(x *RawTensor, opts ...ReduceOption) (*RawTensor, error)
	ReduceVar(x *RawTensor, opts ...ReduceOption) (*RawTensor, error)
	ReduceStd(x *RawTensor, opts ...ReduceOption) (*RawTensor, error)
}
