package tensor

// ReduceOption configures a reduction.
type ReduceOption func(*ReduceOptions)

// ReduceOptions holds the resolved reduction parameters.
// A nil Axis means a full reduction; a nil DType means the operator default.
type ReduceOptions struct {
	Axis     *int
	KeepDims bool
	DType    *DataType
	DDOF     int
	Out      *RawTensor
}

// WithAxis reduces along axis. Negative values count from the end.
func WithAxis(axis int) ReduceOption {
	return func(o *ReduceOptions) {
		o.Axis = &axis
	}
}

// WithKeepDims keeps the reduced axis in the result with size 1.
func WithKeepDims() ReduceOption {
	return func(o *ReduceOptions) {
		o.KeepDims = true
	}
}

// WithDType sets the result data type.
func WithDType(dtype DataType) ReduceOption {
	return func(o *ReduceOptions) {
		o.DType = &dtype
	}
}

// WithDDOF sets the delta degrees of freedom for variance and standard deviation.
func WithDDOF(ddof int) ReduceOption {
	return func(o *ReduceOptions) {
		o.DDOF = ddof
	}
}

// WithOut writes the result into out, which is returned on success.
func WithOut(out *RawTensor) ReduceOption {
	return func(o *ReduceOptions) {
		o.Out = out
	}
}

// ResolveReduceOptions applies opts over the defaults.
func ResolveReduceOptions(opts ...ReduceOption) ReduceOptions {
	var o ReduceOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
