// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/ndreduce/internal/tensor"

// Backend defines the reductions a compute backend implements.
//
// Implementations:
//   - backend/cpu: Pure Go, optionally partitioned across goroutines
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndreduce/backend/cpu"
//	    "github.com/born-ml/ndreduce/tensor"
//	)
//
//	var backend tensor.Backend = cpu.New()
//	x, _ := tensor.Arange[float32](tensor.Shape{2, 3})
//	m, _ := backend.ReduceMax(x, tensor.WithAxis(0))  // [3 4 5]
type Backend = tensor.Backend

// ReduceOption configures a reduction.
type ReduceOption = tensor.ReduceOption

// WithAxis reduces along axis. Negative values count from the end.
func WithAxis(axis int) ReduceOption {
	return tensor.WithAxis(axis)
}

// WithKeepDims keeps the reduced axis with size 1.
func WithKeepDims() ReduceOption {
	return tensor.WithKeepDims()
}

// WithDType sets the result data type.
func WithDType(dtype DataType) ReduceOption {
	return tensor.WithDType(dtype)
}

// WithDDOF sets the delta degrees of freedom for Var and Std.
func WithDDOF(ddof int) ReduceOption {
	return tensor.WithDDOF(ddof)
}

// WithOut writes the result into out.
func WithOut(out *RawTensor) ReduceOption {
	return tensor.WithOut(out)
}
