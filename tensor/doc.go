// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the strided N-dimensional arrays reduced by ndreduce.
//
// # Overview
//
// A RawTensor is a typed view over a shared, reference-counted buffer:
//   - Shape, strides and offset are counted in elements
//   - Transpose, Narrow, Squeeze and ExpandDims are metadata-only views
//   - Thirteen element types, from Bool to Decimal (shopspring/decimal)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndreduce/backend/cpu"
//	    "github.com/born-ml/ndreduce/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.FromSlice(tensor.Shape{2, 3}, []int8{1, 2, 3, 4, 5, 6})
//	    sum, _ := backend.ReduceSum(x, tensor.WithAxis(1))  // int32 [6 15]
//	    v, _ := backend.ReduceVar(x, tensor.WithDDOF(1))    // float64 scalar 3.5
//	}
//
// # Result Types
//
// Max and Min keep the source type. Sum and Prod accumulate in a widened
// type (int8 -> int32, uint16 -> uint32, int32 -> int64, float32 -> float64).
// Mean, Var and Std report integers as float64. WithDType and WithOut
// override the result type; the accumulator never changes.
package tensor
