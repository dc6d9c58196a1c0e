// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for axis-aware reductions.
//
// # Overview
//
// This package implements:
//   - Max, Min, ArgMax and ArgMin
//   - Sum and Prod in a widened accumulator type
//   - Mean, Var and Std with a delta degrees of freedom
//
// Every reduction works on strided views without copying them, along one
// axis or over the whole tensor.
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
//	    x, _ := tensor.FromSlice(tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
//	    out, _ := tensor.Zeros(tensor.Shape{2, 1}, tensor.Float64)
//	    _, err := backend.ReduceMean(x,
//	        tensor.WithAxis(1), tensor.WithKeepDims(), tensor.WithOut(out))
//	}
//
// # Performance
//
// Output cells are independent, so large outputs are split into contiguous
// ranges with one goroutine each. Results are identical to a sequential run.
// Use NewWithConfig(cpu.Sequential()) to stay on the calling goroutine.
package cpu
