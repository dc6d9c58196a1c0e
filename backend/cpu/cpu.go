// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/ndreduce/internal/backend/cpu"
	"github.com/born-ml/ndreduce/internal/parallel"
	"github.com/born-ml/ndreduce/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend reduces in pure Go and spreads independent output cells
// across goroutines when the output is large enough.
type Backend = internalcpu.CPUBackend

// Config controls how output cells are partitioned across goroutines.
type Config = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend with one worker per CPU.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndreduce/backend/cpu"
//	    "github.com/born-ml/ndreduce/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.Arange[float64](tensor.Shape{2, 3})
//	    y, _ := backend.ReduceSum(x, tensor.WithAxis(-1)) // [3 12]
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns the configuration New uses.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns a configuration that never spawns goroutines.
func Sequential() Config {
	return parallel.Sequential()
}
