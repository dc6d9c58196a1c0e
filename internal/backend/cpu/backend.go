// Package cpu implements the CPU backend for axis-aware reductions.
package cpu

import (
	"github.com/born-ml/ndreduce/internal/parallel"
	"github.com/born-ml/ndreduce/internal/tensor"
)

// CPUBackend implements tensor reductions on CPU.
// Independent output cells are optionally spread across goroutines.
type CPUBackend struct {
	parallel parallel.Config
}

// Compile-time check that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// New creates a new CPU backend with default parallelism.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallel configuration.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Config returns the parallel configuration.
func (cpu *CPUBackend) Config() parallel.Config {
	return cpu.parallel
}
