package cpu

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"

	"github.com/born-ml/ndreduce/internal/tensor"
)

// extremeMode selects which extreme a fold looks for and what it reports.
type extremeMode int

const (
	modeMax extremeMode = iota
	modeMin
	modeArgMax
	modeArgMin
)

func (m extremeMode) wantsMax() bool {
	return m == modeMax || m == modeArgMax
}

func (m extremeMode) wantsIndex() bool {
	return m == modeArgMax || m == modeArgMin
}

// extremeKernel dispatches an extreme search on the source dtype.
func extremeKernel(mode extremeMode) func(j job) {
	return func(j job) {
		switch j.src.DType() {
		case tensor.Int8:
			extremes[int8](j, mode)
		case tensor.Uint8:
			extremes[uint8](j, mode)
		case tensor.Int16:
			extremes[int16](j, mode)
		case tensor.Uint16:
			extremes[uint16](j, mode)
		case tensor.Char16:
			extremes[tensor.Char](j, mode)
		case tensor.Int32:
			extremes[int32](j, mode)
		case tensor.Uint32:
			extremes[uint32](j, mode)
		case tensor.Int64:
			extremes[int64](j, mode)
		case tensor.Uint64:
			extremes[uint64](j, mode)
		case tensor.Float32:
			extremes[float32](j, mode)
		case tensor.Float64:
			extremes[float64](j, mode)
		case tensor.Decimal:
			decimalExtremes(j, mode)
		default:
			panic(fmt.Sprintf("extreme: unsupported dtype %s", j.src.DType()))
		}
	}
}

// extremes compares in the source type S and converts only the final value.
func extremes[S tensor.Number](j job, mode extremeMode) {
	better := func(candidate, best S) bool { return candidate < best }
	if mode.wantsMax() {
		better = func(candidate, best S) bool { return candidate > best }
	}

	if mode.wantsIndex() {
		run(j, indexFold(better), tensor.Setter[int64](j.dst))
		return
	}
	run(j, pickFold(better), tensor.Setter[S](j.dst))
}

func decimalExtremes(j job, mode extremeMode) {
	better := func(candidate, best decimal.Decimal) bool { return candidate.Cmp(best) < 0 }
	if mode.wantsMax() {
		better = func(candidate, best decimal.Decimal) bool { return candidate.Cmp(best) > 0 }
	}

	if mode.wantsIndex() {
		run(j, indexFold(better), tensor.Setter[int64](j.dst))
		return
	}
	run(j, pickFold(better), tensor.DecimalSetter(j.dst))
}

// pickFold keeps the first element and replaces it whenever a later one is better.
// Callers guarantee at least one value.
func pickFold[S any](better func(candidate, best S) bool) foldFunc[S, S] {
	return func(values iter.Seq[S], _ int) S {
		var best S
		first := true
		for v := range values {
			if first || better(v, best) {
				best = v
				first = false
			}
		}
		return best
	}
}

// indexFold reports the position of the first best element.
func indexFold[S any](better func(candidate, best S) bool) foldFunc[S, int64] {
	return func(values iter.Seq[S], _ int) int64 {
		var best S
		var bestIdx, i int64
		for v := range values {
			if i == 0 || better(v, best) {
				best = v
				bestIdx = i
			}
			i++
		}
		return bestIdx
	}
}
