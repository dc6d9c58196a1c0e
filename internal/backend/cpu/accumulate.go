package cpu

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/born-ml/ndreduce/internal/tensor"
)

// accumulateMode selects the associative operator of an accumulation.
type accumulateMode int

const (
	modeSum accumulateMode = iota
	modeProd
)

// accumulateKernel dispatches a sum or product on the source dtype.
// Each source type folds into its widened accumulator (see DataType.AccumulatingType).
func accumulateKernel(mode accumulateMode) func(j job) {
	return func(j job) {
		switch j.src.DType() {
		case tensor.Int8:
			accumulate[int8, int32](j, mode)
		case tensor.Uint8:
			accumulate[uint8, int32](j, mode)
		case tensor.Int16:
			accumulate[int16, int32](j, mode)
		case tensor.Uint16:
			accumulate[uint16, uint32](j, mode)
		case tensor.Char16:
			accumulate[tensor.Char, uint32](j, mode)
		case tensor.Int32:
			accumulate[int32, int64](j, mode)
		case tensor.Uint32:
			accumulate[uint32, uint64](j, mode)
		case tensor.Int64:
			accumulate[int64, int64](j, mode)
		case tensor.Uint64:
			accumulate[uint64, uint64](j, mode)
		case tensor.Float32:
			accumulate[float32, float64](j, mode)
		case tensor.Float64:
			accumulate[float64, float64](j, mode)
		case tensor.Decimal:
			decimalAccumulate(j, mode)
		default:
			panic(fmt.Sprintf("accumulate: unsupported dtype %s", j.src.DType()))
		}
	}
}

// accumulate folds S values in accumulator A and converts each result once, when it is stored.
func accumulate[S, A tensor.Number](j job, mode accumulateMode) {
	if acc := tensor.DataTypeOf[A](); acc != j.src.DType().AccumulatingType() {
		panic(errors.Wrapf(tensor.ErrInternalInvariant, "accumulator %s for %s", acc, j.src.DType()))
	}

	if mode == modeProd {
		run(j, foldFunc[S, A](prodFold[S, A]), tensor.Setter[A](j.dst))
		return
	}
	run(j, foldFunc[S, A](sumFold[S, A]), tensor.Setter[A](j.dst))
}

func sumFold[S, A tensor.Number](values iter.Seq[S], _ int) A {
	var acc A
	for v := range values {
		acc += A(v)
	}
	return acc
}

func prodFold[S, A tensor.Number](values iter.Seq[S], _ int) A {
	acc := A(1)
	for v := range values {
		acc *= A(v)
	}
	return acc
}

func decimalAccumulate(j job, mode accumulateMode) {
	fold := func(values iter.Seq[decimal.Decimal], _ int) decimal.Decimal {
		acc := decimal.Zero
		for v := range values {
			acc = acc.Add(v)
		}
		return acc
	}
	if mode == modeProd {
		fold = func(values iter.Seq[decimal.Decimal], _ int) decimal.Decimal {
			acc := decimal.NewFromInt(1)
			for v := range values {
				acc = acc.Mul(v)
			}
			return acc
		}
	}
	run(j, foldFunc[decimal.Decimal, decimal.Decimal](fold), tensor.DecimalSetter(j.dst))
}
