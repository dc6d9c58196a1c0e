package cpu

import (
	"fmt"
	"iter"
	"math"

	"github.com/shopspring/decimal"

	"github.com/born-ml/ndreduce/internal/tensor"
)

// statisticMode selects a moment-based statistic.
type statisticMode int

const (
	modeMean statisticMode = iota
	modeVar
	modeStd
)

// statisticKernel dispatches mean, variance or standard deviation on the source dtype.
// Fixed-width sources are evaluated in float64; decimals stay decimal.
func statisticKernel(mode statisticMode) func(j job) {
	return func(j job) {
		switch j.src.DType() {
		case tensor.Int8:
			statistic[int8](j, mode)
		case tensor.Uint8:
			statistic[uint8](j, mode)
		case tensor.Int16:
			statistic[int16](j, mode)
		case tensor.Uint16:
			statistic[uint16](j, mode)
		case tensor.Char16:
			statistic[tensor.Char](j, mode)
		case tensor.Int32:
			statistic[int32](j, mode)
		case tensor.Uint32:
			statistic[uint32](j, mode)
		case tensor.Int64:
			statistic[int64](j, mode)
		case tensor.Uint64:
			statistic[uint64](j, mode)
		case tensor.Float32:
			statistic[float32](j, mode)
		case tensor.Float64:
			statistic[float64](j, mode)
		case tensor.Decimal:
			decimalStatistic(j, mode)
		default:
			panic(fmt.Sprintf("statistic: unsupported dtype %s", j.src.DType()))
		}
	}
}

func statistic[S tensor.Number](j job, mode statisticMode) {
	store := tensor.Setter[float64](j.dst)
	switch mode {
	case modeMean:
		run(j, foldFunc[S, float64](meanFold[S]), store)
	case modeVar:
		run(j, varianceFold[S](j.ddof), store)
	case modeStd:
		variance := varianceFold[S](j.ddof)
		run(j, foldFunc[S, float64](func(values iter.Seq[S], n int) float64 {
			return math.Sqrt(variance(values, n))
		}), store)
	}
}

func meanFold[S tensor.Number](values iter.Seq[S], n int) float64 {
	var sum float64
	for v := range values {
		sum += float64(v)
	}
	return sum / float64(n)
}

// varianceFold returns a two-pass variance: the mean first, then the squared
// deviations, divided by n - ddof.
func varianceFold[S tensor.Number](ddof int) foldFunc[S, float64] {
	return func(values iter.Seq[S], n int) float64 {
		if n == 1 {
			return 0
		}
		mean := meanFold(values, n)
		var sq float64
		for v := range values {
			d := float64(v) - mean
			sq += d * d
		}
		return sq / float64(n-ddof)
	}
}

func decimalStatistic(j job, mode statisticMode) {
	store := tensor.DecimalSetter(j.dst)
	switch mode {
	case modeMean:
		run(j, foldFunc[decimal.Decimal, decimal.Decimal](decimalMean), store)
	case modeVar:
		run(j, decimalVarianceFold(j.ddof), store)
	case modeStd:
		variance := decimalVarianceFold(j.ddof)
		run(j, foldFunc[decimal.Decimal, decimal.Decimal](func(values iter.Seq[decimal.Decimal], n int) decimal.Decimal {
			return decimal.NewFromFloat(math.Sqrt(variance(values, n).InexactFloat64()))
		}), store)
	}
}

func decimalMean(values iter.Seq[decimal.Decimal], n int) decimal.Decimal {
	sum := decimal.Zero
	for v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(n)))
}

func decimalVarianceFold(ddof int) foldFunc[decimal.Decimal, decimal.Decimal] {
	return func(values iter.Seq[decimal.Decimal], n int) decimal.Decimal {
		if n == 1 {
			return decimal.Zero
		}
		mean := decimalMean(values, n)
		sq := decimal.Zero
		for v := range values {
			d := v.Sub(mean)
			sq = sq.Add(d.Mul(d))
		}
		return sq.Div(decimal.NewFromInt(int64(n - ddof)))
	}
}
