package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndreduce/internal/tensor"
)

// opClass groups reductions by how they pick a result dtype and how they
// behave on degenerate inputs.
type opClass int

const (
	classExtreme    opClass = iota // Max, Min
	classIndex                     // ArgMax, ArgMin
	classAccumulate                // Sum, Prod
	classStatistic                 // Mean, Var, Std
)

// reduction describes one operator to the shape/output builder.
type reduction struct {
	name   string
	class  opClass
	spread bool // Var and Std: a single value has zero spread and ddof applies
	kernel func(j job)
}

var (
	opMax    = reduction{name: "max", class: classExtreme, kernel: extremeKernel(modeMax)}
	opMin    = reduction{name: "min", class: classExtreme, kernel: extremeKernel(modeMin)}
	opArgMax = reduction{name: "argmax", class: classIndex, kernel: extremeKernel(modeArgMax)}
	opArgMin = reduction{name: "argmin", class: classIndex, kernel: extremeKernel(modeArgMin)}
	opSum    = reduction{name: "sum", class: classAccumulate, kernel: accumulateKernel(modeSum)}
	opProd   = reduction{name: "prod", class: classAccumulate, kernel: accumulateKernel(modeProd)}
	opMean   = reduction{name: "mean", class: classStatistic, kernel: statisticKernel(modeMean)}
	opVar    = reduction{name: "var", class: classStatistic, spread: true, kernel: statisticKernel(modeVar)}
	opStd    = reduction{name: "std", class: classStatistic, spread: true, kernel: statisticKernel(modeStd)}
)

// zeroOnSingle reports whether a single value reduces to 0 regardless of its
// content: the spread statistics and the index operators.
func (op reduction) zeroOnSingle() bool {
	return op.spread || op.class == classIndex
}

// defaultType returns the result dtype used when neither WithDType nor WithOut is given.
func (op reduction) defaultType(src tensor.DataType) tensor.DataType {
	switch op.class {
	case classIndex:
		return tensor.Int64
	case classAccumulate:
		return src.AccumulatingType()
	case classStatistic:
		return src.ComputingType()
	default:
		return src
	}
}

// resultType validates the source dtype and resolves the result dtype.
// An explicit dtype must agree with the output buffer; otherwise the buffer decides.
func (op reduction) resultType(src tensor.DataType, o *tensor.ReduceOptions) (tensor.DataType, error) {
	if !src.IsNumeric() {
		return 0, errors.Wrapf(tensor.ErrUnsupportedType, "%s of %s", op.name, src)
	}

	dtype := op.defaultType(src)
	if o.DType != nil {
		if o.Out != nil && o.Out.DType() != *o.DType {
			return 0, errors.Wrapf(tensor.ErrDTypeMismatch, "%s: dtype %s, out buffer %s", op.name, *o.DType, o.Out.DType())
		}
		dtype = *o.DType
	}
	if o.Out != nil {
		dtype = o.Out.DType()
	}
	if !dtype.IsNumeric() {
		return 0, errors.Wrapf(tensor.ErrUnsupportedType, "%s of %s into %s", op.name, src, dtype)
	}
	return dtype, nil
}

// checkDDOF fails unless n values leave a positive divisor.
func (op reduction) checkDDOF(n, ddof int) error {
	if op.spread && n-ddof <= 0 {
		return errors.Wrapf(tensor.ErrInvalidDDOF, "%s: ddof %d for %d values", op.name, ddof, n)
	}
	return nil
}

func checkOut(out *tensor.RawTensor, want tensor.Shape) error {
	if out != nil && !out.Shape().Equal(want) {
		return errors.Wrapf(tensor.ErrIncorrectShape, "out buffer %v, want %v", out.Shape(), want)
	}
	return nil
}

// allocate returns out when given, otherwise a fresh zeroed tensor.
func allocate(out *tensor.RawTensor, shape tensor.Shape, dtype tensor.DataType) (*tensor.RawTensor, error) {
	if out != nil {
		return out, nil
	}
	return tensor.NewRaw(shape, dtype)
}

// materialize returns values in dtype: written into out when given, the
// values themselves when the dtype already matches, a converted copy otherwise.
// values is released whenever it is not the returned tensor.
func materialize(values, out *tensor.RawTensor, dtype tensor.DataType) (*tensor.RawTensor, error) {
	if out != nil {
		defer values.Release()
		if err := tensor.CastInto(out, values); err != nil {
			return nil, err
		}
		return out, nil
	}
	if values.DType() == dtype {
		return values, nil
	}
	defer values.Release()
	return tensor.Cast(values, dtype)
}

// zeros returns a zero-filled result of shape, clearing out in place when given.
func zeros(out *tensor.RawTensor, shape tensor.Shape, dtype tensor.DataType) (*tensor.RawTensor, error) {
	if out == nil {
		return tensor.Zeros(shape, dtype)
	}
	set := tensor.Setter[int64](out)
	for off := range out.Offsets() {
		set(off, 0)
	}
	return out, nil
}

// reduce is the shape/output builder shared by every reduction.
//
// It validates everything that can fail before the first write, then takes the
// first matching rung:
//  1. empty input
//  2. scalar, single-element 1-D input, or any single-element input without an axis
//  3. full reduction (no axis)
//  4. axis of extent 1
//  5. general axis reduction
func (cpu *CPUBackend) reduce(x *tensor.RawTensor, op reduction, opts []tensor.ReduceOption) (*tensor.RawTensor, error) {
	o := tensor.ResolveReduceOptions(opts...)
	dtype, err := op.resultType(x.DType(), &o)
	if err != nil {
		return nil, err
	}

	shape := x.Shape()
	ndim := shape.NDim()

	if shape.IsEmpty() {
		return cpu.reduceEmpty(x, op, &o, dtype)
	}

	if ndim == 0 || (ndim == 1 && shape[0] == 1) || (o.Axis == nil && shape.NumElements() == 1) {
		if o.Axis != nil {
			if _, err := shape.NormalizeAxis(*o.Axis); err != nil {
				return nil, err
			}
		}
		final := tensor.Shape{}
		if o.KeepDims {
			final = tensor.Ones(ndim)
		}
		if err := checkOut(o.Out, final); err != nil {
			return nil, err
		}
		if op.zeroOnSingle() {
			return zeros(o.Out, final, dtype)
		}
		values, err := x.Reshape(final)
		if err != nil {
			return nil, err
		}
		return materialize(values, o.Out, dtype)
	}

	if o.Axis == nil {
		return cpu.reduceAll(x, op, &o, dtype)
	}

	axis, err := shape.NormalizeAxis(*o.Axis)
	if err != nil {
		return nil, err
	}

	if shape[axis] == 1 {
		final := shape.RemoveAxis(axis)
		if o.KeepDims {
			final = shape.Clone()
		}
		if err := checkOut(o.Out, final); err != nil {
			return nil, err
		}
		if op.zeroOnSingle() {
			return zeros(o.Out, final, dtype)
		}
		if o.KeepDims {
			return materialize(x.Clone(), o.Out, dtype)
		}
		values, err := x.Squeeze(axis)
		if err != nil {
			return nil, err
		}
		return materialize(values, o.Out, dtype)
	}

	return cpu.reduceAxis(x, op, &o, dtype, axis)
}

// reduceEmpty handles inputs with a zero-sized dimension.
// Extremes have nothing to pick and hand the input back; accumulations yield
// their identity; statistics are undefined.
func (cpu *CPUBackend) reduceEmpty(x *tensor.RawTensor, op reduction, o *tensor.ReduceOptions, dtype tensor.DataType) (*tensor.RawTensor, error) {
	switch op.class {
	case classExtreme, classIndex:
		if o.Axis != nil {
			if _, err := x.Shape().NormalizeAxis(*o.Axis); err != nil {
				return nil, err
			}
		}
		if o.Out == nil {
			return x.Clone(), nil
		}
		if err := checkOut(o.Out, x.Shape()); err != nil {
			return nil, err
		}
		return o.Out, nil
	case classStatistic:
		return nil, errors.Wrapf(tensor.ErrEmptyReduction, "%s of shape %v", op.name, x.Shape())
	}

	if o.Axis == nil {
		return cpu.reduceAll(x, op, o, dtype)
	}
	axis, err := x.Shape().NormalizeAxis(*o.Axis)
	if err != nil {
		return nil, err
	}
	return cpu.reduceAxis(x, op, o, dtype, axis)
}

// reduceAll folds every element into a single cell.
func (cpu *CPUBackend) reduceAll(x *tensor.RawTensor, op reduction, o *tensor.ReduceOptions, dtype tensor.DataType) (*tensor.RawTensor, error) {
	final := tensor.Shape{}
	if o.KeepDims {
		final = tensor.Ones(x.NDim())
	}
	if err := checkOut(o.Out, final); err != nil {
		return nil, err
	}
	if err := op.checkDDOF(x.NumElements(), o.DDOF); err != nil {
		return nil, err
	}

	dst, err := allocate(o.Out, final, dtype)
	if err != nil {
		return nil, err
	}
	op.kernel(job{src: x, dst: dst, axis: fullReduction, ddof: o.DDOF, cfg: cpu.parallel})
	return dst, nil
}

// reduceAxis folds every lane along axis into the matching output cell.
func (cpu *CPUBackend) reduceAxis(x *tensor.RawTensor, op reduction, o *tensor.ReduceOptions, dtype tensor.DataType, axis int) (*tensor.RawTensor, error) {
	shape := x.Shape()
	reduced := shape.RemoveAxis(axis)
	final := reduced
	if o.KeepDims {
		final = shape.SetAxisToOne(axis)
	}
	if err := checkOut(o.Out, final); err != nil {
		return nil, err
	}
	if err := op.checkDDOF(shape[axis], o.DDOF); err != nil {
		return nil, err
	}

	if o.Out != nil {
		dst := o.Out
		if o.KeepDims {
			view, err := o.Out.Squeeze(axis)
			if err != nil {
				return nil, err
			}
			defer view.Release()
			dst = view
		}
		op.kernel(job{src: x, dst: dst, axis: axis, ddof: o.DDOF, cfg: cpu.parallel})
		return o.Out, nil
	}

	dst, err := tensor.NewRaw(reduced, dtype)
	if err != nil {
		return nil, err
	}
	op.kernel(job{src: x, dst: dst, axis: axis, ddof: o.DDOF, cfg: cpu.parallel})
	if !o.KeepDims {
		return dst, nil
	}
	defer dst.Release()
	return dst.ExpandDims(axis)
}
