package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndreduce/internal/tensor"
)

// pairedCursor advances the source axis incrementor and the output
// incrementor together, so the lane being folded and the cell being
// written can never drift apart.
type pairedCursor struct {
	src   *tensor.RawTensor
	dst   *tensor.RawTensor
	lanes *tensor.AxisIncrementor
	cells *tensor.CoordinatesIncrementor
	steps int // steps left in this cursor's range, including the current one
}

// newPairedCursor positions a cursor on output cell start and limits it to count cells.
// dst must have the source shape with axis removed.
func newPairedCursor(src *tensor.RawTensor, axis int, dst *tensor.RawTensor, start, count int) *pairedCursor {
	if want := src.Shape().RemoveAxis(axis); !want.Equal(dst.Shape()) {
		panic(errors.Wrapf(tensor.ErrInternalInvariant, "output shape %v, want %v", dst.Shape(), want))
	}

	c := &pairedCursor{
		src:   src,
		dst:   dst,
		lanes: tensor.NewAxisIncrementor(src.Shape(), axis, start),
		cells: tensor.NewCoordinatesIncrementorAt(dst.Shape(), start),
		steps: count,
	}
	if c.steps > 0 && (c.lanes.Index() == nil || c.cells.Index() == nil) {
		panic(errors.Wrapf(tensor.ErrInternalInvariant, "cursor range [%d, %d) past the end", start, start+count))
	}
	return c
}

// Valid reports whether the cursor points at a lane/cell pair.
func (c *pairedCursor) Valid() bool {
	return c.steps > 0
}

// Lane returns the source lane at the current position.
func (c *pairedCursor) Lane() tensor.Lane {
	return c.src.Lane(c.lanes.Axis(), c.lanes.Index())
}

// Dst returns the buffer offset of the current output cell.
func (c *pairedCursor) Dst() int {
	return c.dst.OffsetOf(c.cells.Index())
}

// Next advances both incrementors and reports whether a pair remains.
// Panics with ErrInternalInvariant if the incrementors finish at different times.
func (c *pairedCursor) Next() bool {
	if c.steps <= 0 {
		return false
	}
	c.steps--
	lane, cell := c.lanes.Next(), c.cells.Next()
	if (lane == nil) != (cell == nil) {
		panic(errors.Wrap(tensor.ErrInternalInvariant, "axis and output incrementors out of step"))
	}
	if c.steps == 0 {
		return false
	}
	if lane == nil {
		panic(errors.Wrapf(tensor.ErrInternalInvariant, "incrementors exhausted with %d steps left", c.steps))
	}
	return true
}
