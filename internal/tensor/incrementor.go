package tensor

// CoordinatesIncrementor enumerates the coordinate tuples of a shape in
// row-major order (last axis fastest).
//
// Example:
//
//	inc := tensor.NewCoordinatesIncrementor(tensor.Shape{2, 2})
//	for c := inc.Index(); c != nil; c = inc.Next() {
//	    // [0 0], [0 1], [1 0], [1 1]
//	}
type CoordinatesIncrementor struct {
	dims      Shape
	index     []int
	remaining int // tuples left including the current one
}

// NewCoordinatesIncrementor starts at the first tuple of shape.
func NewCoordinatesIncrementor(shape Shape) *CoordinatesIncrementor {
	return NewCoordinatesIncrementorAt(shape, 0)
}

// NewCoordinatesIncrementorAt starts at the tuple with the given flat row-major index.
// A start at or past the end yields an exhausted incrementor.
func NewCoordinatesIncrementorAt(shape Shape, start int) *CoordinatesIncrementor {
	n := shape.NumElements()
	if start < 0 {
		start = 0
	}
	inc := &CoordinatesIncrementor{
		dims:      shape.Clone(),
		index:     make([]int, len(shape)),
		remaining: max(n-start, 0),
	}
	if inc.remaining > 0 {
		rem := start
		for d := len(shape) - 1; d >= 0; d-- {
			inc.index[d] = rem % shape[d]
			rem /= shape[d]
		}
	}
	return inc
}

// Index returns the current tuple, or nil once exhausted.
// The returned slice is reused by Next.
func (c *CoordinatesIncrementor) Index() []int {
	if c.remaining <= 0 {
		return nil
	}
	return c.index
}

// Next advances to the following tuple and returns it, or nil at the end.
func (c *CoordinatesIncrementor) Next() []int {
	if c.remaining <= 0 {
		return nil
	}
	c.remaining--
	if c.remaining == 0 {
		return nil
	}
	for d := len(c.dims) - 1; d >= 0; d-- {
		c.index[d]++
		if c.index[d] < c.dims[d] {
			break
		}
		c.index[d] = 0
	}
	return c.index
}

// Remaining returns the number of tuples left, counting the current one.
func (c *CoordinatesIncrementor) Remaining() int {
	return max(c.remaining, 0)
}

// AxisIncrementor enumerates every coordinate tuple over all axes except one.
// The tuples it exposes are full-rank with the reduced axis pinned to 0, so
// they can be handed to RawTensor.Lane directly.
type AxisIncrementor struct {
	axis   int
	inner  *CoordinatesIncrementor
	coords []int
}

// NewAxisIncrementor walks shape minus axis starting at the flat index start
// of the reduced shape.
func NewAxisIncrementor(shape Shape, axis, start int) *AxisIncrementor {
	a := &AxisIncrementor{
		axis:   axis,
		inner:  NewCoordinatesIncrementorAt(shape.RemoveAxis(axis), start),
		coords: make([]int, len(shape)),
	}
	a.sync()
	return a
}

// Axis returns the reduced axis.
func (a *AxisIncrementor) Axis() int {
	return a.axis
}

// Index returns the current full-rank tuple, or nil once exhausted.
func (a *AxisIncrementor) Index() []int {
	if a.inner.Index() == nil {
		return nil
	}
	return a.coords
}

// Next advances and returns the next full-rank tuple, or nil at the end.
func (a *AxisIncrementor) Next() []int {
	if a.inner.Next() == nil {
		return nil
	}
	a.sync()
	return a.coords
}

func (a *AxisIncrementor) sync() {
	idx := a.inner.Index()
	if idx == nil {
		return
	}
	j := 0
	for i := range a.coords {
		if i == a.axis {
			a.coords[i] = 0
			continue
		}
		a.coords[i] = idx[j]
		j++
	}
}
