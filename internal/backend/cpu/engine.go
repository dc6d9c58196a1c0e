package cpu

import (
	"iter"

	"github.com/born-ml/ndreduce/internal/parallel"
	"github.com/born-ml/ndreduce/internal/tensor"
)

// fullReduction is the axis value a job carries when every element folds into one cell.
const fullReduction = -1

// job is one reduction of src into dst.
// For an axis reduction dst has the source shape with axis removed;
// for a full reduction dst holds exactly one element.
type job struct {
	src  *tensor.RawTensor
	dst  *tensor.RawTensor
	axis int
	ddof int
	cfg  parallel.Config
}

// foldFunc folds n values into a single result.
type foldFunc[S, A any] func(values iter.Seq[S], n int) A

// run executes fold for every output cell of j and stores each result with store.
//
// Axis reductions walk the non-reduced coordinates in row-major order with a
// paired cursor. When parallelism is enabled the output cells are partitioned
// up front and every worker gets a private cursor over its own range, so each
// cell is written exactly once and the result does not depend on scheduling.
func run[S tensor.Element, A any](j job, fold foldFunc[S, A], store func(off int, v A)) {
	if j.axis == fullReduction {
		runElementwise(j, fold, store)
		return
	}

	data := tensor.Data[S](j.src)
	parallel.ForRange(j.dst.NumElements(), func(r parallel.Range) {
		cur := newPairedCursor(j.src, j.axis, j.dst, r.Start, r.Len())
		for ok := cur.Valid(); ok; ok = cur.Next() {
			lane := cur.Lane()
			store(cur.Dst(), fold(tensor.LaneValues(data, lane), lane.Len))
		}
	}, j.cfg)
}

// runElementwise folds the flattened row-major sequence of j.src into the single cell of j.dst.
func runElementwise[S tensor.Element, A any](j job, fold foldFunc[S, A], store func(off int, v A)) {
	var dst int
	for off := range j.dst.Offsets() {
		dst = off
	}
	store(dst, fold(tensor.Elements[S](j.src), j.src.NumElements()))
}
