package tensor

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// tensorBuffer is a reference-counted shared buffer.
// Views (Clone, Reshape, Squeeze, Transpose, ...) share one buffer and only
// differ in shape, strides and offset.
type tensorBuffer struct {
	data     []byte            // Fixed-width element storage
	decimals []decimal.Decimal // Decimal element storage
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newTensorBuffer creates a new reference-counted buffer with refCount = 1.
func newTensorBuffer(numElements int, dtype DataType) *tensorBuffer {
	buf := &tensorBuffer{}
	if dtype == Decimal {
		buf.decimals = make([]decimal.Decimal, numElements)
	} else {
		buf.data = make([]byte, numElements*dtype.Size())
	}
	buf.refCount.Store(1)
	return buf
}

func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) == 0 {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		tb.data = nil
		tb.decimals = nil
	}
}

func (tb *tensorBuffer) isUnique() bool {
	return tb.refCount.Load() == 1
}

// RawTensor is a strided view over a shared, reference-counted buffer.
// Strides and offset are counted in elements, not bytes.
type RawTensor struct {
	buffer *tensorBuffer // Shared reference-counted buffer
	shape  Shape         // Tensor dimensions
	stride []int         // Element strides per dimension
	dtype  DataType      // Runtime type information
	offset int           // Element offset of the first logical element
}

// NewRaw creates a new contiguous RawTensor with the given shape and type.
// Memory is zero-initialized. Zero-sized dimensions are allowed.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedType, int(dtype))
	}

	return &RawTensor{
		buffer: newTensorBuffer(shape.NumElements(), dtype),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's element strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NDim returns the number of dimensions.
func (r *RawTensor) NDim() int {
	return len(r.shape)
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Offset returns the element offset of the first logical element in the buffer.
func (r *RawTensor) Offset() int {
	return r.offset
}

// String returns a short description of the tensor.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor[%s]%v", r.dtype, r.shape)
}

// SharesBuffer reports whether r and other are views over the same storage.
func (r *RawTensor) SharesBuffer(other *RawTensor) bool {
	return other != nil && r.buffer == other.buffer
}

// IsContiguous reports whether the logical elements are laid out row-major without gaps.
func (r *RawTensor) IsContiguous() bool {
	if r.shape.IsEmpty() {
		return true
	}
	expected := 1
	for i := len(r.shape) - 1; i >= 0; i-- {
		if r.shape[i] != 1 && r.stride[i] != expected {
			return false
		}
		expected *= r.shape[i]
	}
	return true
}

// Clone creates a shallow copy of the RawTensor sharing the same buffer.
func (r *RawTensor) Clone() *RawTensor {
	return r.view(r.shape.Clone(), slices.Clone(r.stride), r.offset)
}

// Copy creates a deep, contiguous copy of the tensor.
func (r *RawTensor) Copy() *RawTensor {
	out, err := NewRaw(r.shape, r.dtype)
	if err != nil {
		panic(err) // shape and dtype were validated when r was built
	}
	if err := CastInto(out, r); err != nil {
		panic(err)
	}
	return out
}

// Release decrements the reference count and deallocates if it reaches 0.
func (r *RawTensor) Release() {
	r.buffer.release()
}

// IsUnique returns true if this tensor is the only reference to the buffer.
func (r *RawTensor) IsUnique() bool {
	return r.buffer.isUnique()
}

func (r *RawTensor) view(shape Shape, stride []int, offset int) *RawTensor {
	r.buffer.addRef()
	return &RawTensor{
		buffer: r.buffer,
		shape:  shape,
		stride: stride,
		dtype:  r.dtype,
		offset: offset,
	}
}

// OffsetOf returns the buffer offset of a full-rank coordinate tuple.
func (r *RawTensor) OffsetOf(coords []int) int {
	off := r.offset
	for i, c := range coords {
		off += c * r.stride[i]
	}
	return off
}

func (r *RawTensor) checkCoords(coords []int) {
	if len(coords) != len(r.shape) {
		panic(fmt.Sprintf("expected %d coordinates, got %d", len(r.shape), len(coords)))
	}
	for i, c := range coords {
		if c < 0 || c >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", c, i, r.shape[i]))
		}
	}
}

// Reshape returns a view with a new shape and the same element count.
// Non-contiguous tensors are copied first.
func (r *RawTensor) Reshape(newShape Shape) (*RawTensor, error) {
	if err := newShape.Validate(); err != nil {
		return nil, err
	}
	if newShape.NumElements() != r.NumElements() {
		return nil, fmt.Errorf("%w: cannot reshape %v (%d elements) to %v", ErrInvalidShape,
			r.shape, r.NumElements(), newShape)
	}
	if !r.IsContiguous() {
		src := r.Copy()
		defer src.Release()
		return src.view(newShape.Clone(), newShape.ComputeStrides(), src.offset), nil
	}
	return r.view(newShape.Clone(), newShape.ComputeStrides(), r.offset), nil
}

// ExpandDims inserts a size-1 dimension at axis without moving data.
// Negative axes count from the end of the resulting shape.
func (r *RawTensor) ExpandDims(axis int) (*RawTensor, error) {
	ndim := len(r.shape)
	if axis < 0 {
		axis += ndim + 1
	}
	if axis < 0 || axis > ndim {
		return nil, fmt.Errorf("%w: expand axis %d for %dD tensor", ErrIndexOutOfRange, axis, ndim)
	}

	stride := 1
	if axis < ndim {
		stride = r.stride[axis] * r.shape[axis]
	}
	newStride := make([]int, 0, ndim+1)
	newStride = append(newStride, r.stride[:axis]...)
	newStride = append(newStride, stride)
	newStride = append(newStride, r.stride[axis:]...)

	return r.view(r.shape.InsertAxis(axis), newStride, r.offset), nil
}

// Squeeze removes a size-1 dimension at axis without moving data.
func (r *RawTensor) Squeeze(axis int) (*RawTensor, error) {
	axis, err := r.shape.NormalizeAxis(axis)
	if err != nil {
		return nil, err
	}
	if r.shape[axis] != 1 {
		return nil, fmt.Errorf("%w: squeeze axis %d has size %d", ErrInvalidShape, axis, r.shape[axis])
	}

	newStride := make([]int, 0, len(r.stride)-1)
	for i, s := range r.stride {
		if i != axis {
			newStride = append(newStride, s)
		}
	}
	return r.view(r.shape.RemoveAxis(axis), newStride, r.offset), nil
}

// Transpose permutes the dimensions without moving data.
// With no axes the dimension order is reversed.
func (r *RawTensor) Transpose(axes ...int) (*RawTensor, error) {
	ndim := len(r.shape)
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		return nil, fmt.Errorf("%w: transpose needs %d axes, got %d", ErrInvalidShape, ndim, len(axes))
	}

	seen := make([]bool, ndim)
	shape := make(Shape, ndim)
	stride := make([]int, ndim)
	for i, a := range axes {
		if a < 0 || a >= ndim || seen[a] {
			return nil, fmt.Errorf("%w: invalid permutation %v", ErrIndexOutOfRange, axes)
		}
		seen[a] = true
		shape[i] = r.shape[a]
		stride[i] = r.stride[a]
	}
	return r.view(shape, stride, r.offset), nil
}

// Narrow restricts axis to [start, start+length) without moving data.
func (r *RawTensor) Narrow(axis, start, length int) (*RawTensor, error) {
	axis, err := r.shape.NormalizeAxis(axis)
	if err != nil {
		return nil, err
	}
	if start < 0 || length < 0 || start+length > r.shape[axis] {
		return nil, fmt.Errorf("%w: narrow [%d, %d) of axis %d (size %d)", ErrIndexOutOfRange,
			start, start+length, axis, r.shape[axis])
	}

	shape := r.shape.Clone()
	shape[axis] = length
	return r.view(shape, slices.Clone(r.stride), r.offset+start*r.stride[axis]), nil
}

// Lane describes a 1-D run of elements in a buffer: Len elements starting
// at Offset, Stride elements apart.
type Lane struct {
	Offset int
	Stride int
	Len    int
}

// Lane returns the slice covering the full extent of axis at coords.
// The coordinate at position axis is ignored.
func (r *RawTensor) Lane(axis int, coords []int) Lane {
	off := r.offset
	for i, c := range coords {
		if i != axis {
			off += c * r.stride[i]
		}
	}
	return Lane{Offset: off, Stride: r.stride[axis], Len: r.shape[axis]}
}

// AxisView returns the Lane at coords as a 1-D view.
func (r *RawTensor) AxisView(axis int, coords []int) *RawTensor {
	lane := r.Lane(axis, coords)
	return r.view(Shape{lane.Len}, []int{lane.Stride}, lane.Offset)
}
