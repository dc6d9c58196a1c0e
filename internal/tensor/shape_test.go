package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Shape{}, 1},
		{"vector", Shape{5}, 5},
		{"matrix", Shape{3, 4}, 12},
		{"3d", Shape{2, 3, 4}, 24},
		{"empty", Shape{3, 0, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.NumElements())
		})
	}
}

func TestShapeIsEmpty(t *testing.T) {
	assert.False(t, Shape{}.IsEmpty(), "a scalar holds one element")
	assert.False(t, Shape{1, 1}.IsEmpty())
	assert.True(t, Shape{0}.IsEmpty())
	assert.True(t, Shape{4, 0}.IsEmpty())
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 0, 3}.Validate())
	require.ErrorIs(t, Shape{2, -1}.Validate(), ErrInvalidShape)
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{7}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestShapeNormalizeAxis(t *testing.T) {
	shape := Shape{2, 3, 4}

	tests := []struct {
		axis int
		want int
	}{
		{0, 0},
		{2, 2},
		{-1, 2},
		{-3, 0},
		{-4, 2},
	}
	for _, tt := range tests {
		got, err := shape.NormalizeAxis(tt.axis)
		require.NoError(t, err, "axis %d", tt.axis)
		assert.Equal(t, tt.want, got, "axis %d", tt.axis)
	}

	_, err := shape.NormalizeAxis(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Shape{}.NormalizeAxis(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestShapeAxisEditing(t *testing.T) {
	shape := Shape{2, 3, 4}

	assert.Equal(t, Shape{2, 4}, shape.RemoveAxis(1))
	assert.Equal(t, Shape{2, 1, 4}, shape.SetAxisToOne(1))
	assert.Equal(t, Shape{2, 3, 1, 4}, shape.InsertAxis(2))
	assert.Equal(t, Shape{2, 3, 4}, shape, "editing returns new shapes")

	assert.Equal(t, Shape{1, 1, 1}, Ones(3))
	assert.Equal(t, Shape{}, Ones(0))
}
