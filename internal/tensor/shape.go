package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
// An empty Shape is the unknown placeholder used before shape inference
// has run; a scheduler seeing it must defer allocation.
type Shape []int

// Known reports whether the shape has been resolved.
// A rank-0 shape is the "not yet inferred" placeholder.
func (s Shape) Known() bool {
	return len(s) > 0
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (known, all dimensions > 0).
func (s Shape) Validate() error {
	if !s.Known() {
		return fmt.Errorf("shape is unknown")
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// FlatTo2D collapses the shape into a (rows, cols) pair, keeping the
// innermost dimension as cols. Element-wise kernels iterate this 2D view
// regardless of the tensor's true rank. A 1D shape flattens to (1, n).
func (s Shape) FlatTo2D() (rows, cols int) {
	if len(s) == 0 {
		return 0, 0
	}
	cols = s[len(s)-1]
	rows = 1
	for _, dim := range s[:len(s)-1] {
		rows *= dim
	}
	return rows, cols
}
