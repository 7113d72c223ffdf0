// Package tensor provides the public API for the tensor types consumed
// by the operator engine.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{-2, 0, 3}, tensor.Shape{3}, tensor.CPU)
package tensor

import (
	"github.com/codinganother/HLUs/internal/tensor"
)

// DType is a constraint for supported tensor element types.
type DType = tensor.DType

// DataType represents runtime type information for tensors.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// An empty Shape is the unknown placeholder used before shape inference.
type Shape = tensor.Shape

// RawTensor is the shape-tagged blob operators read and write through.
type RawTensor = tensor.RawTensor

// NewRaw creates a new zero-initialized RawTensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a RawTensor holding a copy of data.
func FromSlice[T DType](data []T, shape Shape, device Device) (*RawTensor, error) {
	return tensor.FromSlice(data, shape, device)
}
