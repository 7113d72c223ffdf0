// Package cpu implements the pure-Go CPU compute backend for the
// activation kernels.
package cpu

import (
	"github.com/codinganother/HLUs/internal/tensor"
)

// CPUBackend implements activation kernels on the CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}
