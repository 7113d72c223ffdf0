// Package cpu provides the public API for the CPU compute backend.
package cpu

import (
	"github.com/codinganother/HLUs/internal/backend/cpu"
)

// CPUBackend implements activation kernels on the CPU.
type CPUBackend = cpu.CPUBackend

// New creates a new CPU backend.
func New() *CPUBackend {
	return cpu.New()
}
