// Package webgpu provides the public API for the WebGPU compute backend.
package webgpu

import (
	"github.com/codinganother/HLUs/internal/backend/webgpu"
)

// Backend implements activation kernels on GPU via WebGPU.
type Backend = webgpu.Backend

// New creates a new WebGPU backend.
// Returns an error if WebGPU is not available.
func New() (*Backend, error) {
	return webgpu.New()
}
