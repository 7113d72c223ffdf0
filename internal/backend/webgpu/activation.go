package webgpu

import (
	"fmt"
	"unsafe"

	"github.com/codinganother/HLUs/internal/op"
	"github.com/codinganother/HLUs/internal/op/activation"
	"github.com/codinganother/HLUs/internal/tensor"
)

// Compile-time check that the WebGPU backend provides activation kernels.
var _ activation.Backend = (*Backend)(nil)

// ActivationForward computes out = f(in) on GPU under req.
// Only float32 tensors are supported on this device.
func (b *Backend) ActivationForward(k activation.Kind, in, out *tensor.RawTensor, req op.ReqType) error {
	if req == op.NullOp {
		return nil
	}
	if in.DType() != tensor.Float32 {
		return fmt.Errorf("webgpu: only float32 is supported, got %s", in.DType())
	}

	name, code := forwardShader(k)
	resultData, err := b.runUnary(name, code, in.Data(), in.NumElements())
	if err != nil {
		return err
	}

	// Write-mode semantics are applied host-side on the readback, so
	// accumulate and overwrite behave identically across devices.
	op.Assign32(out.AsFloat32(), asFloat32(resultData, out.NumElements()), req)
	return nil
}

// ActivationBackward computes inGrad = f'(outData) * outGrad on GPU
// under req.
func (b *Backend) ActivationBackward(k activation.Kind, outGrad, outData, inGrad *tensor.RawTensor, req op.ReqType) error {
	if req == op.NullOp {
		return nil
	}
	if outGrad.DType() != tensor.Float32 {
		return fmt.Errorf("webgpu: only float32 is supported, got %s", outGrad.DType())
	}

	name, code := backwardShader(k)
	resultData, err := b.runBinary(name, code, outData.Data(), outGrad.Data(), outGrad.NumElements())
	if err != nil {
		return err
	}

	op.Assign32(inGrad.AsFloat32(), asFloat32(resultData, inGrad.NumElements()), req)
	return nil
}

// asFloat32 reinterprets readback bytes as a float32 slice.
func asFloat32(data []byte, numElements int) []float32 {
	//nolint:gosec // unsafe.Slice for zero-copy reinterpretation of readback bytes
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), numElements)
}
