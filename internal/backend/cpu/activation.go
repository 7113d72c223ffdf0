package cpu

import (
	"fmt"

	"github.com/codinganother/HLUs/internal/op"
	"github.com/codinganother/HLUs/internal/op/activation"
	"github.com/codinganother/HLUs/internal/tensor"
)

// Compile-time check that the CPU backend provides activation kernels.
var _ activation.Backend = (*CPUBackend)(nil)

// ActivationForward computes out = f(in) element-wise under req.
// in and out may alias the same storage.
func (cpu *CPUBackend) ActivationForward(k activation.Kind, in, out *tensor.RawTensor, req op.ReqType) error {
	if req == op.NullOp {
		return nil
	}
	if in.DType() != out.DType() {
		panic(fmt.Sprintf("activation: dtype mismatch: input %s, output %s", in.DType(), out.DType()))
	}

	switch in.DType() {
	case tensor.Float32:
		forwardFloat32(k, in.AsFloat32(), out.AsFloat32(), req)
	case tensor.Float64:
		forwardFloat64(k, in.AsFloat64(), out.AsFloat64(), req)
	default:
		panic(fmt.Sprintf("activation: unsupported dtype %s", in.DType()))
	}
	return nil
}

// ActivationBackward computes inGrad = f'(outData) * outGrad element-wise
// under req. The gradient is expressed in terms of the forward output.
// inGrad may alias outGrad's storage.
func (cpu *CPUBackend) ActivationBackward(k activation.Kind, outGrad, outData, inGrad *tensor.RawTensor, req op.ReqType) error {
	if req == op.NullOp {
		return nil
	}
	if outGrad.DType() != outData.DType() || outGrad.DType() != inGrad.DType() {
		panic(fmt.Sprintf("activation: dtype mismatch: out-grad %s, out-data %s, in-grad %s",
			outGrad.DType(), outData.DType(), inGrad.DType()))
	}

	switch outGrad.DType() {
	case tensor.Float32:
		backwardFloat32(k, outGrad.AsFloat32(), outData.AsFloat32(), inGrad.AsFloat32(), req)
	case tensor.Float64:
		backwardFloat64(k, outGrad.AsFloat64(), outData.AsFloat64(), inGrad.AsFloat64(), req)
	default:
		panic(fmt.Sprintf("activation: unsupported dtype %s", outGrad.DType()))
	}
	return nil
}
