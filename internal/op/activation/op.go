package activation

import (
	"fmt"

	"github.com/codinganother/HLUs/internal/op"
	"github.com/codinganother/HLUs/internal/tensor"
)

// Backend is the capability interface a compute provider must implement
// to run activation kernels. Both transforms operate over the flattened
// 2D view of their operands and must honor the write mode; they must be
// correct when source and destination alias the same storage.
type Backend interface {
	// ActivationForward computes out = f(in) under req.
	ActivationForward(k Kind, in, out *tensor.RawTensor, req op.ReqType) error

	// ActivationBackward computes inGrad = f'(outData) * outGrad under
	// req. The gradient is expressed in terms of the forward output, so
	// the original input is never needed here.
	ActivationBackward(k Kind, outGrad, outData, inGrad *tensor.RawTensor, req op.ReqType) error
}

// activationOp is the device-bound kernel. It holds no tensor data and
// may be reused across forward/backward calls.
type activationOp struct {
	kind Kind
	be   Backend
}

var _ op.Operator = (*activationOp)(nil)

// Forward computes outData[0] = f(inData[0]) under req[0].
func (o *activationOp) Forward(ctx op.Context, inData []*tensor.RawTensor, req []op.ReqType, outData, aux []*tensor.RawTensor) *op.Completion {
	if len(inData) != 1 || len(outData) != 1 {
		panic(fmt.Sprintf("activation: forward expects 1 input and 1 output, got %d and %d", len(inData), len(outData)))
	}
	if len(req) != 1 {
		panic(fmt.Sprintf("activation: forward expects 1 req entry, got %d", len(req)))
	}
	if !inData[0].Shape().Equal(outData[0].Shape()) {
		panic(fmt.Sprintf("activation: shape mismatch: input %v, output %v", inData[0].Shape(), outData[0].Shape()))
	}

	in, out, r := inData[0], outData[0], req[0]
	c := op.NewCompletion()
	o.launch(ctx, c, func() {
		c.Fire(o.be.ActivationForward(o.kind, in, out, r))
	})
	return c
}

// Backward computes inGrad[0] = f'(outData[0]) * outGrad[0] under req[0].
func (o *activationOp) Backward(ctx op.Context, outGrad, inData, outData []*tensor.RawTensor, req []op.ReqType, inGrad, aux []*tensor.RawTensor) *op.Completion {
	if len(outGrad) != 1 || len(outData) != 1 || len(inGrad) != 1 {
		panic(fmt.Sprintf("activation: backward expects 1 out-grad, 1 out-data and 1 in-grad, got %d, %d and %d", len(outGrad), len(outData), len(inGrad)))
	}
	if len(req) != 1 {
		panic(fmt.Sprintf("activation: backward expects 1 req entry, got %d", len(req)))
	}
	if !outGrad[0].Shape().Equal(outData[0].Shape()) || !outGrad[0].Shape().Equal(inGrad[0].Shape()) {
		panic(fmt.Sprintf("activation: shape mismatch: out-grad %v, out-data %v, in-grad %v",
			outGrad[0].Shape(), outData[0].Shape(), inGrad[0].Shape()))
	}

	ograd, odata, igrad, r := outGrad[0], outData[0], inGrad[0], req[0]
	c := op.NewCompletion()
	o.launch(ctx, c, func() {
		c.Fire(o.be.ActivationBackward(o.kind, ograd, odata, igrad, r))
	})
	return c
}

// launch runs fn on the context's stream, or synchronously without one.
// If the stream faults before fn retires, the completion fires with the
// device fault instead of hanging.
func (o *activationOp) launch(ctx op.Context, c *op.Completion, fn func()) {
	if ctx.Stream == nil {
		fn()
		return
	}
	if err := ctx.Stream.Submit(fn); err != nil {
		c.Fire(err)
		return
	}
	go func() {
		select {
		case <-c.Done():
		case <-ctx.Stream.Done():
			c.Fire(ctx.Stream.Err())
		}
	}()
}

// ExecType advertises asynchronous completion: callers must wait on the
// returned Completion, not on Forward/Backward returning.
func (o *activationOp) ExecType() op.ExecType {
	return op.AsyncExec
}
