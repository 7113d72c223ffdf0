// Package op defines the operator framework: the kernel and descriptor
// interfaces a graph scheduler drives, write-mode semantics for output
// blobs, one-shot completion notifications, and the operator registry.
//
// The scheduler, memory allocator, and device primitives are external
// collaborators; this package only fixes the contracts they consume.
package op

import (
	"github.com/codinganother/HLUs/internal/stream"
	"github.com/codinganother/HLUs/internal/tensor"
)

// ReqType describes how a kernel writes a result into a destination blob.
// The execution planner picks the mode; kernels must honor it.
type ReqType int

const (
	// NullOp skips the write entirely.
	NullOp ReqType = iota
	// WriteTo overwrites the destination.
	WriteTo
	// AddTo accumulates into the destination.
	AddTo
)

// String returns a human-readable write-mode name.
func (r ReqType) String() string {
	switch r {
	case NullOp:
		return "null"
	case WriteTo:
		return "write"
	case AddTo:
		return "add"
	default:
		return "unknown"
	}
}

// ExecType advertises an operator's completion discipline.
type ExecType int

const (
	// SyncExec operators have completed when Forward/Backward returns.
	SyncExec ExecType = iota
	// AsyncExec operators enqueue work on the run context's stream; the
	// caller must wait on the returned Completion before touching buffers.
	AsyncExec
)

// Context carries per-invocation execution state.
// A nil Stream makes the invocation synchronous.
type Context struct {
	Stream *stream.Stream
}

// Backend is the minimal surface a device compute provider exposes.
// Operators type-assert it to the capability interfaces they need.
type Backend interface {
	Name() string
	Device() tensor.Device
}

// DeviceContext binds an operator instance to a device at plan time.
type DeviceContext struct {
	Device  tensor.Device
	Backend Backend
}

// Capability describes what the device's numeric library supports.
// It is resolved once, when a descriptor is constructed.
type Capability struct {
	// BackwardNeedsInput retains the forward input for the backward pass,
	// for libraries whose gradient formula reads the input directly
	// instead of the forward output.
	BackwardNeedsInput bool
}

// InplacePair is an advisory hint that the Out slot may alias the In
// slot's storage. The scheduler decides whether to exploit it; kernels
// must be correct either way.
type InplacePair struct {
	In  int
	Out int
}

// Operator is a device-bound kernel. Instances are stateless beyond their
// construction parameters and may be reused across calls; they never
// retain tensor storage.
//
// Cardinality or shape violations in either pass are caller bugs and
// panic immediately.
type Operator interface {
	// Forward computes outData = f(inData) under req. The returned
	// Completion fires exactly once, after all enqueued work retires.
	Forward(ctx Context, inData []*tensor.RawTensor, req []ReqType, outData, aux []*tensor.RawTensor) *Completion

	// Backward computes inGrad = f'(outData) * outGrad under req, with the
	// same completion contract as Forward.
	Backward(ctx Context, outGrad, inData, outData []*tensor.RawTensor, req []ReqType, inGrad, aux []*tensor.RawTensor) *Completion

	// ExecType reports the operator's completion discipline.
	ExecType() ExecType
}

// Property is the declarative descriptor the scheduler plans against:
// shape inference, backward data dependencies, and in-place reuse hints,
// plus the factory for device-bound kernels.
//
// A Property starts unconfigured; every method except Init panics until
// Init has succeeded.
type Property interface {
	// Init parses and validates the operator configuration.
	Init(kwargs map[string]string) error

	// InferShape derives output and auxiliary shapes from input shapes.
	// ok is false when inference must be deferred because an input shape
	// is still the unknown placeholder.
	InferShape(inShapes []tensor.Shape) (outShapes, auxShapes []tensor.Shape, ok bool)

	// DeclareBackwardDependency returns the subset of the given tensor
	// slot ids the backward pass reads. The result is stable across calls
	// so the scheduler can free everything else early.
	DeclareBackwardDependency(outGrad, inData, outData []int) []int

	// ForwardInplaceOption lists forward slots that may alias.
	ForwardInplaceOption(inData, outData []int) []InplacePair

	// BackwardInplaceOption lists backward slots that may alias.
	BackwardInplaceOption(outGrad, inData, outData, inGrad []int) []InplacePair

	// CreateOperator builds a kernel bound to the given device.
	CreateOperator(dev DeviceContext) (Operator, error)

	// Copy produces an independent descriptor with identical configuration.
	Copy() Property

	// TypeString returns the stable operator name used for registry
	// lookup and diagnostics.
	TypeString() string
}
