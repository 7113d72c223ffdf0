// Package op provides the public API for the operator framework: the
// kernel and descriptor interfaces a graph scheduler drives, write-mode
// semantics, one-shot completions, and the operator registry.
//
// Example:
//
//	prop, err := op.NewProperty("Activation", map[string]string{"act_type": "relu"})
//	kernel, err := prop.CreateOperator(op.DeviceContext{Device: tensor.CPU, Backend: cpu.New()})
package op

import (
	"github.com/codinganother/HLUs/internal/op"

	// Register the activation operator with the registry.
	_ "github.com/codinganother/HLUs/internal/op/activation"
)

// ReqType describes how a kernel writes a result into a destination blob.
type ReqType = op.ReqType

// Write-mode constants.
const (
	NullOp  ReqType = op.NullOp
	WriteTo ReqType = op.WriteTo
	AddTo   ReqType = op.AddTo
)

// ExecType advertises an operator's completion discipline.
type ExecType = op.ExecType

// Execution-type constants.
const (
	SyncExec  ExecType = op.SyncExec
	AsyncExec ExecType = op.AsyncExec
)

// Context carries per-invocation execution state.
type Context = op.Context

// DeviceContext binds an operator instance to a device at plan time.
type DeviceContext = op.DeviceContext

// Backend is the minimal surface a device compute provider exposes.
type Backend = op.Backend

// Capability describes what the device's numeric library supports.
type Capability = op.Capability

// InplacePair is an advisory hint that two slots may share storage.
type InplacePair = op.InplacePair

// Operator is a device-bound kernel.
type Operator = op.Operator

// Property is the declarative operator descriptor.
type Property = op.Property

// Completion is the one-shot notification an asynchronous call returns.
type Completion = op.Completion

// ErrUnknownOperator is returned when no factory is registered for a name.
var ErrUnknownOperator = op.ErrUnknownOperator

// Register routes an operator name to a descriptor factory.
func Register(name string, factory func() Property) {
	op.Register(name, factory)
}

// NewProperty creates and configures a descriptor for the named operator.
func NewProperty(name string, kwargs map[string]string) (Property, error) {
	return op.NewProperty(name, kwargs)
}

// Registered reports whether an operator name has a factory.
func Registered(name string) bool {
	return op.Registered(name)
}

// Assign32 writes src into dst under req.
func Assign32(dst, src []float32, req ReqType) {
	op.Assign32(dst, src, req)
}

// Assign64 is Assign32 for float64 data.
func Assign64(dst, src []float64, req ReqType) {
	op.Assign64(dst, src, req)
}
