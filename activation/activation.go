// Package activation provides the public API for the element-wise
// activation operator.
//
// Example:
//
//	prop := activation.NewProp(op.Capability{})
//	err := prop.Init(map[string]string{"act_type": "sigmoid"})
package activation

import (
	"github.com/codinganother/HLUs/internal/op"
	"github.com/codinganother/HLUs/internal/op/activation"
)

// Kind selects which activation function pair a kernel applies.
type Kind = activation.Kind

// Supported activation kinds.
const (
	ReLU     Kind = activation.ReLU
	Sigmoid  Kind = activation.Sigmoid
	Tanh     Kind = activation.Tanh
	SoftReLU Kind = activation.SoftReLU
	HLU      Kind = activation.HLU
)

// OperatorName is the registry identifier for this operator.
const OperatorName = activation.OperatorName

// ErrUnknownKind is returned for an unrecognized act_type value.
var ErrUnknownKind = activation.ErrUnknownKind

// ParseKind resolves an act_type string to a Kind.
func ParseKind(s string) (Kind, error) {
	return activation.ParseKind(s)
}

// Prop is the activation operator descriptor.
type Prop = activation.Prop

// NewProp creates an unconfigured descriptor with the given device
// capability.
func NewProp(caps op.Capability) *Prop {
	return activation.NewProp(caps)
}

// Backend is the capability interface a compute provider implements to
// run activation kernels.
type Backend = activation.Backend
