// Package activation implements the element-wise activation operator:
// a device-parameterized forward/backward kernel plus the descriptor
// metadata (shape inference, in-place hints, backward dependencies) a
// scheduler plans against.
package activation

import (
	"errors"
	"fmt"
)

// Kind selects which activation function pair a kernel applies.
// It is fixed at operator construction and immutable thereafter.
type Kind int

const (
	// ReLU is f(x) = max(0, x).
	ReLU Kind = iota
	// Sigmoid is f(x) = 1 / (1 + e^-x).
	Sigmoid
	// Tanh is f(x) = tanh(x).
	Tanh
	// SoftReLU is the softplus f(x) = log(1 + e^x).
	SoftReLU
	// HLU is the hard linear unit f(x) = clamp(0.2x + 0.5, 0, 1),
	// the piecewise-linear approximation of sigmoid.
	HLU
)

// ErrUnknownKind is returned for an unrecognized act_type value.
var ErrUnknownKind = errors.New("activation: unknown act_type")

// kindNames maps configuration strings to kinds. These are the literal
// values accepted for the act_type key.
var kindNames = map[string]Kind{
	"relu":     ReLU,
	"sigmoid":  Sigmoid,
	"tanh":     Tanh,
	"softrelu": SoftReLU,
	"hlu":      HLU,
}

// ParseKind resolves an act_type string to a Kind.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindNames[s]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case ReLU:
		return "relu"
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case SoftReLU:
		return "softrelu"
	case HLU:
		return "hlu"
	default:
		return "unknown"
	}
}
