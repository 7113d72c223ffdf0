package activation

import (
	"fmt"

	"github.com/codinganother/HLUs/internal/op"
	"github.com/codinganother/HLUs/internal/tensor"
)

// OperatorName is the registry identifier for this operator.
const OperatorName = "Activation"

// Tensor slot order. The operator has a single data input and a single
// output, so both slots sit at index 0 of their respective lists.
const (
	slotData = 0 // forward input
	slotOut  = 0 // forward output
)

func init() {
	op.Register(OperatorName, func() op.Property {
		return NewProp(op.Capability{})
	})
}

// Prop is the activation operator descriptor. It starts unconfigured;
// Init must succeed before any other method is called.
type Prop struct {
	kind       Kind
	caps       op.Capability
	configured bool
}

var _ op.Property = (*Prop)(nil)

// NewProp creates an unconfigured descriptor. The device capability is
// resolved here, once, so the two backward-dependency profiles are an
// explicit branch rather than a build flag.
func NewProp(caps op.Capability) *Prop {
	return &Prop{caps: caps}
}

// Init parses the act_type key. On failure the descriptor stays
// unconfigured.
func (p *Prop) Init(kwargs map[string]string) error {
	v, ok := kwargs["act_type"]
	if !ok {
		return fmt.Errorf("activation: missing required key %q", "act_type")
	}
	k, err := ParseKind(v)
	if err != nil {
		return err
	}
	p.kind = k
	p.configured = true
	return nil
}

// Kind returns the configured activation kind.
func (p *Prop) Kind() Kind {
	p.mustBeConfigured()
	return p.kind
}

func (p *Prop) mustBeConfigured() {
	if !p.configured {
		panic("activation: descriptor used before successful Init")
	}
}

// InferShape sets the single output shape equal to the single input
// shape. Inference is deferred (ok=false) while the input shape is still
// the unknown placeholder.
func (p *Prop) InferShape(inShapes []tensor.Shape) (outShapes, auxShapes []tensor.Shape, ok bool) {
	p.mustBeConfigured()
	if len(inShapes) != 1 {
		panic(fmt.Sprintf("activation: expects exactly one input shape, got %d", len(inShapes)))
	}
	data := inShapes[slotData]
	if !data.Known() {
		return nil, nil, false
	}
	return []tensor.Shape{data.Clone()}, nil, true
}

// DeclareBackwardDependency returns the tensor ids Backward reads. The
// gradient is computed from the forward output, so the input itself is
// not retained unless the device library needs it.
func (p *Prop) DeclareBackwardDependency(outGrad, inData, outData []int) []int {
	p.mustBeConfigured()
	if len(outGrad) != 1 || len(inData) != 1 || len(outData) != 1 {
		panic(fmt.Sprintf("activation: expects one id per slot list, got %d, %d and %d", len(outGrad), len(inData), len(outData)))
	}
	deps := []int{outGrad[slotOut], outData[slotOut]}
	if p.caps.BackwardNeedsInput {
		deps = append(deps, inData[slotData])
	}
	return deps
}

// ForwardInplaceOption declares that the output may alias the input.
// Safe for any element-wise operator: element i depends only on element i.
func (p *Prop) ForwardInplaceOption(inData, outData []int) []op.InplacePair {
	p.mustBeConfigured()
	return []op.InplacePair{{In: inData[slotData], Out: outData[slotOut]}}
}

// BackwardInplaceOption declares that the input gradient may alias the
// output gradient.
func (p *Prop) BackwardInplaceOption(outGrad, inData, outData, inGrad []int) []op.InplacePair {
	p.mustBeConfigured()
	return []op.InplacePair{{In: outGrad[slotOut], Out: inGrad[slotData]}}
}

// CreateOperator builds a kernel bound to the requested device.
func (p *Prop) CreateOperator(dev op.DeviceContext) (op.Operator, error) {
	p.mustBeConfigured()
	if dev.Backend == nil {
		return nil, fmt.Errorf("activation: device context for %s has no backend", dev.Device)
	}
	be, ok := dev.Backend.(Backend)
	if !ok {
		return nil, fmt.Errorf("activation: backend %s does not implement activation kernels", dev.Backend.Name())
	}
	return &activationOp{kind: p.kind, be: be}, nil
}

// Copy produces an independent descriptor with identical configuration.
func (p *Prop) Copy() op.Property {
	cp := *p
	return &cp
}

// TypeString returns the operator's registry name.
func (p *Prop) TypeString() string {
	return OperatorName
}
