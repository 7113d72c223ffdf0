package activation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codinganother/HLUs/internal/backend/cpu"
	"github.com/codinganother/HLUs/internal/op"
	"github.com/codinganother/HLUs/internal/op/activation"
	"github.com/codinganother/HLUs/internal/tensor"
)

func TestParseKind(t *testing.T) {
	for name, want := range map[string]activation.Kind{
		"relu":     activation.ReLU,
		"sigmoid":  activation.Sigmoid,
		"tanh":     activation.Tanh,
		"softrelu": activation.SoftReLU,
		"hlu":      activation.HLU,
	} {
		k, err := activation.ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, k)
		assert.Equal(t, name, k.String())
	}

	_, err := activation.ParseKind("bogus")
	assert.ErrorIs(t, err, activation.ErrUnknownKind)
}

func TestInitRejectsBogusKind(t *testing.T) {
	prop := activation.NewProp(op.Capability{})
	err := prop.Init(map[string]string{"act_type": "bogus"})
	assert.ErrorIs(t, err, activation.ErrUnknownKind)

	// A failed Init leaves the descriptor unconfigured; using it is a
	// contract violation.
	assert.Panics(t, func() {
		prop.InferShape([]tensor.Shape{{2, 3}})
	})
}

func TestInitRejectsMissingKey(t *testing.T) {
	prop := activation.NewProp(op.Capability{})
	assert.Error(t, prop.Init(map[string]string{"activation": "relu"}))
	assert.Error(t, prop.Init(nil))
}

func TestUnconfiguredDescriptorPanics(t *testing.T) {
	prop := activation.NewProp(op.Capability{})
	assert.Panics(t, func() { prop.DeclareBackwardDependency([]int{0}, []int{1}, []int{2}) })
	assert.Panics(t, func() { prop.ForwardInplaceOption([]int{0}, []int{1}) })
	assert.Panics(t, func() { _, _ = prop.CreateOperator(op.DeviceContext{}) })
	assert.Panics(t, func() { prop.Kind() })
}

func configured(t *testing.T, kind string, caps op.Capability) *activation.Prop {
	t.Helper()
	prop := activation.NewProp(caps)
	require.NoError(t, prop.Init(map[string]string{"act_type": kind}))
	return prop
}

func TestInferShapePreservesInput(t *testing.T) {
	prop := configured(t, "relu", op.Capability{})

	for _, shape := range []tensor.Shape{{3}, {2, 3}, {4, 5, 6}} {
		out, aux, ok := prop.InferShape([]tensor.Shape{shape})
		require.True(t, ok)
		require.Len(t, out, 1)
		assert.True(t, out[0].Equal(shape), "output shape %v differs from input %v", out[0], shape)
		assert.Empty(t, aux)
	}
}

func TestInferShapeDefersOnUnknownInput(t *testing.T) {
	prop := configured(t, "tanh", op.Capability{})
	out, aux, ok := prop.InferShape([]tensor.Shape{{}})
	assert.False(t, ok)
	assert.Nil(t, out)
	assert.Nil(t, aux)
}

func TestInferShapeCardinality(t *testing.T) {
	prop := configured(t, "relu", op.Capability{})
	assert.Panics(t, func() {
		prop.InferShape([]tensor.Shape{{2}, {2}})
	})
	assert.Panics(t, func() {
		prop.InferShape(nil)
	})
}

func TestDeclareBackwardDependency(t *testing.T) {
	prop := configured(t, "sigmoid", op.Capability{})

	// Backward reads only the output gradient and forward output, so the
	// scheduler may free the original input early.
	deps := prop.DeclareBackwardDependency([]int{11}, []int{12}, []int{13})
	assert.Equal(t, []int{11, 13}, deps)

	// Stable across calls.
	assert.Equal(t, deps, prop.DeclareBackwardDependency([]int{11}, []int{12}, []int{13}))
}

func TestDeclareBackwardDependencyWithInputCapability(t *testing.T) {
	prop := configured(t, "sigmoid", op.Capability{BackwardNeedsInput: true})
	deps := prop.DeclareBackwardDependency([]int{11}, []int{12}, []int{13})
	assert.Equal(t, []int{11, 13, 12}, deps)
}

func TestInplaceOptions(t *testing.T) {
	prop := configured(t, "relu", op.Capability{})

	fwd := prop.ForwardInplaceOption([]int{7}, []int{8})
	assert.Equal(t, []op.InplacePair{{In: 7, Out: 8}}, fwd)

	bwd := prop.BackwardInplaceOption([]int{1}, []int{2}, []int{3}, []int{4})
	assert.Equal(t, []op.InplacePair{{In: 1, Out: 4}}, bwd)
}

func TestCopyIsIndependent(t *testing.T) {
	prop := configured(t, "tanh", op.Capability{})
	cp := prop.Copy()

	assert.Equal(t, prop.TypeString(), cp.TypeString())
	out1, _, _ := prop.InferShape([]tensor.Shape{{2, 2}})
	out2, _, _ := cp.InferShape([]tensor.Shape{{2, 2}})
	assert.Equal(t, out1, out2)

	// Reconfiguring the copy must not touch the original.
	require.NoError(t, cp.(*activation.Prop).Init(map[string]string{"act_type": "relu"}))
	assert.Equal(t, activation.Tanh, prop.Kind())
}

func TestIdempotentConfiguration(t *testing.T) {
	a := configured(t, "softrelu", op.Capability{})
	b := configured(t, "softrelu", op.Capability{})

	assert.Equal(t, a.TypeString(), b.TypeString())
	outA, _, okA := a.InferShape([]tensor.Shape{{3, 4}})
	outB, _, okB := b.InferShape([]tensor.Shape{{3, 4}})
	assert.Equal(t, okA, okB)
	assert.Equal(t, outA, outB)
	assert.Equal(t,
		a.DeclareBackwardDependency([]int{0}, []int{1}, []int{2}),
		b.DeclareBackwardDependency([]int{0}, []int{1}, []int{2}))
}

func TestTypeString(t *testing.T) {
	prop := configured(t, "relu", op.Capability{})
	assert.Equal(t, "Activation", prop.TypeString())
}

func TestCreateOperator(t *testing.T) {
	prop := configured(t, "relu", op.Capability{})

	kernel, err := prop.CreateOperator(op.DeviceContext{Device: tensor.CPU, Backend: cpu.New()})
	require.NoError(t, err)
	assert.Equal(t, op.AsyncExec, kernel.ExecType())

	_, err = prop.CreateOperator(op.DeviceContext{Device: tensor.CPU})
	assert.Error(t, err, "device context without a backend must be rejected")
}

func TestRegistryRoutesActivation(t *testing.T) {
	require.True(t, op.Registered(activation.OperatorName))

	prop, err := op.NewProperty(activation.OperatorName, map[string]string{"act_type": "hlu"})
	require.NoError(t, err)
	assert.Equal(t, "Activation", prop.TypeString())

	_, err = op.NewProperty(activation.OperatorName, map[string]string{"act_type": "bogus"})
	assert.ErrorIs(t, err, activation.ErrUnknownKind)
}
