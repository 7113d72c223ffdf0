package cpu

import (
	"math"
	"testing"

	"github.com/codinganother/HLUs/internal/op"
	"github.com/codinganother/HLUs/internal/op/activation"
	"github.com/codinganother/HLUs/internal/tensor"
)

func tensorF32(t *testing.T, data []float32) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.FromSlice(data, tensor.Shape{len(data)}, tensor.CPU)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	return r
}

func TestForwardFloat32AllKinds(t *testing.T) {
	backend := New()
	xs := []float32{-2, -0.5, 0, 0.5, 2}

	refs := map[activation.Kind]func(float64) float64{
		activation.ReLU:     func(x float64) float64 { return math.Max(0, x) },
		activation.Sigmoid:  func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
		activation.Tanh:     math.Tanh,
		activation.SoftReLU: func(x float64) float64 { return math.Log1p(math.Exp(x)) },
		activation.HLU:      func(x float64) float64 { return math.Min(1, math.Max(0, 0.2*x+0.5)) },
	}

	for kind, ref := range refs {
		in := tensorF32(t, xs)
		out := tensorF32(t, make([]float32, len(xs)))
		if err := backend.ActivationForward(kind, in, out, op.WriteTo); err != nil {
			t.Fatalf("%s forward failed: %v", kind, err)
		}
		for i, x := range xs {
			got := float64(out.AsFloat32()[i])
			if math.Abs(got-ref(float64(x))) > 1e-6 {
				t.Errorf("%s(%v) = %v, want %v", kind, x, got, ref(float64(x)))
			}
		}
	}
}

func TestBackwardFloat32ViaOutput(t *testing.T) {
	backend := New()

	// Backward reads only the forward output, never the input.
	out := tensorF32(t, []float32{0.1, 0.5, 0.9})
	grad := tensorF32(t, []float32{1, 1, 1})
	igrad := tensorF32(t, make([]float32, 3))

	if err := backend.ActivationBackward(activation.Sigmoid, grad, out, igrad, op.WriteTo); err != nil {
		t.Fatalf("backward failed: %v", err)
	}
	for i, s := range out.AsFloat32() {
		want := s * (1 - s)
		if got := igrad.AsFloat32()[i]; math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("sigmoid grad at s=%v: got %v, want %v", s, got, want)
		}
	}
}

func TestForwardFloat64(t *testing.T) {
	backend := New()
	in, err := tensor.FromSlice([]float64{-1, 0, 2}, tensor.Shape{3}, tensor.CPU)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	out, err := tensor.NewRaw(tensor.Shape{3}, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if err := backend.ActivationForward(activation.ReLU, in, out, op.WriteTo); err != nil {
		t.Fatalf("forward failed: %v", err)
	}
	want := []float64{0, 0, 2}
	for i := range want {
		if out.AsFloat64()[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, out.AsFloat64()[i], want[i])
		}
	}
}

func TestNullOpLeavesOutputUntouched(t *testing.T) {
	backend := New()
	in := tensorF32(t, []float32{1, 2})
	out := tensorF32(t, []float32{7, 7})

	if err := backend.ActivationForward(activation.ReLU, in, out, op.NullOp); err != nil {
		t.Fatalf("forward failed: %v", err)
	}
	if out.AsFloat32()[0] != 7 || out.AsFloat32()[1] != 7 {
		t.Errorf("NullOp modified output: %v", out.AsFloat32())
	}
}

func TestDTypeMismatchPanics(t *testing.T) {
	backend := New()
	in := tensorF32(t, []float32{1})
	out64, err := tensor.NewRaw(tensor.Shape{1}, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("mixed dtypes did not panic")
		}
	}()
	_ = backend.ActivationForward(activation.ReLU, in, out64, op.WriteTo)
}

func TestBackendMetadata(t *testing.T) {
	backend := New()
	if backend.Name() != "CPU" {
		t.Errorf("Name = %q, want CPU", backend.Name())
	}
	if backend.Device() != tensor.CPU {
		t.Errorf("Device = %v, want CPU", backend.Device())
	}
}
