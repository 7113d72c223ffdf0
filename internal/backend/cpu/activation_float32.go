package cpu

import (
	"math"

	"github.com/codinganother/HLUs/internal/op"
	"github.com/codinganother/HLUs/internal/op/activation"
)

func forwardFloat32(k activation.Kind, src, dst []float32, req op.ReqType) {
	f := fwdFloat32(k)
	switch req {
	case op.WriteTo:
		for i := range dst {
			dst[i] = f(src[i])
		}
	case op.AddTo:
		for i := range dst {
			dst[i] += f(src[i])
		}
	}
}

func backwardFloat32(k activation.Kind, ograd, odata, igrad []float32, req op.ReqType) {
	g := gradFloat32(k)
	switch req {
	case op.WriteTo:
		for i := range igrad {
			igrad[i] = g(odata[i]) * ograd[i]
		}
	case op.AddTo:
		for i := range igrad {
			igrad[i] += g(odata[i]) * ograd[i]
		}
	}
}

// fwdFloat32 returns the scalar forward function for k.
func fwdFloat32(k activation.Kind) func(float32) float32 {
	switch k {
	case activation.ReLU:
		return func(x float32) float32 {
			if x > 0 {
				return x
			}
			return 0
		}
	case activation.Sigmoid:
		return func(x float32) float32 {
			return float32(1 / (1 + math.Exp(-float64(x))))
		}
	case activation.Tanh:
		return func(x float32) float32 {
			return float32(math.Tanh(float64(x)))
		}
	case activation.SoftReLU:
		return func(x float32) float32 {
			// Stable softplus: log(1+e^x) = x + log(1+e^-x) for x > 0.
			if x > 0 {
				return x + float32(math.Log1p(math.Exp(-float64(x))))
			}
			return float32(math.Log1p(math.Exp(float64(x))))
		}
	case activation.HLU:
		return func(x float32) float32 {
			y := 0.2*x + 0.5
			if y < 0 {
				return 0
			}
			if y > 1 {
				return 1
			}
			return y
		}
	default:
		panic("activation: unknown kind " + k.String())
	}
}

// gradFloat32 returns the scalar derivative of k expressed in terms of
// the forward output y = f(x).
func gradFloat32(k activation.Kind) func(float32) float32 {
	switch k {
	case activation.ReLU:
		return func(y float32) float32 {
			if y > 0 {
				return 1
			}
			return 0
		}
	case activation.Sigmoid:
		return func(y float32) float32 {
			return y * (1 - y)
		}
	case activation.Tanh:
		return func(y float32) float32 {
			return 1 - y*y
		}
	case activation.SoftReLU:
		return func(y float32) float32 {
			// f'(x) = sigmoid(x) = 1 - e^-y for y = softplus(x).
			return 1 - float32(math.Exp(-float64(y)))
		}
	case activation.HLU:
		return func(y float32) float32 {
			if y > 0 && y < 1 {
				return 0.2
			}
			return 0
		}
	default:
		panic("activation: unknown kind " + k.String())
	}
}
