package cpu

import (
	"math"

	"github.com/codinganother/HLUs/internal/op"
	"github.com/codinganother/HLUs/internal/op/activation"
)

func forwardFloat64(k activation.Kind, src, dst []float64, req op.ReqType) {
	f := fwdFloat64(k)
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

func backwardFloat64(k activation.Kind, ograd, odata, igrad []float64, req op.ReqType) {
	g := gradFloat64(k)
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

// fwdFloat64 returns the scalar forward function for k.
func fwdFloat64(k activation.Kind) func(float64) float64 {
	switch k {
	case activation.ReLU:
		return func(x float64) float64 {
			if x > 0 {
				return x
			}
			return 0
		}
	case activation.Sigmoid:
		return func(x float64) float64 {
			return 1 / (1 + math.Exp(-x))
		}
	case activation.Tanh:
		return math.Tanh
	case activation.SoftReLU:
		return func(x float64) float64 {
			if x > 0 {
				return x + math.Log1p(math.Exp(-x))
			}
			return math.Log1p(math.Exp(x))
		}
	case activation.HLU:
		return func(x float64) float64 {
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

// gradFloat64 returns the scalar derivative of k expressed in terms of
// the forward output y = f(x).
func gradFloat64(k activation.Kind) func(float64) float64 {
	switch k {
	case activation.ReLU:
		return func(y float64) float64 {
			if y > 0 {
				return 1
			}
			return 0
		}
	case activation.Sigmoid:
		return func(y float64) float64 {
			return y * (1 - y)
		}
	case activation.Tanh:
		return func(y float64) float64 {
			return 1 - y*y
		}
	case activation.SoftReLU:
		return func(y float64) float64 {
			return 1 - math.Exp(-y)
		}
	case activation.HLU:
		return func(y float64) float64 {
			if y > 0 && y < 1 {
				return 0.2
			}
			return 0
		}
	default:
		panic("activation: unknown kind " + k.String())
	}
}
