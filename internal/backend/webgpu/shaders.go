// WGSL compute shaders for the activation kernels.
// Using string constants instead of embed for simplicity.
package webgpu

import "github.com/codinganother/HLUs/internal/op/activation"

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// Forward shaders: result = f(input).

// reluForwardShader applies ReLU: result = max(0, x).
const reluForwardShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = max(0.0, input[idx]);
    }
}
`

// sigmoidForwardShader applies Sigmoid: result = 1 / (1 + exp(-x)).
const sigmoidForwardShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = 1.0 / (1.0 + exp(-input[idx]));
    }
}
`

// tanhForwardShader applies Tanh.
const tanhForwardShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = tanh(input[idx]);
    }
}
`

// softreluForwardShader applies softplus: result = log(1 + exp(x)),
// in the overflow-stable form x + log(1 + exp(-x)) for positive x.
const softreluForwardShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let x = input[idx];
        if (x > 0.0) {
            result[idx] = x + log(1.0 + exp(-x));
        } else {
            result[idx] = log(1.0 + exp(x));
        }
    }
}
`

// hluForwardShader applies the hard linear unit: result = clamp(0.2x + 0.5, 0, 1).
const hluForwardShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = clamp(0.2 * input[idx] + 0.5, 0.0, 1.0);
    }
}
`

// Backward shaders: result = f'(out_data) * out_grad, with the gradient
// expressed in terms of the forward output.

// reluBackwardShader: grad where the output was positive, else zero.
const reluBackwardShader = `
@group(0) @binding(0) var<storage, read> out_data: array<f32>;
@group(0) @binding(1) var<storage, read> out_grad: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = select(0.0, out_grad[idx], out_data[idx] > 0.0);
    }
}
`

// sigmoidBackwardShader: grad * y * (1 - y).
const sigmoidBackwardShader = `
@group(0) @binding(0) var<storage, read> out_data: array<f32>;
@group(0) @binding(1) var<storage, read> out_grad: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let y = out_data[idx];
        result[idx] = out_grad[idx] * y * (1.0 - y);
    }
}
`

// tanhBackwardShader: grad * (1 - y*y).
const tanhBackwardShader = `
@group(0) @binding(0) var<storage, read> out_data: array<f32>;
@group(0) @binding(1) var<storage, read> out_grad: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let y = out_data[idx];
        result[idx] = out_grad[idx] * (1.0 - y * y);
    }
}
`

// softreluBackwardShader: grad * (1 - exp(-y)).
const softreluBackwardShader = `
@group(0) @binding(0) var<storage, read> out_data: array<f32>;
@group(0) @binding(1) var<storage, read> out_grad: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = out_grad[idx] * (1.0 - exp(-out_data[idx]));
    }
}
`

// hluBackwardShader: 0.2 * grad inside the open unit interval, else zero.
const hluBackwardShader = `
@group(0) @binding(0) var<storage, read> out_data: array<f32>;
@group(0) @binding(1) var<storage, read> out_grad: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let y = out_data[idx];
        result[idx] = select(0.0, 0.2 * out_grad[idx], y > 0.0 && y < 1.0);
    }
}
`

// forwardShader resolves the (kind) pair to a named WGSL forward shader.
func forwardShader(k activation.Kind) (name, code string) {
	switch k {
	case activation.ReLU:
		return "act_relu_fwd", reluForwardShader
	case activation.Sigmoid:
		return "act_sigmoid_fwd", sigmoidForwardShader
	case activation.Tanh:
		return "act_tanh_fwd", tanhForwardShader
	case activation.SoftReLU:
		return "act_softrelu_fwd", softreluForwardShader
	case activation.HLU:
		return "act_hlu_fwd", hluForwardShader
	default:
		panic("webgpu: unknown activation kind " + k.String())
	}
}

// backwardShader resolves the (kind) pair to a named WGSL backward shader.
func backwardShader(k activation.Kind) (name, code string) {
	switch k {
	case activation.ReLU:
		return "act_relu_bwd", reluBackwardShader
	case activation.Sigmoid:
		return "act_sigmoid_bwd", sigmoidBackwardShader
	case activation.Tanh:
		return "act_tanh_bwd", tanhBackwardShader
	case activation.SoftReLU:
		return "act_softrelu_bwd", softreluBackwardShader
	case activation.HLU:
		return "act_hlu_bwd", hluBackwardShader
	default:
		panic("webgpu: unknown activation kind " + k.String())
	}
}
