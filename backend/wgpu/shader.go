package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/hlsl"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/msl"
	"github.com/gogpu/naga/spirv"
)

// probeShader is the WGSL used to check that shaders can be produced for
// an adapter's backend.
const probeShader = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@location(0) pos: vec2<f32>, @location(1) uv: vec2<f32>) -> VertexOutput {
    return VertexOutput(vec4<f32>(pos, 0.0, 1.0), uv);
}

@fragment
fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    return vec4<f32>(uv, 0.0, 1.0);
}
`

// Shader targets reported by CheckShaders.
const (
	TargetSPIRV = "SPIR-V"
	TargetMSL   = "MSL"
	TargetHLSL  = "HLSL"
	TargetGLSL  = "GLSL"
	TargetNone  = "none"
)

// CheckShaders compiles the probe shader for backend's shading language and
// returns the target name. Backends without a shader compiler (the CPU
// rasterizer) report TargetNone.
func CheckShaders(b gputypes.Backend) (string, error) {
	if b == gputypes.BackendEmpty {
		return TargetNone, nil
	}

	ast, err := naga.Parse(probeShader)
	if err != nil {
		return "", fmt.Errorf("%w: parse: %w", ErrShaderTranslation, err)
	}
	module, err := naga.LowerWithSource(ast, probeShader)
	if err != nil {
		return "", fmt.Errorf("%w: lower: %w", ErrShaderTranslation, err)
	}

	target, err := translate(module, b)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrShaderTranslation, target, err)
	}
	return target, nil
}

func translate(module *ir.Module, b gputypes.Backend) (string, error) {
	switch b {
	case gputypes.BackendMetal:
		_, _, err := msl.Compile(module, msl.DefaultOptions())
		return TargetMSL, err
	case gputypes.BackendDX12:
		_, _, err := hlsl.Compile(module, hlsl.DefaultOptions())
		return TargetHLSL, err
	case gputypes.BackendGL:
		opts := glsl.DefaultOptions()
		opts.EntryPoint = "vs_main"
		_, _, err := glsl.Compile(module, opts)
		return TargetGLSL, err
	default:
		_, err := naga.GenerateSPIRV(module, spirv.DefaultOptions())
		return TargetSPIRV, err
	}
}
