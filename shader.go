// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import "github.com/gogpu/glprog/gl"

// Shader is a compiled vertex or fragment shader object. Shaders are
// linkable into any number of programs; a [Program] given a pre-built
// Shader borrows it and never releases it.
type Shader struct {
	resource

	// Name identifies the shader in logs and error messages.
	Name string

	// Type is the stage, VERTEX_SHADER or FRAGMENT_SHADER.
	Type gl.Enum

	// Source is the GLSL source the shader was compiled from.
	Source string

	handle gl.Shader
}

// NewShader compiles GLSL source of the given stage type.
// It returns a [*CompileError] carrying the native info log if
// compilation fails.
func NewShader(ctx gl.Context, ty gl.Enum, name, source string) (*Shader, error) {
	sh := &Shader{Name: name, Type: ty, Source: source}
	sh.init(ctx)
	if err := sh.ensure(sh.compile); err != nil {
		return nil, err
	}
	return sh, nil
}

// NewVertexShader compiles vertex shader source.
func NewVertexShader(ctx gl.Context, name, source string) (*Shader, error) {
	return NewShader(ctx, gl.VERTEX_SHADER, name, source)
}

// NewFragmentShader compiles fragment shader source.
func NewFragmentShader(ctx gl.Context, name, source string) (*Shader, error) {
	return NewShader(ctx, gl.FRAGMENT_SHADER, name, source)
}

func (sh *Shader) compile() error {
	h := sh.ctx.CreateShader(sh.Type)
	sh.ctx.ShaderSource(h, sh.Source)
	sh.ctx.CompileShader(h)
	if sh.ctx.GetShaderi(h, gl.COMPILE_STATUS) == 0 {
		log := sh.ctx.GetShaderInfoLog(h)
		sh.ctx.DeleteShader(h)
		return &CompileError{Shader: sh.Name, Type: sh.Type, Log: log}
	}
	sh.handle = h
	return nil
}

// Handle returns the native shader handle.
func (sh *Shader) Handle() gl.Shader {
	return sh.handle
}

// Release deletes the native shader object. Programs already linked
// from this shader are unaffected.
func (sh *Shader) Release() {
	sh.releaseOnce(func() {
		if sh.handle.Valid() {
			sh.ctx.DeleteShader(sh.handle)
			sh.handle = gl.Shader{}
		}
	})
}
