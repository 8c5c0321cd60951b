// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opengl implements [glapi.Context] on desktop OpenGL 4.1
// core profile, through the go-gl bindings.
//
// A native GL context must be current on the calling OS thread before
// [New], and every later call must come from that same thread. Core
// profile refuses vertex-array operations without a bound vertex
// array object, so New creates and binds one for the context's
// lifetime; callers that manage their own VAOs can rebind at will.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	glapi "github.com/gogpu/glprog/gl"
)

// Context issues commands to the current native OpenGL context.
type Context struct {
	caps glapi.Caps
	vao  uint32
}

var _ glapi.Context = (*Context)(nil)

// New initializes the go-gl bindings against the context current on
// this thread and returns a Context for it.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: initializing bindings: %w", err)
	}
	c := &Context{}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	var maxAttribs, maxUnits int32
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &maxAttribs)
	gl.GetIntegerv(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS, &maxUnits)
	c.caps = glapi.Caps{
		// The 4.1 core binding refuses to initialize on anything
		// older, so every gated feature is present.
		Features: glapi.FeatureInstancing |
			glapi.FeatureUniformBlocks |
			glapi.FeatureTransformFeedback,
		MaxVertexAttribs: int(maxAttribs),
		MaxTextureUnits:  int(maxUnits),
	}
	return c, nil
}

// Release deletes the context's internal vertex array object. The
// Context must not be used afterwards.
func (c *Context) Release() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}

// cstr returns s with the null terminator the C side requires,
// appending one only when missing.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func fptr(v []float32) *float32 {
	if len(v) == 0 {
		return nil
	}
	return &v[0]
}

func iptr(v []int32) *int32 {
	if len(v) == 0 {
		return nil
	}
	return &v[0]
}

// Programs

func (c *Context) CreateProgram() glapi.Program {
	return glapi.Program{V: gl.CreateProgram()}
}

func (c *Context) DeleteProgram(p glapi.Program) {
	gl.DeleteProgram(p.V)
}

func (c *Context) AttachShader(p glapi.Program, s glapi.Shader) {
	gl.AttachShader(p.V, s.V)
}

func (c *Context) DetachShader(p glapi.Program, s glapi.Shader) {
	gl.DetachShader(p.V, s.V)
}

func (c *Context) LinkProgram(p glapi.Program) {
	gl.LinkProgram(p.V)
}

func (c *Context) ValidateProgram(p glapi.Program) {
	gl.ValidateProgram(p.V)
}

func (c *Context) UseProgram(p glapi.Program) {
	gl.UseProgram(p.V)
}

func (c *Context) GetProgrami(p glapi.Program, pname glapi.Enum) int {
	var v int32
	gl.GetProgramiv(p.V, uint32(pname), &v)
	return int(v)
}

func (c *Context) GetProgramInfoLog(p glapi.Program) string {
	var ln int32
	gl.GetProgramiv(p.V, gl.INFO_LOG_LENGTH, &ln)
	lg := strings.Repeat("\x00", int(ln+1))
	gl.GetProgramInfoLog(p.V, ln, nil, gl.Str(lg))
	return strings.TrimRight(lg, "\x00")
}

func (c *Context) GetActiveAttrib(p glapi.Program, index int) (name string, size int, ty glapi.Enum) {
	var bufLen int32
	gl.GetProgramiv(p.V, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &bufLen)
	buf := make([]byte, bufLen+1)
	var length, sz int32
	var xtype uint32
	gl.GetActiveAttrib(p.V, uint32(index), int32(len(buf)), &length, &sz, &xtype, &buf[0])
	return string(buf[:length]), int(sz), glapi.Enum(xtype)
}

func (c *Context) GetActiveUniform(p glapi.Program, index int) (name string, size int, ty glapi.Enum) {
	var bufLen int32
	gl.GetProgramiv(p.V, gl.ACTIVE_UNIFORM_MAX_LENGTH, &bufLen)
	buf := make([]byte, bufLen+1)
	var length, sz int32
	var xtype uint32
	gl.GetActiveUniform(p.V, uint32(index), int32(len(buf)), &length, &sz, &xtype, &buf[0])
	return string(buf[:length]), int(sz), glapi.Enum(xtype)
}

func (c *Context) GetAttribLocation(p glapi.Program, name string) glapi.Attrib {
	return glapi.Attrib{V: gl.GetAttribLocation(p.V, gl.Str(cstr(name)))}
}

func (c *Context) GetUniformLocation(p glapi.Program, name string) glapi.Uniform {
	return glapi.Uniform{V: gl.GetUniformLocation(p.V, gl.Str(cstr(name)))}
}

func (c *Context) GetUniformfv(p glapi.Program, u glapi.Uniform, dst []float32) {
	if len(dst) == 0 {
		return
	}
	gl.GetUniformfv(p.V, u.V, &dst[0])
}

func (c *Context) GetUniformiv(p glapi.Program, u glapi.Uniform, dst []int32) {
	if len(dst) == 0 {
		return
	}
	gl.GetUniformiv(p.V, u.V, &dst[0])
}

// Shaders

func (c *Context) CreateShader(ty glapi.Enum) glapi.Shader {
	return glapi.Shader{V: gl.CreateShader(uint32(ty))}
}

func (c *Context) DeleteShader(s glapi.Shader) {
	gl.DeleteShader(s.V)
}

func (c *Context) ShaderSource(s glapi.Shader, src string) {
	csources, free := gl.Strs(cstr(src))
	gl.ShaderSource(s.V, 1, csources, nil)
	free()
}

func (c *Context) CompileShader(s glapi.Shader) {
	gl.CompileShader(s.V)
}

func (c *Context) GetShaderi(s glapi.Shader, pname glapi.Enum) int {
	var v int32
	gl.GetShaderiv(s.V, uint32(pname), &v)
	return int(v)
}

func (c *Context) GetShaderInfoLog(s glapi.Shader) string {
	var ln int32
	gl.GetShaderiv(s.V, gl.INFO_LOG_LENGTH, &ln)
	lg := strings.Repeat("\x00", int(ln+1))
	gl.GetShaderInfoLog(s.V, ln, nil, gl.Str(lg))
	return strings.TrimRight(lg, "\x00")
}

// Buffers

func (c *Context) CreateBuffer() glapi.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return glapi.Buffer{V: b}
}

func (c *Context) DeleteBuffer(b glapi.Buffer) {
	gl.DeleteBuffers(1, &b.V)
}

func (c *Context) BindBuffer(target glapi.Enum, b glapi.Buffer) {
	gl.BindBuffer(uint32(target), b.V)
}

func (c *Context) BufferData(target glapi.Enum, data []byte, usage glapi.Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data), gl.Ptr(data), uint32(usage))
}

// Vertex attributes

func (c *Context) EnableVertexAttribArray(a glapi.Attrib) {
	gl.EnableVertexAttribArray(uint32(a.V))
}

func (c *Context) DisableVertexAttribArray(a glapi.Attrib) {
	gl.DisableVertexAttribArray(uint32(a.V))
}

func (c *Context) VertexAttribPointer(a glapi.Attrib, size int, ty glapi.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(a.V), int32(size), uint32(ty), normalized, int32(stride), gl.PtrOffset(offset))
}

func (c *Context) VertexAttribDivisor(a glapi.Attrib, divisor int) {
	gl.VertexAttribDivisor(uint32(a.V), uint32(divisor))
}

func (c *Context) GetVertexAttribi(a glapi.Attrib, pname glapi.Enum) int {
	var v int32
	gl.GetVertexAttribiv(uint32(a.V), uint32(pname), &v)
	return int(v)
}

// Textures

func (c *Context) CreateTexture() glapi.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return glapi.Texture{V: t}
}

func (c *Context) DeleteTexture(t glapi.Texture) {
	gl.DeleteTextures(1, &t.V)
}

func (c *Context) ActiveTexture(unit glapi.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (c *Context) BindTexture(target glapi.Enum, t glapi.Texture) {
	gl.BindTexture(uint32(target), t.V)
}

func (c *Context) TexImage2D(target glapi.Enum, level int, internalFormat glapi.Enum, width, height int, format, ty glapi.Enum, data []byte) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat),
		int32(width), int32(height), 0, uint32(format), uint32(ty), ptr)
}

func (c *Context) TexParameteri(target, pname glapi.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

// Uniforms

func (c *Context) Uniform1f(dst glapi.Uniform, v float32) {
	gl.Uniform1f(dst.V, v)
}

func (c *Context) Uniform2f(dst glapi.Uniform, v0, v1 float32) {
	gl.Uniform2f(dst.V, v0, v1)
}

func (c *Context) Uniform3f(dst glapi.Uniform, v0, v1, v2 float32) {
	gl.Uniform3f(dst.V, v0, v1, v2)
}

func (c *Context) Uniform4f(dst glapi.Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(dst.V, v0, v1, v2, v3)
}

func (c *Context) Uniform1i(dst glapi.Uniform, v int) {
	gl.Uniform1i(dst.V, int32(v))
}

func (c *Context) Uniform2i(dst glapi.Uniform, v0, v1 int) {
	gl.Uniform2i(dst.V, int32(v0), int32(v1))
}

func (c *Context) Uniform3i(dst glapi.Uniform, v0, v1, v2 int) {
	gl.Uniform3i(dst.V, int32(v0), int32(v1), int32(v2))
}

func (c *Context) Uniform4i(dst glapi.Uniform, v0, v1, v2, v3 int) {
	gl.Uniform4i(dst.V, int32(v0), int32(v1), int32(v2), int32(v3))
}

func (c *Context) Uniform1fv(dst glapi.Uniform, v []float32) {
	gl.Uniform1fv(dst.V, int32(len(v)), fptr(v))
}

func (c *Context) Uniform2fv(dst glapi.Uniform, v []float32) {
	gl.Uniform2fv(dst.V, int32(len(v)/2), fptr(v))
}

func (c *Context) Uniform3fv(dst glapi.Uniform, v []float32) {
	gl.Uniform3fv(dst.V, int32(len(v)/3), fptr(v))
}

func (c *Context) Uniform4fv(dst glapi.Uniform, v []float32) {
	gl.Uniform4fv(dst.V, int32(len(v)/4), fptr(v))
}

func (c *Context) Uniform1iv(dst glapi.Uniform, v []int32) {
	gl.Uniform1iv(dst.V, int32(len(v)), iptr(v))
}

func (c *Context) Uniform2iv(dst glapi.Uniform, v []int32) {
	gl.Uniform2iv(dst.V, int32(len(v)/2), iptr(v))
}

func (c *Context) Uniform3iv(dst glapi.Uniform, v []int32) {
	gl.Uniform3iv(dst.V, int32(len(v)/3), iptr(v))
}

func (c *Context) Uniform4iv(dst glapi.Uniform, v []int32) {
	gl.Uniform4iv(dst.V, int32(len(v)/4), iptr(v))
}

func (c *Context) UniformMatrix2fv(dst glapi.Uniform, v []float32) {
	gl.UniformMatrix2fv(dst.V, int32(len(v)/4), false, fptr(v))
}

func (c *Context) UniformMatrix3fv(dst glapi.Uniform, v []float32) {
	gl.UniformMatrix3fv(dst.V, int32(len(v)/9), false, fptr(v))
}

func (c *Context) UniformMatrix4fv(dst glapi.Uniform, v []float32) {
	gl.UniformMatrix4fv(dst.V, int32(len(v)/16), false, fptr(v))
}

// Drawing

func (c *Context) DrawArrays(mode glapi.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (c *Context) DrawElements(mode glapi.Enum, count int, ty glapi.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(ty), gl.PtrOffset(offset))
}

func (c *Context) DrawArraysInstanced(mode glapi.Enum, first, count, instanceCount int) {
	gl.DrawArraysInstanced(uint32(mode), int32(first), int32(count), int32(instanceCount))
}

func (c *Context) DrawElementsInstanced(mode glapi.Enum, count int, ty glapi.Enum, offset, instanceCount int) {
	gl.DrawElementsInstanced(uint32(mode), int32(count), uint32(ty), gl.PtrOffset(offset), int32(instanceCount))
}

// State

func (c *Context) Enable(cap glapi.Enum) {
	gl.Enable(uint32(cap))
}

func (c *Context) Disable(cap glapi.Enum) {
	gl.Disable(uint32(cap))
}

func (c *Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear(mask glapi.Enum) {
	gl.Clear(uint32(mask))
}

func (c *Context) PixelStorei(pname glapi.Enum, param int) {
	gl.PixelStorei(uint32(pname), int32(param))
}

func (c *Context) GetError() glapi.Enum {
	return glapi.Enum(gl.GetError())
}

func (c *Context) GetString(pname glapi.Enum) string {
	return gl.GoStr(gl.GetString(uint32(pname)))
}

func (c *Context) GetInteger(pname glapi.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (c *Context) Caps() glapi.Caps {
	return c.caps
}
