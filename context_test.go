// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import (
	"fmt"
	"strings"

	"github.com/gogpu/glprog/gl"
)

// fakeVar scripts one introspected attribute or uniform.
type fakeVar struct {
	name string
	size int
	ty   gl.Enum
}

// fakeContext implements [gl.Context] in memory, with scripted
// introspection results and a call log. Attribute locations are the
// declaration index; uniform locations are 100 plus it.
type fakeContext struct {
	attribs  []fakeVar
	uniforms []fakeVar

	linkStatus     int
	validateStatus int
	compileStatus  int
	infoLog        string

	caps gl.Caps

	nextHandle uint32
	log        []string

	sources map[uint32]string

	current    uint32
	enabled    map[int32]bool
	divisors   map[int32]int
	pointers   map[int32]uint32
	bound      map[gl.Enum]uint32
	bufferData map[uint32][]byte

	activeUnit    gl.Enum
	boundTextures map[int]uint32

	uniformValues map[int32]any
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		linkStatus:     1,
		validateStatus: 1,
		compileStatus:  1,
		caps: gl.Caps{
			Features:         gl.FeatureInstancing | gl.FeatureUniformBlocks | gl.FeatureTransformFeedback,
			MaxVertexAttribs: 16,
			MaxTextureUnits:  32,
		},
		sources:       map[uint32]string{},
		enabled:       map[int32]bool{},
		divisors:      map[int32]int{},
		pointers:      map[int32]uint32{},
		bound:         map[gl.Enum]uint32{},
		bufferData:    map[uint32][]byte{},
		activeUnit:    gl.TEXTURE0,
		boundTextures: map[int]uint32{},
		uniformValues: map[int32]any{},
	}
}

var _ gl.Context = (*fakeContext)(nil)

func (c *fakeContext) record(format string, args ...any) {
	c.log = append(c.log, fmt.Sprintf(format, args...))
}

// calls returns the logged calls whose name starts with prefix.
func (c *fakeContext) calls(prefix string) []string {
	var out []string
	for _, l := range c.log {
		if strings.HasPrefix(l, prefix) {
			out = append(out, l)
		}
	}
	return out
}

func (c *fakeContext) handle() uint32 {
	c.nextHandle++
	return c.nextHandle
}

// Programs

func (c *fakeContext) CreateProgram() gl.Program {
	h := c.handle()
	c.record("CreateProgram %d", h)
	return gl.Program{V: h}
}

func (c *fakeContext) DeleteProgram(p gl.Program) {
	c.record("DeleteProgram %d", p.V)
}

func (c *fakeContext) AttachShader(p gl.Program, s gl.Shader) {
	c.record("AttachShader %d %d", p.V, s.V)
}

func (c *fakeContext) DetachShader(p gl.Program, s gl.Shader) {
	c.record("DetachShader %d %d", p.V, s.V)
}

func (c *fakeContext) LinkProgram(p gl.Program) {
	c.record("LinkProgram %d", p.V)
}

func (c *fakeContext) ValidateProgram(p gl.Program) {
	c.record("ValidateProgram %d", p.V)
}

func (c *fakeContext) UseProgram(p gl.Program) {
	c.current = p.V
	c.record("UseProgram %d", p.V)
}

func (c *fakeContext) GetProgrami(p gl.Program, pname gl.Enum) int {
	switch pname {
	case gl.LINK_STATUS:
		return c.linkStatus
	case gl.VALIDATE_STATUS:
		return c.validateStatus
	case gl.ACTIVE_ATTRIBUTES:
		return len(c.attribs)
	case gl.ACTIVE_UNIFORMS:
		return len(c.uniforms)
	case gl.ACTIVE_UNIFORM_BLOCKS:
		return 3
	case gl.TRANSFORM_FEEDBACK_VARYINGS:
		return 2
	case gl.TRANSFORM_FEEDBACK_BUFFER_MODE:
		return int(gl.INTERLEAVED_ATTRIBS)
	}
	return 0
}

func (c *fakeContext) GetProgramInfoLog(p gl.Program) string {
	return c.infoLog
}

func (c *fakeContext) GetActiveAttrib(p gl.Program, index int) (string, int, gl.Enum) {
	v := c.attribs[index]
	return v.name, v.size, v.ty
}

func (c *fakeContext) GetActiveUniform(p gl.Program, index int) (string, int, gl.Enum) {
	v := c.uniforms[index]
	return v.name, v.size, v.ty
}

func (c *fakeContext) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	for i, a := range c.attribs {
		if a.name == name {
			return gl.Attrib{V: int32(i)}
		}
	}
	return gl.Attrib{V: -1}
}

func (c *fakeContext) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	for i, u := range c.uniforms {
		if u.name == name {
			return gl.Uniform{V: int32(100 + i)}
		}
	}
	return gl.Uniform{V: -1}
}

func (c *fakeContext) GetUniformfv(p gl.Program, u gl.Uniform, dst []float32) {
	switch v := c.uniformValues[u.V].(type) {
	case float32:
		dst[0] = v
	case []float32:
		copy(dst, v)
	}
}

func (c *fakeContext) GetUniformiv(p gl.Program, u gl.Uniform, dst []int32) {
	switch v := c.uniformValues[u.V].(type) {
	case int:
		dst[0] = int32(v)
	case []int32:
		copy(dst, v)
	}
}

// Shaders

func (c *fakeContext) CreateShader(ty gl.Enum) gl.Shader {
	h := c.handle()
	c.record("CreateShader %d 0x%04X", h, uint32(ty))
	return gl.Shader{V: h}
}

func (c *fakeContext) DeleteShader(s gl.Shader) {
	c.record("DeleteShader %d", s.V)
}

func (c *fakeContext) ShaderSource(s gl.Shader, src string) {
	c.sources[s.V] = src
}

func (c *fakeContext) CompileShader(s gl.Shader) {
	c.record("CompileShader %d", s.V)
}

func (c *fakeContext) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS {
		return c.compileStatus
	}
	return 0
}

func (c *fakeContext) GetShaderInfoLog(s gl.Shader) string {
	return c.infoLog
}

// Buffers

func (c *fakeContext) CreateBuffer() gl.Buffer {
	h := c.handle()
	c.record("CreateBuffer %d", h)
	return gl.Buffer{V: h}
}

func (c *fakeContext) DeleteBuffer(b gl.Buffer) {
	c.record("DeleteBuffer %d", b.V)
}

func (c *fakeContext) BindBuffer(target gl.Enum, b gl.Buffer) {
	c.bound[target] = b.V
	c.record("BindBuffer 0x%04X %d", uint32(target), b.V)
}

func (c *fakeContext) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	c.bufferData[c.bound[target]] = append([]byte(nil), data...)
	c.record("BufferData 0x%04X %d", uint32(target), len(data))
}

// Vertex attributes

func (c *fakeContext) EnableVertexAttribArray(a gl.Attrib) {
	c.enabled[a.V] = true
	c.record("EnableVertexAttribArray %d", a.V)
}

func (c *fakeContext) DisableVertexAttribArray(a gl.Attrib) {
	c.enabled[a.V] = false
	c.record("DisableVertexAttribArray %d", a.V)
}

func (c *fakeContext) VertexAttribPointer(a gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	c.pointers[a.V] = c.bound[gl.ARRAY_BUFFER]
	c.record("VertexAttribPointer %d size=%d", a.V, size)
}

func (c *fakeContext) VertexAttribDivisor(a gl.Attrib, divisor int) {
	c.divisors[a.V] = divisor
	c.record("VertexAttribDivisor %d %d", a.V, divisor)
}

func (c *fakeContext) GetVertexAttribi(a gl.Attrib, pname gl.Enum) int {
	switch pname {
	case gl.VERTEX_ATTRIB_ARRAY_ENABLED:
		if c.enabled[a.V] {
			return 1
		}
	case gl.VERTEX_ATTRIB_ARRAY_DIVISOR:
		return c.divisors[a.V]
	}
	return 0
}

// Textures

func (c *fakeContext) CreateTexture() gl.Texture {
	h := c.handle()
	c.record("CreateTexture %d", h)
	return gl.Texture{V: h}
}

func (c *fakeContext) DeleteTexture(t gl.Texture) {
	c.record("DeleteTexture %d", t.V)
}

func (c *fakeContext) ActiveTexture(unit gl.Enum) {
	c.activeUnit = unit
	c.record("ActiveTexture %d", int(unit-gl.TEXTURE0))
}

func (c *fakeContext) BindTexture(target gl.Enum, t gl.Texture) {
	c.boundTextures[int(c.activeUnit-gl.TEXTURE0)] = t.V
	c.record("BindTexture 0x%04X %d", uint32(target), t.V)
}

func (c *fakeContext) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte) {
	c.record("TexImage2D %dx%d", width, height)
}

func (c *fakeContext) TexParameteri(target, pname gl.Enum, param int) {
	c.record("TexParameteri 0x%04X %d", uint32(pname), param)
}

// Uniforms

func (c *fakeContext) setUniform(name string, dst gl.Uniform, v any) {
	c.uniformValues[dst.V] = v
	c.record("%s %d %v", name, dst.V, v)
}

func (c *fakeContext) Uniform1f(dst gl.Uniform, v float32) {
	c.setUniform("Uniform1f", dst, v)
}

func (c *fakeContext) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	c.setUniform("Uniform2f", dst, []float32{v0, v1})
}

func (c *fakeContext) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	c.setUniform("Uniform3f", dst, []float32{v0, v1, v2})
}

func (c *fakeContext) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	c.setUniform("Uniform4f", dst, []float32{v0, v1, v2, v3})
}

func (c *fakeContext) Uniform1i(dst gl.Uniform, v int) {
	c.setUniform("Uniform1i", dst, v)
}

func (c *fakeContext) Uniform2i(dst gl.Uniform, v0, v1 int) {
	c.setUniform("Uniform2i", dst, []int32{int32(v0), int32(v1)})
}

func (c *fakeContext) Uniform3i(dst gl.Uniform, v0, v1, v2 int) {
	c.setUniform("Uniform3i", dst, []int32{int32(v0), int32(v1), int32(v2)})
}

func (c *fakeContext) Uniform4i(dst gl.Uniform, v0, v1, v2, v3 int) {
	c.setUniform("Uniform4i", dst, []int32{int32(v0), int32(v1), int32(v2), int32(v3)})
}

func (c *fakeContext) Uniform1fv(dst gl.Uniform, v []float32) {
	c.setUniform("Uniform1fv", dst, append([]float32(nil), v...))
}

func (c *fakeContext) Uniform2fv(dst gl.Uniform, v []float32) {
	c.setUniform("Uniform2fv", dst, append([]float32(nil), v...))
}

func (c *fakeContext) Uniform3fv(dst gl.Uniform, v []float32) {
	c.setUniform("Uniform3fv", dst, append([]float32(nil), v...))
}

func (c *fakeContext) Uniform4fv(dst gl.Uniform, v []float32) {
	c.setUniform("Uniform4fv", dst, append([]float32(nil), v...))
}

func (c *fakeContext) Uniform1iv(dst gl.Uniform, v []int32) {
	c.setUniform("Uniform1iv", dst, append([]int32(nil), v...))
}

func (c *fakeContext) Uniform2iv(dst gl.Uniform, v []int32) {
	c.setUniform("Uniform2iv", dst, append([]int32(nil), v...))
}

func (c *fakeContext) Uniform3iv(dst gl.Uniform, v []int32) {
	c.setUniform("Uniform3iv", dst, append([]int32(nil), v...))
}

func (c *fakeContext) Uniform4iv(dst gl.Uniform, v []int32) {
	c.setUniform("Uniform4iv", dst, append([]int32(nil), v...))
}

func (c *fakeContext) UniformMatrix2fv(dst gl.Uniform, v []float32) {
	c.setUniform("UniformMatrix2fv", dst, append([]float32(nil), v...))
}

func (c *fakeContext) UniformMatrix3fv(dst gl.Uniform, v []float32) {
	c.setUniform("UniformMatrix3fv", dst, append([]float32(nil), v...))
}

func (c *fakeContext) UniformMatrix4fv(dst gl.Uniform, v []float32) {
	c.setUniform("UniformMatrix4fv", dst, append([]float32(nil), v...))
}

// Drawing

func (c *fakeContext) DrawArrays(mode gl.Enum, first, count int) {
	c.record("DrawArrays mode=0x%04X first=%d count=%d", uint32(mode), first, count)
}

func (c *fakeContext) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	c.record("DrawElements mode=0x%04X count=%d ty=0x%04X offset=%d", uint32(mode), count, uint32(ty), offset)
}

func (c *fakeContext) DrawArraysInstanced(mode gl.Enum, first, count, instanceCount int) {
	c.record("DrawArraysInstanced mode=0x%04X first=%d count=%d n=%d", uint32(mode), first, count, instanceCount)
}

func (c *fakeContext) DrawElementsInstanced(mode gl.Enum, count int, ty gl.Enum, offset, instanceCount int) {
	c.record("DrawElementsInstanced mode=0x%04X count=%d ty=0x%04X offset=%d n=%d", uint32(mode), count, uint32(ty), offset, instanceCount)
}

// State

func (c *fakeContext) Enable(cp gl.Enum) {
	c.record("Enable 0x%04X", uint32(cp))
}

func (c *fakeContext) Disable(cp gl.Enum) {
	c.record("Disable 0x%04X", uint32(cp))
}

func (c *fakeContext) Viewport(x, y, width, height int) {
	c.record("Viewport %d %d %d %d", x, y, width, height)
}

func (c *fakeContext) ClearColor(r, g, b, a float32) {
	c.record("ClearColor")
}

func (c *fakeContext) Clear(mask gl.Enum) {
	c.record("Clear 0x%04X", uint32(mask))
}

func (c *fakeContext) PixelStorei(pname gl.Enum, param int) {
	c.record("PixelStorei 0x%04X %d", uint32(pname), param)
}

func (c *fakeContext) GetError() gl.Enum {
	return gl.NO_ERROR
}

func (c *fakeContext) GetString(pname gl.Enum) string {
	return "4.1 fake"
}

func (c *fakeContext) GetInteger(pname gl.Enum) int {
	switch pname {
	case gl.MAX_VERTEX_ATTRIBS:
		return c.caps.MaxVertexAttribs
	case gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		return c.caps.MaxTextureUnits
	}
	return 0
}

func (c *fakeContext) Caps() gl.Caps {
	return c.caps
}
