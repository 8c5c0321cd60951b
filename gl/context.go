// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// Context issues commands to one native graphics context. All methods
// are immediate: they take effect in call order against the context's
// command queue. Implementations are not safe for concurrent use; a
// context belongs to the OS thread it was created on.
//
// Implementations whose native API lacks built-in instanced drawing
// are expected to back [Context.DrawArraysInstanced] and
// [Context.DrawElementsInstanced] with the vendor extension and report
// [FeatureInstancing] in [Context.Caps] only when that worked.
type Context interface {

	// Programs

	// CreateProgram creates a new program object.
	CreateProgram() Program

	// DeleteProgram deletes the given program object.
	DeleteProgram(p Program)

	// AttachShader attaches a shader object to a program.
	AttachShader(p Program, s Shader)

	// DetachShader detaches a shader object from a program.
	DetachShader(p Program, s Shader)

	// LinkProgram links the attached shaders into the program.
	LinkProgram(p Program)

	// ValidateProgram checks whether the program can execute against
	// the current state, recording the result in VALIDATE_STATUS.
	ValidateProgram(p Program)

	// UseProgram makes the program current for subsequent uniform
	// uploads and draw calls.
	UseProgram(p Program)

	// GetProgrami returns a program parameter such as LINK_STATUS,
	// ACTIVE_ATTRIBUTES, or ACTIVE_UNIFORMS.
	GetProgrami(p Program, pname Enum) int

	// GetProgramInfoLog returns the program's link/validate log.
	GetProgramInfoLog(p Program) string

	// GetActiveAttrib returns the name, array size, and type of the
	// active attribute at the given index in [0, ACTIVE_ATTRIBUTES).
	GetActiveAttrib(p Program, index int) (name string, size int, ty Enum)

	// GetActiveUniform returns the name, array size, and type of the
	// active uniform at the given index in [0, ACTIVE_UNIFORMS).
	GetActiveUniform(p Program, index int) (name string, size int, ty Enum)

	// GetAttribLocation returns the slot of a named attribute.
	GetAttribLocation(p Program, name string) Attrib

	// GetUniformLocation returns the location of a named uniform.
	GetUniformLocation(p Program, name string) Uniform

	// GetUniformfv reads back the current float value(s) of a uniform.
	GetUniformfv(p Program, u Uniform, dst []float32)

	// GetUniformiv reads back the current integer value(s) of a uniform.
	GetUniformiv(p Program, u Uniform, dst []int32)

	// Shaders

	// CreateShader creates a shader object of type VERTEX_SHADER or
	// FRAGMENT_SHADER.
	CreateShader(ty Enum) Shader

	// DeleteShader deletes the given shader object.
	DeleteShader(s Shader)

	// ShaderSource replaces the shader's source code.
	ShaderSource(s Shader, src string)

	// CompileShader compiles the shader's source.
	CompileShader(s Shader)

	// GetShaderi returns a shader parameter such as COMPILE_STATUS.
	GetShaderi(s Shader, pname Enum) int

	// GetShaderInfoLog returns the shader's compile log.
	GetShaderInfoLog(s Shader) string

	// Buffers

	// CreateBuffer creates a new buffer object.
	CreateBuffer() Buffer

	// DeleteBuffer deletes the given buffer object.
	DeleteBuffer(b Buffer)

	// BindBuffer binds a buffer to ARRAY_BUFFER or ELEMENT_ARRAY_BUFFER.
	// A zero Buffer unbinds the target.
	BindBuffer(target Enum, b Buffer)

	// BufferData creates and initializes the bound buffer's data store.
	BufferData(target Enum, data []byte, usage Enum)

	// Vertex attributes

	// EnableVertexAttribArray enables the attribute slot as an array source.
	EnableVertexAttribArray(a Attrib)

	// DisableVertexAttribArray disables the attribute slot.
	DisableVertexAttribArray(a Attrib)

	// VertexAttribPointer points the attribute slot at the buffer
	// currently bound to ARRAY_BUFFER, with the given element layout.
	VertexAttribPointer(a Attrib, size int, ty Enum, normalized bool, stride, offset int)

	// VertexAttribDivisor sets the slot's instancing divisor.
	VertexAttribDivisor(a Attrib, divisor int)

	// GetVertexAttribi returns a slot parameter such as
	// VERTEX_ATTRIB_ARRAY_ENABLED.
	GetVertexAttribi(a Attrib, pname Enum) int

	// Textures

	// CreateTexture creates a new texture object.
	CreateTexture() Texture

	// DeleteTexture deletes the given texture object.
	DeleteTexture(t Texture)

	// ActiveTexture selects the active texture unit (TEXTURE0 + i).
	ActiveTexture(unit Enum)

	// BindTexture binds a texture to the given target on the active unit.
	BindTexture(target Enum, t Texture)

	// TexImage2D uploads pixel data to the bound 2D texture.
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte)

	// TexParameteri sets an integer texture parameter on the bound texture.
	TexParameteri(target, pname Enum, param int)

	// Uniforms

	Uniform1f(dst Uniform, v float32)
	Uniform2f(dst Uniform, v0, v1 float32)
	Uniform3f(dst Uniform, v0, v1, v2 float32)
	Uniform4f(dst Uniform, v0, v1, v2, v3 float32)
	Uniform1i(dst Uniform, v int)
	Uniform2i(dst Uniform, v0, v1 int)
	Uniform3i(dst Uniform, v0, v1, v2 int)
	Uniform4i(dst Uniform, v0, v1, v2, v3 int)
	Uniform1fv(dst Uniform, v []float32)
	Uniform2fv(dst Uniform, v []float32)
	Uniform3fv(dst Uniform, v []float32)
	Uniform4fv(dst Uniform, v []float32)
	Uniform1iv(dst Uniform, v []int32)
	Uniform2iv(dst Uniform, v []int32)
	Uniform3iv(dst Uniform, v []int32)
	Uniform4iv(dst Uniform, v []int32)
	UniformMatrix2fv(dst Uniform, v []float32)
	UniformMatrix3fv(dst Uniform, v []float32)
	UniformMatrix4fv(dst Uniform, v []float32)

	// Drawing

	// DrawArrays draws consecutive vertices from the enabled arrays.
	DrawArrays(mode Enum, first, count int)

	// DrawElements draws indexed vertices using the buffer bound to
	// ELEMENT_ARRAY_BUFFER, reading count indices of type ty starting
	// at the given byte offset.
	DrawElements(mode Enum, count int, ty Enum, offset int)

	// DrawArraysInstanced repeats DrawArrays for instanceCount instances.
	DrawArraysInstanced(mode Enum, first, count, instanceCount int)

	// DrawElementsInstanced repeats DrawElements for instanceCount instances.
	DrawElementsInstanced(mode Enum, count int, ty Enum, offset, instanceCount int)

	// State

	// Enable enables a server-side capability such as DEPTH_TEST.
	Enable(c Enum)

	// Disable disables a server-side capability.
	Disable(c Enum)

	// Viewport sets the viewport rectangle in window coordinates.
	Viewport(x, y, width, height int)

	// ClearColor sets the color used by Clear.
	ClearColor(r, g, b, a float32)

	// Clear clears the buffers named in the mask.
	Clear(mask Enum)

	// PixelStorei sets a pixel transfer parameter such as UNPACK_ALIGNMENT.
	PixelStorei(pname Enum, param int)

	// GetError returns and clears the oldest recorded error flag.
	GetError() Enum

	// GetString returns a context string such as VERSION.
	GetString(pname Enum) string

	// GetInteger returns a context integer such as MAX_VERTEX_ATTRIBS.
	GetInteger(pname Enum) int

	// Caps reports the context's capabilities.
	Caps() Caps
}
