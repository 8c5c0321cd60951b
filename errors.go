// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import (
	"fmt"

	"github.com/gogpu/glprog/base/errors"
	"github.com/gogpu/glprog/gl"
)

// ErrInstancingUnsupported is returned by [Program.Draw] for instanced
// parameters on a context without [gl.FeatureInstancing].
var ErrInstancingUnsupported = errors.New("context does not support instanced drawing")

// ErrReleased is returned by operations on an object whose Release
// method has already been called.
var ErrReleased = errors.New("use of released GPU object")

// CompileError reports a failed shader compilation.
type CompileError struct {
	// Shader is the name of the shader that failed.
	Shader string

	// Type is the shader stage, VERTEX_SHADER or FRAGMENT_SHADER.
	Type gl.Enum

	// Log is the native compile info log.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("glprog: %s shader %q failed to compile: %s", stageName(e.Type), e.Shader, e.Log)
}

// LinkError reports a failed program link or validation. The native
// handle has been released; the program is unusable until relinked
// from corrected shaders.
type LinkError struct {
	// Program is the ID of the program that failed.
	Program string

	// Log is the native link/validate info log.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("glprog: program %q failed to link: %s", e.Program, e.Log)
}

// BindingConflictError reports contradictory buffer roles in one
// [Program.SetBuffers] call: either two buffers both declare the
// element index target, or one buffer matches an attribute name while
// declaring the element index target.
type BindingConflictError struct {
	// Program is the ID of the program being bound.
	Program string

	// Name is the offending buffer's name in the map.
	Name string

	// Prior is the buffer already holding the element index role, when
	// the conflict is a second index buffer. Empty for the
	// attribute-vs-index contradiction.
	Prior string
}

func (e *BindingConflictError) Error() string {
	if e.Prior != "" {
		return fmt.Sprintf("glprog: program %q: buffer %q claims the element index role already held by %q", e.Program, e.Name, e.Prior)
	}
	return fmt.Sprintf("glprog: program %q: buffer %q matches an attribute but declares the element index target", e.Program, e.Name)
}

// TypeMismatchError reports a uniform value whose Go shape does not
// match the uniform's introspected GL type.
type TypeMismatchError struct {
	// Uniform is the uniform's name.
	Uniform string

	// Type is the uniform's GL type tag.
	Type gl.Enum

	// Value is the rejected value.
	Value any

	// Want and Got are the expected and supplied component counts,
	// when the mismatch is a length problem rather than a kind problem.
	Want, Got int
}

func (e *TypeMismatchError) Error() string {
	if e.Want > 0 && e.Got != e.Want {
		return fmt.Sprintf("glprog: uniform %q (%s): want %d values, got %d", e.Uniform, TypeName(e.Type), e.Want, e.Got)
	}
	return fmt.Sprintf("glprog: uniform %q (%s): cannot set from %T", e.Uniform, TypeName(e.Type), e.Value)
}

func stageName(ty gl.Enum) string {
	switch ty {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%04X", uint32(ty))
}
