// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glprog manages GPU shader programs over an OpenGL-class
// graphics context: it links a vertex and fragment shader pair,
// introspects the linked program for its active attributes and
// uniforms, and gives name-based binding of vertex/index buffers and
// uniform values (including textures), with one draw entry point
// covering the four native draw variants.
//
// The central type is [Program]. A Program is created against a
// [gl.Context] and lazily linked on first use:
//
//	pr := glprog.NewProgram(ctx, &glprog.ProgramOptions{
//		ID:             "sprites",
//		VertexSource:   vsrc,
//		FragmentSource: fsrc,
//	})
//	defer pr.Release()
//
// Each frame, buffers are bound by attribute name, uniforms by uniform
// name, and the draw topology computed during buffer binding is passed
// through to the draw call:
//
//	pr.SetBuffers(map[string]*glprog.Buffer{
//		"position": positions,
//		"color":    colors,
//		"indices":  indices,
//	})
//	pr.SetUniforms(map[string]any{
//		"projection": proj[:],
//		"tex":        texture,
//	})
//	pr.Draw(pr.BoundDraw(gl.TRIANGLES, n, 0))
//
// Introspection happens once per link; binding is map lookups only.
// All operations issue commands synchronously against the single
// context they were created with, in caller order. Nothing here is
// safe for concurrent use: a GL context belongs to one OS thread, and
// so do the objects bound to it.
package glprog

// Debug enables verbose logging of binding and draw operations.
var Debug = false

// DefaultVertexShader is the vertex shader used when a program is
// constructed without a vertex shader or source.
const DefaultVertexShader = `#version 330 core
in vec4 position;
void main() {
	gl_Position = position;
}
`

// DefaultFragmentShader is the fragment shader used when a program is
// constructed without a fragment shader or source.
const DefaultFragmentShader = `#version 330 core
out vec4 fragColor;
void main() {
	fragColor = vec4(0.0, 0.0, 0.0, 1.0);
}
`
