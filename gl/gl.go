// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl defines the graphics context interface and associated
// types through which all GPU commands are issued.
//
// The [Context] interface covers the WebGL1 / OpenGL ES 2 subset of the
// API that program linking, introspection, buffer and texture binding,
// and drawing require, plus the instanced draw entry points. Contexts
// are passed explicitly to everything that needs one: there is no
// package-global context, so call ordering and test isolation are
// always explicit. The desktop implementation is in the opengl package;
// tests use in-memory fakes.
package gl

// Enum is a GL enumerated constant, as used for binding targets,
// type tags, state names, and draw modes.
type Enum uint32

// Typed native object handles. The zero value of each is "no object".
type (
	// Buffer is a native buffer object handle.
	Buffer struct{ V uint32 }

	// Program is a native linked-program object handle.
	Program struct{ V uint32 }

	// Shader is a native shader object handle.
	Shader struct{ V uint32 }

	// Texture is a native texture object handle.
	Texture struct{ V uint32 }
)

// Valid reports whether the handle refers to an object.
func (b Buffer) Valid() bool { return b.V != 0 }

// Valid reports whether the handle refers to an object.
func (p Program) Valid() bool { return p.V != 0 }

// Valid reports whether the handle refers to an object.
func (s Shader) Valid() bool { return s.V != 0 }

// Valid reports whether the handle refers to an object.
func (t Texture) Valid() bool { return t.V != 0 }

// Attrib is an attribute slot location on a linked program.
// A negative value means the attribute is not present.
type Attrib struct{ V int32 }

// Valid reports whether the location refers to an active attribute.
func (a Attrib) Valid() bool { return a.V >= 0 }

// Uniform is a uniform location on a linked program.
// A negative value means the uniform is not present.
type Uniform struct{ V int32 }

// Valid reports whether the location refers to an active uniform.
func (u Uniform) Valid() bool { return u.V >= 0 }

// Features is a bitmask of optional capabilities a [Context] provides
// beyond the baseline API tier.
type Features uint

const (
	// FeatureInstancing marks support for the instanced draw entry
	// points, either natively or through a vendor extension wired in
	// by the context implementation.
	FeatureInstancing Features = 1 << iota

	// FeatureUniformBlocks marks support for uniform block
	// introspection (ACTIVE_UNIFORM_BLOCKS and friends).
	FeatureUniformBlocks

	// FeatureTransformFeedback marks support for transform feedback
	// introspection queries.
	FeatureTransformFeedback
)

// Has reports whether all features in x are present in f.
func (f Features) Has(x Features) bool { return f&x == x }

// Caps describes the capabilities of a [Context].
type Caps struct {
	// Features is the set of optional capabilities available.
	Features Features

	// MaxVertexAttribs is the number of vertex attribute slots.
	MaxVertexAttribs int

	// MaxTextureUnits is the number of combined texture image units.
	MaxTextureUnits int
}
