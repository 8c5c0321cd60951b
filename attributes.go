// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import "github.com/gogpu/glprog/gl"

// Attributes issues the low-level vertex attribute array calls for
// one context. It is a stateless pass-through: every method maps to
// exactly one native call, and all attribute state lives on the
// context itself.
type Attributes struct {
	ctx gl.Context
}

// NewAttributes returns an attribute binder for the context.
func NewAttributes(ctx gl.Context) Attributes {
	return Attributes{ctx: ctx}
}

// Enable enables the attribute slot as an array source.
func (at Attributes) Enable(slot int) {
	at.ctx.EnableVertexAttribArray(attrib(slot))
}

// Disable disables the attribute slot. The GPU then reads a constant
// value for it.
func (at Attributes) Disable(slot int) {
	at.ctx.DisableVertexAttribArray(attrib(slot))
}

// SetBuffer binds buf as the slot's data source, reading elements per
// buf's layout.
func (at Attributes) SetBuffer(slot int, buf *Buffer) {
	buf.Bind()
	lay := buf.Layout
	size := lay.Size
	if size == 0 {
		size = 4
	}
	ty := lay.Type
	if ty == 0 {
		ty = gl.FLOAT
	}
	at.ctx.VertexAttribPointer(attrib(slot), size, ty, lay.Normalized, lay.Stride, lay.Offset)
}

// SetDivisor sets the slot's instancing divisor: 0 advances per
// vertex, 1 per instance.
func (at Attributes) SetDivisor(slot, divisor int) {
	at.ctx.VertexAttribDivisor(attrib(slot), divisor)
}

// IsEnabled reports whether the attribute slot is enabled.
func (at Attributes) IsEnabled(slot int) bool {
	return at.ctx.GetVertexAttribi(attrib(slot), gl.VERTEX_ATTRIB_ARRAY_ENABLED) != 0
}

func attrib(slot int) gl.Attrib {
	return gl.Attrib{V: int32(slot)}
}
