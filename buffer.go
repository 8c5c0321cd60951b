// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import (
	"unsafe"

	"github.com/gogpu/glprog/base/errors"
	"github.com/gogpu/glprog/gl"
)

// Layout describes how elements are read from a buffer when it is
// bound to an attribute slot, and, for element buffers, the index
// element type.
type Layout struct {
	// Size is the number of components per vertex, 1 through 4.
	// Zero means 4.
	Size int

	// Type is the component type. Zero means FLOAT.
	Type gl.Enum

	// Normalized maps integer components into [0,1] or [-1,1].
	Normalized bool

	// Stride is the byte distance between consecutive vertices.
	// Zero means tightly packed.
	Stride int

	// Offset is the byte offset of the first component.
	Offset int

	// Instanced marks per-instance data: the bound slot advances once
	// per instance (divisor 1) instead of once per vertex.
	Instanced bool

	// IndexType is the element type for index buffers,
	// UNSIGNED_SHORT or UNSIGNED_INT. Zero means UNSIGNED_SHORT.
	IndexType gl.Enum
}

// Buffer is a native buffer object together with the binding target
// and element layout that [Program.SetBuffers] needs. The native
// handle is created lazily on first upload or bind.
//
// A buffer whose Target is ELEMENT_ARRAY_BUFFER is treated as the
// element/index buffer by [Program.SetBuffers], regardless of its
// name in the buffer map.
type Buffer struct {
	resource

	// Name identifies the buffer in logs.
	Name string

	// Target is ARRAY_BUFFER or ELEMENT_ARRAY_BUFFER.
	Target gl.Enum

	// Usage is the data store usage hint. Zero means STATIC_DRAW.
	Usage gl.Enum

	// Layout describes the element layout for attribute binding.
	Layout Layout

	handle gl.Buffer
	size   int
}

// NewBuffer creates a buffer for the given target and layout without
// touching the GPU. Data is supplied later with [SetBufferData] or
// [Buffer.SetBytes].
func NewBuffer(ctx gl.Context, target gl.Enum, layout Layout) *Buffer {
	b := &Buffer{Target: target, Layout: layout}
	b.init(ctx)
	return b
}

// NewBufferFrom creates a buffer for the given target and layout and
// uploads data to it.
func NewBufferFrom[E any](ctx gl.Context, target gl.Enum, data []E, layout Layout) *Buffer {
	b := NewBuffer(ctx, target, layout)
	SetBufferData(b, data)
	return b
}

// NewVertexBuffer creates an ARRAY_BUFFER from float32 vertex data.
func NewVertexBuffer(ctx gl.Context, data []float32, layout Layout) *Buffer {
	return NewBufferFrom(ctx, gl.ARRAY_BUFFER, data, layout)
}

// IndexData is the set of element types an index buffer can hold.
type IndexData interface {
	~uint16 | ~uint32
}

// NewElementBuffer creates an ELEMENT_ARRAY_BUFFER from index data,
// recording the matching index element type in the layout.
func NewElementBuffer[E IndexData](ctx gl.Context, data []E) *Buffer {
	b := NewBuffer(ctx, gl.ELEMENT_ARRAY_BUFFER, Layout{})
	var e E
	if unsafe.Sizeof(e) == 2 {
		b.Layout.IndexType = gl.UNSIGNED_SHORT
	} else {
		b.Layout.IndexType = gl.UNSIGNED_INT
	}
	SetBufferData(b, data)
	return b
}

// SetBufferData uploads a slice of any fixed-size element type to the
// buffer, replacing its data store.
func SetBufferData[E any](b *Buffer, data []E) {
	b.SetBytes(toBytes(data))
}

// SetBytes uploads raw bytes to the buffer, replacing its data store.
func (b *Buffer) SetBytes(data []byte) {
	if errors.Log(b.ensureHandle()) != nil {
		return
	}
	usage := b.Usage
	if usage == 0 {
		usage = gl.STATIC_DRAW
	}
	b.ctx.BindBuffer(b.Target, b.handle)
	b.ctx.BufferData(b.Target, data, usage)
	b.size = len(data)
}

// Bind binds the buffer to its target.
func (b *Buffer) Bind() {
	if errors.Log(b.ensureHandle()) != nil {
		return
	}
	b.ctx.BindBuffer(b.Target, b.handle)
}

// Unbind unbinds the buffer's target.
func (b *Buffer) Unbind() {
	b.ctx.BindBuffer(b.Target, gl.Buffer{})
}

// Size returns the byte size of the uploaded data store.
func (b *Buffer) Size() int {
	return b.size
}

// Handle returns the native buffer handle, creating it if needed.
func (b *Buffer) Handle() gl.Buffer {
	errors.Log(b.ensureHandle())
	return b.handle
}

// Release deletes the native buffer object.
func (b *Buffer) Release() {
	b.releaseOnce(func() {
		if b.handle.Valid() {
			b.ctx.DeleteBuffer(b.handle)
			b.handle = gl.Buffer{}
		}
	})
}

func (b *Buffer) ensureHandle() error {
	return b.ensure(func() error {
		b.handle = b.ctx.CreateBuffer()
		return nil
	})
}

// toBytes returns the raw byte view of a slice of fixed-size elements.
func toBytes[E any](data []E) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(data[0])))
}
