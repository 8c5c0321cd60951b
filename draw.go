// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/glprog/gl"
)

// DrawParams selects one of the four native draw variants: indexed or
// not, crossed with instanced or not.
type DrawParams struct {
	// Mode is the primitive topology, TRIANGLES when zero.
	Mode gl.Enum

	// VertexCount is the number of indices (indexed) or vertices
	// (non-indexed) to draw.
	VertexCount int

	// Offset is the byte offset into the bound element buffer
	// (indexed) or the first vertex (non-indexed).
	Offset int

	// Indexed draws from the bound element buffer using IndexType
	// elements, UNSIGNED_SHORT when zero.
	Indexed   bool
	IndexType gl.Enum

	// Instanced draws InstanceCount instances in one call.
	Instanced     bool
	InstanceCount int
}

// BoundDraw returns DrawParams carrying the topology computed by the
// last [Program.SetBuffers] call, so a draw stays consistent with
// what was bound: indexed when an element buffer was supplied, with
// its element type, and instanced when any bound buffer layout was.
func (p *Program) BoundDraw(mode gl.Enum, vertexCount, instanceCount int) DrawParams {
	return DrawParams{
		Mode:          mode,
		VertexCount:   vertexCount,
		Indexed:       p.indexed,
		IndexType:     p.indexType,
		Instanced:     p.instanced,
		InstanceCount: instanceCount,
	}
}

// Draw makes the program current and issues exactly one native draw
// call, chosen by the indexed and instanced flags in dp. Instanced
// draws on a context without [gl.FeatureInstancing] fail with
// [ErrInstancingUnsupported] before any native call.
func (p *Program) Draw(dp DrawParams) error {
	if dp.Instanced && !p.ctx.Caps().Features.Has(gl.FeatureInstancing) {
		return fmt.Errorf("glprog: program %q: %w", p.ID, ErrInstancingUnsupported)
	}
	if err := p.Use(); err != nil {
		return err
	}
	mode := dp.Mode
	if mode == 0 {
		mode = gl.TRIANGLES
	}
	ity := dp.IndexType
	if ity == 0 {
		ity = gl.UNSIGNED_SHORT
	}
	if Debug {
		slog.Debug("glprog.Program Draw", "program", p.ID, "mode", mode,
			"count", dp.VertexCount, "indexed", dp.Indexed, "instanced", dp.Instanced,
			"instances", dp.InstanceCount)
	}
	switch {
	case dp.Indexed && dp.Instanced:
		p.ctx.DrawElementsInstanced(mode, dp.VertexCount, ity, dp.Offset, dp.InstanceCount)
	case dp.Instanced:
		p.ctx.DrawArraysInstanced(mode, dp.Offset, dp.VertexCount, dp.InstanceCount)
	case dp.Indexed:
		p.ctx.DrawElements(mode, dp.VertexCount, ity, dp.Offset)
	default:
		p.ctx.DrawArrays(mode, dp.Offset, dp.VertexCount)
	}
	return nil
}
