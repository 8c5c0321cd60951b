// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureBind(t *testing.T) {
	ctx := newFakeContext()
	tx := NewTexture(ctx, "checker")
	assert.Empty(t, ctx.calls("CreateTexture"))

	tx.Bind(2)
	assert.Len(t, ctx.calls("CreateTexture"), 1)
	assert.Equal(t, tx.Handle().V, ctx.boundTextures[2])

	tx.Bind(0)
	assert.Equal(t, tx.Handle().V, ctx.boundTextures[0])
	assert.Len(t, ctx.calls("CreateTexture"), 1)
}

func TestTextureSetFromGoImage(t *testing.T) {
	ctx := newFakeContext()
	tx := NewTexture(ctx, "checker")

	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	require.NoError(t, tx.SetFromGoImage(img))

	assert.Equal(t, image.Pt(4, 2), tx.Size)
	assert.Equal(t, []string{"TexImage2D 4x2"}, ctx.calls("TexImage2D"))
	assert.NotEmpty(t, ctx.calls("TexParameteri"))
}

func TestTextureRelease(t *testing.T) {
	ctx := newFakeContext()
	tx := NewTexture(ctx, "checker")
	tx.Bind(0)

	tx.Release()
	assert.Len(t, ctx.calls("DeleteTexture"), 1)
	tx.Release()
	assert.Len(t, ctx.calls("DeleteTexture"), 1)
}

func TestAttributesSetBuffer(t *testing.T) {
	ctx := newFakeContext()
	at := NewAttributes(ctx)

	// layout zero values fall back to 4 components of FLOAT
	buf := NewVertexBuffer(ctx, []float32{1, 2, 3, 4}, Layout{})
	at.SetBuffer(0, buf)
	assert.Equal(t, []string{"VertexAttribPointer 0 size=4"}, ctx.calls("VertexAttribPointer"))
	assert.Equal(t, buf.Handle().V, ctx.pointers[0])

	at.Enable(1)
	assert.True(t, at.IsEnabled(1))
	at.Disable(1)
	assert.False(t, at.IsEnabled(1))

	at.SetDivisor(1, 1)
	assert.Equal(t, 1, ctx.divisors[1])
}
