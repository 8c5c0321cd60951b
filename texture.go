// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import (
	"image"
	"image/draw"

	"github.com/gogpu/glprog/base/errors"
	"github.com/gogpu/glprog/gl"
)

// TextureBinder is what [Program.SetUniforms] accepts as the value of
// a sampler uniform: anything that can bind itself to a texture unit.
type TextureBinder interface {
	Bind(unit int)
}

// Texture is a native texture object. Programs never own textures:
// a texture passed to [Program.SetUniforms] is borrowed for that call
// and bound to the sampler's assigned unit.
type Texture struct {
	resource

	// Name identifies the texture in logs.
	Name string

	// Target is the texture target. Zero means TEXTURE_2D.
	Target gl.Enum

	// Size is the pixel size of the uploaded image.
	Size image.Point

	handle gl.Texture
}

// NewTexture creates a texture object for the TEXTURE_2D target
// without touching the GPU. Pixels are supplied with
// [Texture.SetFromGoImage].
func NewTexture(ctx gl.Context, name string) *Texture {
	tx := &Texture{Name: name, Target: gl.TEXTURE_2D}
	tx.init(ctx)
	return tx
}

// Bind binds the texture to the given texture unit.
func (tx *Texture) Bind(unit int) {
	if errors.Log(tx.ensureHandle()) != nil {
		return
	}
	tx.ctx.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	tx.ctx.BindTexture(tx.Target, tx.handle)
}

// SetFromGoImage uploads pixels from a standard Go image as RGBA8,
// converting as needed, with linear filtering and edge clamping.
// This is the minimal upload path used by samplers; format and mipmap
// machinery belongs to the caller.
func (tx *Texture) SetFromGoImage(img image.Image) error {
	if err := tx.ensureHandle(); err != nil {
		return errors.Log(err)
	}
	rimg := imageToRGBA(img)
	sz := rimg.Rect.Size()
	tx.Size = sz

	tx.ctx.BindTexture(tx.Target, tx.handle)
	tx.ctx.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	tx.ctx.TexImage2D(tx.Target, 0, gl.RGBA8, sz.X, sz.Y, gl.RGBA, gl.UNSIGNED_BYTE, rimg.Pix)
	tx.ctx.TexParameteri(tx.Target, gl.TEXTURE_MIN_FILTER, int(gl.LINEAR))
	tx.ctx.TexParameteri(tx.Target, gl.TEXTURE_MAG_FILTER, int(gl.LINEAR))
	tx.ctx.TexParameteri(tx.Target, gl.TEXTURE_WRAP_S, int(gl.CLAMP_TO_EDGE))
	tx.ctx.TexParameteri(tx.Target, gl.TEXTURE_WRAP_T, int(gl.CLAMP_TO_EDGE))
	return nil
}

// Handle returns the native texture handle, creating it if needed.
func (tx *Texture) Handle() gl.Texture {
	errors.Log(tx.ensureHandle())
	return tx.handle
}

// Release deletes the native texture object.
func (tx *Texture) Release() {
	tx.releaseOnce(func() {
		if tx.handle.Valid() {
			tx.ctx.DeleteTexture(tx.handle)
			tx.handle = gl.Texture{}
		}
	})
}

func (tx *Texture) ensureHandle() error {
	return tx.ensure(func() error {
		if tx.Target == 0 {
			tx.Target = gl.TEXTURE_2D
		}
		tx.handle = tx.ctx.CreateTexture()
		return nil
	})
}

// imageToRGBA returns img as an *image.RGBA, converting only when it
// is not one already.
func imageToRGBA(img image.Image) *image.RGBA {
	if rimg, ok := img.(*image.RGBA); ok {
		return rimg
	}
	rimg := image.NewRGBA(img.Bounds())
	draw.Draw(rimg, rimg.Rect, img, img.Bounds().Min, draw.Src)
	return rimg
}
