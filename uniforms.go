// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/glprog/gl"
)

// uniformSetter pushes values to one active uniform. It is built once
// at link time from introspected metadata and invoked on every
// [Program.SetUniforms] call, so the shape checks it performs per call
// are length and kind checks only; no allocation on the accepted paths.
type uniformSetter struct {
	name     string
	utype    gl.Enum
	size     int // array element count, 1 for non-arrays
	isArray  bool
	location gl.Uniform
	sampler  bool

	// textureUnit is the texture unit assigned to a sampler uniform,
	// -1 until the first texture value arrives. First write wins; the
	// unit is never reassigned for the program's lifetime.
	textureUnit int

	set func(v any) error
}

// newUniformSetter builds the typed setter for one introspected
// uniform. Sampler setters accept a texture-unit index (int); all
// others accept a value of the GL type's shape.
func newUniformSetter(ctx gl.Context, name string, utype gl.Enum, size int, isArray bool, loc gl.Uniform) (*uniformSetter, error) {
	ut, ok := uniformTypes[utype]
	if !ok {
		return nil, fmt.Errorf("glprog: uniform %q has unsupported GL type 0x%04X", name, uint32(utype))
	}
	us := &uniformSetter{
		name:        name,
		utype:       utype,
		size:        max(size, 1),
		isArray:     isArray,
		location:    loc,
		textureUnit: -1,
	}
	want := ut.components * us.size

	switch ut.kind {
	case kindSampler:
		us.sampler = true
		us.set = func(v any) error {
			unit, ok := v.(int)
			if !ok {
				return us.mismatch(v, 0, 0)
			}
			ctx.Uniform1i(loc, unit)
			return nil
		}

	case kindFloat:
		if us.size > 1 || isArray {
			us.set = func(v any) error {
				fv, err := us.floats(v, want)
				if err != nil {
					return err
				}
				ctx.Uniform1fv(loc, fv)
				return nil
			}
		} else {
			us.set = func(v any) error {
				f, ok := floatScalar(v)
				if !ok {
					return us.mismatch(v, 0, 0)
				}
				ctx.Uniform1f(loc, f)
				return nil
			}
		}

	case kindFloatVec:
		push := floatVecFunc(ctx, ut.components)
		us.set = func(v any) error {
			fv, err := us.floats(v, want)
			if err != nil {
				return err
			}
			push(loc, fv)
			return nil
		}

	case kindMatrix:
		push := matrixFunc(ctx, ut.components)
		us.set = func(v any) error {
			fv, err := us.floats(v, want)
			if err != nil {
				return err
			}
			push(loc, fv)
			return nil
		}

	case kindInt, kindBool:
		if us.size > 1 || isArray {
			us.set = func(v any) error {
				iv, err := us.ints(v, want)
				if err != nil {
					return err
				}
				ctx.Uniform1iv(loc, iv)
				return nil
			}
		} else {
			us.set = func(v any) error {
				i, ok := intScalar(v)
				if !ok {
					return us.mismatch(v, 0, 0)
				}
				ctx.Uniform1i(loc, i)
				return nil
			}
		}

	case kindIntVec, kindBoolVec:
		push := intVecFunc(ctx, ut.components)
		us.set = func(v any) error {
			iv, err := us.ints(v, want)
			if err != nil {
				return err
			}
			push(loc, iv)
			return nil
		}
	}
	return us, nil
}

func (us *uniformSetter) mismatch(v any, want, got int) error {
	return &TypeMismatchError{Uniform: us.name, Type: us.utype, Value: v, Want: want, Got: got}
}

// floats coerces the accepted float-family shapes to a []float32 of
// exactly want components.
func (us *uniformSetter) floats(v any, want int) ([]float32, error) {
	var fv []float32
	switch x := v.(type) {
	case []float32:
		fv = x
	case [2]float32:
		fv = x[:]
	case [3]float32:
		fv = x[:]
	case [4]float32:
		fv = x[:]
	case [9]float32:
		fv = x[:]
	case [16]float32:
		fv = x[:]
	case mgl32.Vec2:
		fv = x[:]
	case mgl32.Vec3:
		fv = x[:]
	case mgl32.Vec4:
		fv = x[:]
	case mgl32.Mat2:
		fv = x[:]
	case mgl32.Mat3:
		fv = x[:]
	case mgl32.Mat4:
		fv = x[:]
	default:
		return nil, us.mismatch(v, 0, 0)
	}
	if len(fv) != want {
		return nil, us.mismatch(v, want, len(fv))
	}
	return fv, nil
}

// ints coerces the accepted integer-family shapes to a []int32 of
// exactly want components. Bool slices are converted; that path
// allocates, which is acceptable because boolean vector uniforms are
// rare.
func (us *uniformSetter) ints(v any, want int) ([]int32, error) {
	var iv []int32
	switch x := v.(type) {
	case []int32:
		iv = x
	case [2]int32:
		iv = x[:]
	case [3]int32:
		iv = x[:]
	case [4]int32:
		iv = x[:]
	case []int:
		iv = make([]int32, len(x))
		for i, n := range x {
			iv[i] = int32(n)
		}
	case []bool:
		iv = make([]int32, len(x))
		for i, b := range x {
			if b {
				iv[i] = 1
			}
		}
	default:
		return nil, us.mismatch(v, 0, 0)
	}
	if len(iv) != want {
		return nil, us.mismatch(v, want, len(iv))
	}
	return iv, nil
}

func floatScalar(v any) (float32, bool) {
	switch x := v.(type) {
	case float32:
		return x, true
	case float64:
		return float32(x), true
	case int:
		return float32(x), true
	}
	return 0, false
}

func intScalar(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case uint32:
		return int(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func floatVecFunc(ctx gl.Context, components int) func(gl.Uniform, []float32) {
	switch components {
	case 2:
		return ctx.Uniform2fv
	case 3:
		return ctx.Uniform3fv
	default:
		return ctx.Uniform4fv
	}
}

func intVecFunc(ctx gl.Context, components int) func(gl.Uniform, []int32) {
	switch components {
	case 2:
		return ctx.Uniform2iv
	case 3:
		return ctx.Uniform3iv
	default:
		return ctx.Uniform4iv
	}
}

func matrixFunc(ctx gl.Context, components int) func(gl.Uniform, []float32) {
	switch components {
	case 4:
		return ctx.UniformMatrix2fv
	case 9:
		return ctx.UniformMatrix3fv
	default:
		return ctx.UniformMatrix4fv
	}
}
