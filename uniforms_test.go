// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glprog/gl"
)

// testLoc is the uniform location every setter in these tests
// writes to on the fake context.
var testLoc = gl.Uniform{V: 7}

func newSetter(t *testing.T, ctx *fakeContext, utype gl.Enum, size int, isArray bool) *uniformSetter {
	t.Helper()
	us, err := newUniformSetter(ctx, "u", utype, size, isArray, testLoc)
	require.NoError(t, err)
	return us
}

func TestUniformSetterShapes(t *testing.T) {
	ident := mgl32.Ident4()
	tests := []struct {
		name  string
		utype gl.Enum
		value any
		want  any
	}{
		{"float32", gl.FLOAT, float32(1.5), float32(1.5)},
		{"float64", gl.FLOAT, 2.5, float32(2.5)},
		{"intAsFloat", gl.FLOAT, 3, float32(3)},
		{"vec2Slice", gl.FLOAT_VEC2, []float32{1, 2}, []float32{1, 2}},
		{"vec2Array", gl.FLOAT_VEC2, [2]float32{1, 2}, []float32{1, 2}},
		{"vec2", gl.FLOAT_VEC2, mgl32.Vec2{1, 2}, []float32{1, 2}},
		{"vec3", gl.FLOAT_VEC3, mgl32.Vec3{1, 2, 3}, []float32{1, 2, 3}},
		{"vec4", gl.FLOAT_VEC4, mgl32.Vec4{1, 2, 3, 4}, []float32{1, 2, 3, 4}},
		{"vec4Array", gl.FLOAT_VEC4, [4]float32{1, 2, 3, 4}, []float32{1, 2, 3, 4}},
		{"mat2", gl.FLOAT_MAT2, mgl32.Mat2{1, 0, 0, 1}, []float32{1, 0, 0, 1}},
		{"mat3Array", gl.FLOAT_MAT3, [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
			[]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}},
		{"mat4", gl.FLOAT_MAT4, ident, ident[:]},
		{"int", gl.INT, 5, 5},
		{"int32", gl.INT, int32(6), 6},
		{"uint32", gl.UNSIGNED_INT, uint32(7), 7},
		{"intVec2", gl.INT_VEC2, []int32{1, 2}, []int32{1, 2}},
		{"intVec2Array", gl.INT_VEC2, [2]int32{1, 2}, []int32{1, 2}},
		{"intVec3FromInts", gl.INT_VEC3, []int{1, 2, 3}, []int32{1, 2, 3}},
		{"boolTrue", gl.BOOL, true, 1},
		{"boolFalse", gl.BOOL, false, 0},
		{"boolVec2", gl.BOOL_VEC2, []bool{true, false}, []int32{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newFakeContext()
			us := newSetter(t, ctx, tt.utype, 1, false)
			require.NoError(t, us.set(tt.value))
			assert.Equal(t, tt.want, ctx.uniformValues[testLoc.V])
		})
	}
}

func TestUniformSetterArrays(t *testing.T) {
	ctx := newFakeContext()

	// float arrays flatten through the single-component upload
	us := newSetter(t, ctx, gl.FLOAT, 4, true)
	require.NoError(t, us.set([]float32{1, 2, 3, 4}))
	assert.Equal(t, []float32{1, 2, 3, 4}, ctx.uniformValues[testLoc.V])
	assert.Len(t, ctx.calls("Uniform1fv"), 1)

	// vector arrays upload all components in one call
	us = newSetter(t, ctx, gl.FLOAT_VEC3, 2, true)
	require.NoError(t, us.set([]float32{1, 2, 3, 4, 5, 6}))
	assert.Len(t, ctx.calls("Uniform3fv"), 1)

	// int arrays take both int32 and int data
	us = newSetter(t, ctx, gl.INT, 3, true)
	require.NoError(t, us.set([]int32{1, 2, 3}))
	require.NoError(t, us.set([]int{4, 5, 6}))
	assert.Equal(t, []int32{4, 5, 6}, ctx.uniformValues[testLoc.V])
	assert.Len(t, ctx.calls("Uniform1iv"), 2)
}

func TestUniformSetterMismatch(t *testing.T) {
	ctx := newFakeContext()

	var tme *TypeMismatchError

	// wrong element count
	us := newSetter(t, ctx, gl.FLOAT_VEC3, 1, false)
	err := us.set([]float32{1, 2})
	require.ErrorAs(t, err, &tme)
	assert.Equal(t, "u", tme.Uniform)
	assert.Equal(t, 3, tme.Want)
	assert.Equal(t, 2, tme.Got)

	// wrong kind entirely
	err = us.set("red")
	require.ErrorAs(t, err, &tme)

	// array length must cover every element
	us = newSetter(t, ctx, gl.FLOAT_VEC2, 3, true)
	err = us.set([]float32{1, 2})
	require.ErrorAs(t, err, &tme)
	assert.Equal(t, 6, tme.Want)
	assert.Equal(t, 2, tme.Got)

	// int shapes reject float slices
	us = newSetter(t, ctx, gl.INT_VEC2, 1, false)
	err = us.set([]float32{1, 2})
	require.ErrorAs(t, err, &tme)

	// nothing reached the context
	assert.Empty(t, ctx.calls("Uniform"))
}

func TestUniformSetterSampler(t *testing.T) {
	ctx := newFakeContext()
	us := newSetter(t, ctx, gl.SAMPLER_2D, 1, false)
	assert.True(t, us.sampler)
	assert.Equal(t, -1, us.textureUnit)

	require.NoError(t, us.set(3))
	assert.Equal(t, 3, ctx.uniformValues[testLoc.V])

	var tme *TypeMismatchError
	require.ErrorAs(t, us.set("tex0"), &tme)
}

func TestUniformSetterUnsupportedType(t *testing.T) {
	ctx := newFakeContext()
	_, err := newUniformSetter(ctx, "u", gl.Enum(0x8B65), 1, false, testLoc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported GL type")
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "FLOAT_VEC3", TypeName(gl.FLOAT_VEC3))
	assert.Equal(t, "FLOAT_MAT4", TypeName(gl.FLOAT_MAT4))
	assert.Equal(t, "SAMPLER_2D", TypeName(gl.SAMPLER_2D))
	assert.Equal(t, "UNSIGNED_BYTE", TypeName(gl.UNSIGNED_BYTE))
	assert.Equal(t, "0x1234", TypeName(gl.Enum(0x1234)))
}
