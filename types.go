// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import (
	"fmt"

	"github.com/gogpu/glprog/gl"
)

// uniformKind classifies how a uniform value is pushed to the GPU.
type uniformKind int32

const (
	kindFloat uniformKind = iota
	kindFloatVec
	kindMatrix
	kindInt
	kindIntVec
	kindBool
	kindBoolVec
	kindSampler
)

// uniformType describes one GL uniform type tag: its upload kind, the
// number of components per element, and its display name.
type uniformType struct {
	kind       uniformKind
	components int
	name       string
}

// uniformTypes maps the GL type tags reported by GetActiveUniform to
// their upload descriptions.
var uniformTypes = map[gl.Enum]uniformType{
	gl.FLOAT:      {kindFloat, 1, "FLOAT"},
	gl.FLOAT_VEC2: {kindFloatVec, 2, "FLOAT_VEC2"},
	gl.FLOAT_VEC3: {kindFloatVec, 3, "FLOAT_VEC3"},
	gl.FLOAT_VEC4: {kindFloatVec, 4, "FLOAT_VEC4"},

	gl.INT:               {kindInt, 1, "INT"},
	gl.INT_VEC2:          {kindIntVec, 2, "INT_VEC2"},
	gl.INT_VEC3:          {kindIntVec, 3, "INT_VEC3"},
	gl.INT_VEC4:          {kindIntVec, 4, "INT_VEC4"},
	gl.UNSIGNED_INT:      {kindInt, 1, "UNSIGNED_INT"},
	gl.UNSIGNED_INT_VEC2: {kindIntVec, 2, "UNSIGNED_INT_VEC2"},
	gl.UNSIGNED_INT_VEC3: {kindIntVec, 3, "UNSIGNED_INT_VEC3"},
	gl.UNSIGNED_INT_VEC4: {kindIntVec, 4, "UNSIGNED_INT_VEC4"},

	gl.BOOL:      {kindBool, 1, "BOOL"},
	gl.BOOL_VEC2: {kindBoolVec, 2, "BOOL_VEC2"},
	gl.BOOL_VEC3: {kindBoolVec, 3, "BOOL_VEC3"},
	gl.BOOL_VEC4: {kindBoolVec, 4, "BOOL_VEC4"},

	gl.FLOAT_MAT2: {kindMatrix, 4, "FLOAT_MAT2"},
	gl.FLOAT_MAT3: {kindMatrix, 9, "FLOAT_MAT3"},
	gl.FLOAT_MAT4: {kindMatrix, 16, "FLOAT_MAT4"},

	gl.SAMPLER_2D:        {kindSampler, 1, "SAMPLER_2D"},
	gl.SAMPLER_3D:        {kindSampler, 1, "SAMPLER_3D"},
	gl.SAMPLER_CUBE:      {kindSampler, 1, "SAMPLER_CUBE"},
	gl.SAMPLER_2D_SHADOW: {kindSampler, 1, "SAMPLER_2D_SHADOW"},
	gl.SAMPLER_2D_ARRAY:  {kindSampler, 1, "SAMPLER_2D_ARRAY"},
}

// TypeName returns the GL name of a type tag reported by attribute or
// uniform introspection, such as "FLOAT_VEC3", or a hex string for
// tags outside the supported set.
func TypeName(ty gl.Enum) string {
	if ut, ok := uniformTypes[ty]; ok {
		return ut.name
	}
	if at, ok := attribTypeNames[ty]; ok {
		return at
	}
	return fmt.Sprintf("0x%04X", uint32(ty))
}

// attribTypeNames covers the attribute-only type tags (matrices are
// valid attribute types too, but those are already in uniformTypes).
var attribTypeNames = map[gl.Enum]string{
	gl.BYTE:           "BYTE",
	gl.UNSIGNED_BYTE:  "UNSIGNED_BYTE",
	gl.SHORT:          "SHORT",
	gl.UNSIGNED_SHORT: "UNSIGNED_SHORT",
	gl.HALF_FLOAT:     "HALF_FLOAT",
}
