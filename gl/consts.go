// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// Standard GL constant values for the API subset covered by [Context].
const (
	// Buffer binding targets and usage.
	ARRAY_BUFFER                 Enum = 0x8892
	ELEMENT_ARRAY_BUFFER         Enum = 0x8893
	ARRAY_BUFFER_BINDING         Enum = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING Enum = 0x8895
	STREAM_DRAW                  Enum = 0x88E0
	STATIC_DRAW                  Enum = 0x88E4
	DYNAMIC_DRAW                 Enum = 0x88E8

	// Draw modes.
	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_LOOP      Enum = 0x0002
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006

	// Element and component types.
	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406
	HALF_FLOAT     Enum = 0x140B

	// Shader object types and parameters.
	FRAGMENT_SHADER                Enum = 0x8B30
	VERTEX_SHADER                  Enum = 0x8B31
	SHADER_TYPE                    Enum = 0x8B4F
	DELETE_STATUS                  Enum = 0x8B80
	COMPILE_STATUS                 Enum = 0x8B81
	LINK_STATUS                    Enum = 0x8B82
	VALIDATE_STATUS                Enum = 0x8B83
	INFO_LOG_LENGTH                Enum = 0x8B84
	ATTACHED_SHADERS               Enum = 0x8B85
	ACTIVE_UNIFORMS                Enum = 0x8B86
	ACTIVE_UNIFORM_MAX_LENGTH      Enum = 0x8B87
	ACTIVE_ATTRIBUTES              Enum = 0x8B89
	ACTIVE_ATTRIBUTE_MAX_LENGTH    Enum = 0x8B8A
	SHADING_LANGUAGE_VERSION       Enum = 0x8B8C
	CURRENT_PROGRAM                Enum = 0x8B8D
	ACTIVE_UNIFORM_BLOCKS          Enum = 0x8A36
	TRANSFORM_FEEDBACK_BUFFER_MODE Enum = 0x8C7F
	TRANSFORM_FEEDBACK_VARYINGS    Enum = 0x8C83
	INTERLEAVED_ATTRIBS            Enum = 0x8C8C
	SEPARATE_ATTRIBS               Enum = 0x8C8D

	// Uniform type tags reported by GetActiveUniform/GetActiveAttrib.
	FLOAT_VEC2        Enum = 0x8B50
	FLOAT_VEC3        Enum = 0x8B51
	FLOAT_VEC4        Enum = 0x8B52
	INT_VEC2          Enum = 0x8B53
	INT_VEC3          Enum = 0x8B54
	INT_VEC4          Enum = 0x8B55
	BOOL              Enum = 0x8B56
	BOOL_VEC2         Enum = 0x8B57
	BOOL_VEC3         Enum = 0x8B58
	BOOL_VEC4         Enum = 0x8B59
	FLOAT_MAT2        Enum = 0x8B5A
	FLOAT_MAT3        Enum = 0x8B5B
	FLOAT_MAT4        Enum = 0x8B5C
	SAMPLER_2D        Enum = 0x8B5E
	SAMPLER_3D        Enum = 0x8B5F
	SAMPLER_CUBE      Enum = 0x8B60
	SAMPLER_2D_SHADOW Enum = 0x8B62
	SAMPLER_2D_ARRAY  Enum = 0x8DC1
	UNSIGNED_INT_VEC2 Enum = 0x8DC6
	UNSIGNED_INT_VEC3 Enum = 0x8DC7
	UNSIGNED_INT_VEC4 Enum = 0x8DC8

	// Vertex attribute array parameters.
	VERTEX_ATTRIB_ARRAY_ENABLED    Enum = 0x8622
	VERTEX_ATTRIB_ARRAY_SIZE       Enum = 0x8623
	VERTEX_ATTRIB_ARRAY_STRIDE     Enum = 0x8624
	VERTEX_ATTRIB_ARRAY_TYPE       Enum = 0x8625
	VERTEX_ATTRIB_ARRAY_NORMALIZED Enum = 0x886A
	VERTEX_ATTRIB_ARRAY_DIVISOR    Enum = 0x88FE

	// Textures.
	TEXTURE_2D         Enum = 0x0DE1
	TEXTURE_CUBE_MAP   Enum = 0x8513
	TEXTURE0           Enum = 0x84C0
	ACTIVE_TEXTURE     Enum = 0x84E0
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	NEAREST            Enum = 0x2600
	LINEAR             Enum = 0x2601
	REPEAT             Enum = 0x2901
	MIRRORED_REPEAT    Enum = 0x8370
	CLAMP_TO_EDGE      Enum = 0x812F

	// Pixel formats and transfer.
	ALPHA            Enum = 0x1906
	RGB              Enum = 0x1907
	RGBA             Enum = 0x1908
	RGBA8            Enum = 0x8058
	UNPACK_ALIGNMENT Enum = 0x0CF5

	// Capabilities and state.
	CULL_FACE    Enum = 0x0B44
	DEPTH_TEST   Enum = 0x0B71
	SCISSOR_TEST Enum = 0x0C11
	BLEND        Enum = 0x0BE2

	// Clear masks.
	DEPTH_BUFFER_BIT   Enum = 0x00000100
	STENCIL_BUFFER_BIT Enum = 0x00000400
	COLOR_BUFFER_BIT   Enum = 0x00004000

	// Implementation limits and strings.
	MAX_VERTEX_ATTRIBS               Enum = 0x8869
	MAX_COMBINED_TEXTURE_IMAGE_UNITS Enum = 0x8B4D
	VENDOR                           Enum = 0x1F00
	RENDERER                         Enum = 0x1F01
	VERSION                          Enum = 0x1F02

	// Error flags.
	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	NONE Enum = 0
)
