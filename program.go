// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/gogpu/glprog/base/errors"
	"github.com/gogpu/glprog/gl"
)

// ProgramOptions configures [NewProgram].
type ProgramOptions struct {
	// ID names the program in logs and error messages. When empty it
	// is derived from the vertex shader's name, or auto-generated.
	ID string

	// Vertex and Fragment are pre-compiled shaders to link. The
	// program borrows them: Release leaves them alive.
	Vertex, Fragment *Shader

	// VertexSource and FragmentSource are compiled by the program when
	// the corresponding shader is nil. The program owns shaders it
	// compiles and releases them with itself. When neither a shader
	// nor a source is given for a stage, the built-in passthrough
	// shader of that stage is used.
	VertexSource, FragmentSource string

	// Uniforms are default uniform values, applied once immediately
	// after a successful link.
	Uniforms map[string]any
}

// ActiveInfo describes one introspected attribute or uniform.
type ActiveInfo struct {
	// Name is the declared name, with any trailing "[0]" array suffix
	// stripped for uniforms.
	Name string

	// Size is the declared array element count, 1 for non-arrays.
	Size int

	// Type is the GL type tag; see [TypeName].
	Type gl.Enum

	// Location is the attribute slot or uniform location.
	Location int
}

// Program is a linked shader program with introspection-driven,
// name-based binding of buffers and uniforms.
//
// The native handle is created lazily: the first operation that needs
// a linked program compiles, attaches, links, validates, and
// introspects, exactly once. On link failure every later operation
// returns the same [*LinkError]; recovery means building a new Program
// from corrected shaders.
//
// Binding calls mutate shared context state (enabled attribute slots,
// buffer and texture-unit bindings, the current program). Interleaving
// binding sequences of two Programs on one context is the caller's
// business: each SetBuffers re-derives its draw topology from scratch,
// but it does not restore state a different program changed.
type Program struct {
	resource

	// ID names the program in logs and error messages.
	ID string

	// VertexShader and FragmentShader are the linked stages. Set
	// before linking when supplied in options, or to the shaders the
	// program compiled itself.
	VertexShader, FragmentShader *Shader

	ownsVertex, ownsFragment     bool
	vertexSource, fragmentSource string
	defaults                     map[string]any

	handle gl.Program
	attrs  Attributes

	// attributeLocations maps active attribute names to slots. Built
	// once by introspection, read-only afterwards.
	attributeLocations map[string]int
	attributeInfo      []ActiveInfo

	// uniformSetters maps active uniform names (array suffix
	// stripped) to their typed setters. Built once by introspection,
	// read-only afterwards.
	uniformSetters map[string]*uniformSetter
	uniformInfo    []ActiveInfo

	// filledLocations tracks which attribute names received a buffer,
	// reset by SetBuffers unless accumulating.
	filledLocations map[string]bool

	// warnedNames suppresses repeat advisory warnings, per name, for
	// the program's lifetime.
	warnedNames map[string]bool

	// textureUnitCounter hands out texture units to sampler uniforms,
	// monotonically; units are never reclaimed.
	textureUnitCounter int

	// Draw topology computed by the last SetBuffers call.
	indexed   bool
	indexType gl.Enum
	instanced bool
}

var programCounter atomic.Uint64

// NewProgram creates a program against the given context without
// touching the GPU. Linking happens on the first operation that needs
// it, or explicitly through [Program.Link].
func NewProgram(ctx gl.Context, opts *ProgramOptions) *Program {
	p := &Program{}
	p.init(ctx)
	p.attrs = NewAttributes(ctx)
	if opts != nil {
		p.ID = opts.ID
		p.VertexShader = opts.Vertex
		p.FragmentShader = opts.Fragment
		p.vertexSource = opts.VertexSource
		p.fragmentSource = opts.FragmentSource
		p.defaults = opts.Uniforms
	}
	if p.ID == "" {
		if p.VertexShader != nil && p.VertexShader.Name != "" {
			p.ID = p.VertexShader.Name
		} else {
			p.ID = fmt.Sprintf("program-%d", programCounter.Add(1))
		}
	}
	return p
}

// Link compiles any missing shaders, links and validates the program,
// and introspects its active attributes and uniforms. It runs at most
// once; later calls return the first outcome. Operations that need a
// linked program call it implicitly.
func (p *Program) Link() error {
	return p.ensure(p.link)
}

func (p *Program) link() error {
	vs, fs, err := p.resolveShaders()
	if err != nil {
		return err
	}
	h := p.ctx.CreateProgram()
	p.ctx.AttachShader(h, vs.Handle())
	p.ctx.AttachShader(h, fs.Handle())
	p.ctx.LinkProgram(h)
	p.ctx.ValidateProgram(h)
	p.ctx.DetachShader(h, vs.Handle())
	p.ctx.DetachShader(h, fs.Handle())
	if p.ctx.GetProgrami(h, gl.LINK_STATUS) == 0 || p.ctx.GetProgrami(h, gl.VALIDATE_STATUS) == 0 {
		lg := p.ctx.GetProgramInfoLog(h)
		p.ctx.DeleteProgram(h)
		p.releaseOwnedShaders()
		return &LinkError{Program: p.ID, Log: lg}
	}
	p.handle = h
	p.introspect()
	p.filledLocations = make(map[string]bool)
	p.warnedNames = make(map[string]bool)
	p.textureUnitCounter = 0
	if p.defaults != nil {
		return p.SetUniforms(p.defaults)
	}
	return nil
}

// resolveShaders returns the two stages to link, compiling from source
// where no pre-built shader was supplied. Shaders compiled here are
// owned by the program; a failure after the vertex stage compiled
// releases it again.
func (p *Program) resolveShaders() (vs, fs *Shader, err error) {
	vs = p.VertexShader
	if vs == nil {
		src := p.vertexSource
		if src == "" {
			src = DefaultVertexShader
		}
		vs, err = NewShader(p.ctx, gl.VERTEX_SHADER, p.ID+".vert", src)
		if err != nil {
			return nil, nil, err
		}
		p.VertexShader = vs
		p.ownsVertex = true
	}
	fs = p.FragmentShader
	if fs == nil {
		src := p.fragmentSource
		if src == "" {
			src = DefaultFragmentShader
		}
		fs, err = NewShader(p.ctx, gl.FRAGMENT_SHADER, p.ID+".frag", src)
		if err != nil {
			p.releaseOwnedShaders()
			return nil, nil, err
		}
		p.FragmentShader = fs
		p.ownsFragment = true
	}
	return vs, fs, nil
}

func (p *Program) releaseOwnedShaders() {
	if p.ownsVertex && p.VertexShader != nil {
		p.VertexShader.Release()
		p.VertexShader = nil
		p.ownsVertex = false
	}
	if p.ownsFragment && p.FragmentShader != nil {
		p.FragmentShader.Release()
		p.FragmentShader = nil
		p.ownsFragment = false
	}
}

// introspect builds the attribute and uniform maps from the linked
// program. Runs once per link; binding operations afterwards are pure
// map lookups with no further introspection calls.
func (p *Program) introspect() {
	h := p.handle
	an := p.ctx.GetProgrami(h, gl.ACTIVE_ATTRIBUTES)
	p.attributeLocations = make(map[string]int, an)
	p.attributeInfo = make([]ActiveInfo, an)
	for i := 0; i < an; i++ {
		name, size, ty := p.ctx.GetActiveAttrib(h, i)
		loc := p.ctx.GetAttribLocation(h, name)
		p.attributeInfo[i] = ActiveInfo{Name: name, Size: size, Type: ty, Location: int(loc.V)}
		if loc.Valid() {
			p.attributeLocations[name] = int(loc.V)
		}
	}

	un := p.ctx.GetProgrami(h, gl.ACTIVE_UNIFORMS)
	p.uniformSetters = make(map[string]*uniformSetter, un)
	p.uniformInfo = make([]ActiveInfo, un)
	for i := 0; i < un; i++ {
		name, size, ty := p.ctx.GetActiveUniform(h, i)
		base, isArray := strings.CutSuffix(name, "[0]")
		loc := p.ctx.GetUniformLocation(h, name)
		p.uniformInfo[i] = ActiveInfo{Name: base, Size: size, Type: ty, Location: int(loc.V)}
		us, err := newUniformSetter(p.ctx, base, ty, size, isArray, loc)
		if err != nil {
			slog.Warn("glprog.Program: skipping uniform with unsupported type",
				"program", p.ID, "uniform", name, "type", TypeName(ty))
			continue
		}
		p.uniformSetters[base] = us
	}
}

// Use makes the program the context's current program, linking first
// if needed.
func (p *Program) Use() error {
	if err := p.Link(); err != nil {
		return err
	}
	p.ctx.UseProgram(p.handle)
	return nil
}

// Handle returns the native program handle, zero until linked.
func (p *Program) Handle() gl.Program {
	return p.handle
}

// Release deletes the native program handle and any shaders the
// program compiled itself. Borrowed shaders, buffers, and textures
// are left alive. Safe to call more than once.
func (p *Program) Release() {
	p.releaseOnce(func() {
		p.releaseOwnedShaders()
		if p.handle.Valid() {
			p.ctx.DeleteProgram(p.handle)
			p.handle = gl.Program{}
		}
	})
}

// BufferBindOptions adjusts [Program.SetBuffersOptions]. The zero
// value is the default behavior: reset fill tracking and run the
// unsupplied-attribute check.
type BufferBindOptions struct {
	// Accumulate keeps the filled-location tracking from previous
	// calls instead of resetting it, for binding in increments.
	Accumulate bool

	// SkipCheck skips the advisory unsupplied-attribute check.
	SkipCheck bool
}

// bufferBinding pairs a buffer with its name in the map, so warnings
// and fill tracking speak the caller's language.
type bufferBinding struct {
	name string
	buf  *Buffer
}

// SetBuffers binds named buffers to the program's attribute slots for
// the next draw call, with default options.
//
// Names that match an introspected attribute bind to that attribute's
// slot. A buffer declaring the ELEMENT_ARRAY_BUFFER target is the
// index buffer, regardless of name. Names matching neither are
// ignored with a once-per-name warning. Slots with no buffer in this
// call are disabled.
//
// The call computes the draw topology (indexed, index element type,
// instanced) from scratch; [Program.BoundDraw] passes it to Draw.
func (p *Program) SetBuffers(buffers map[string]*Buffer) error {
	return p.SetBuffersOptions(buffers, BufferBindOptions{})
}

// SetBuffersOptions is [Program.SetBuffers] with explicit options.
func (p *Program) SetBuffersOptions(buffers map[string]*Buffer, opts BufferBindOptions) error {
	if err := p.Link(); err != nil {
		return err
	}

	// Partition before touching any state, so a conflict error leaves
	// the native bindings and the fill tracking as they were.
	count := len(p.attributeInfo)
	locations := make([]bufferBinding, count)
	var element bufferBinding
	for _, name := range sortedKeys(buffers) {
		buf := buffers[name]
		loc, isAttr := p.attributeLocations[name]
		isElement := buf.Target == gl.ELEMENT_ARRAY_BUFFER
		switch {
		case isAttr && isElement:
			return errors.Log(&BindingConflictError{Program: p.ID, Name: name})
		case isElement:
			if element.buf != nil {
				return errors.Log(&BindingConflictError{Program: p.ID, Name: name, Prior: element.name})
			}
			element = bufferBinding{name: name, buf: buf}
		case isAttr:
			locations[loc] = bufferBinding{name: name, buf: buf}
		default:
			p.warnOnce(name, "glprog.Program SetBuffers: buffer has no matching attribute or element target",
				"buffer", name)
		}
	}

	if !opts.Accumulate {
		clear(p.filledLocations)
	}
	p.instanced = false
	p.indexed = false
	p.indexType = 0

	for slot := 0; slot < count; slot++ {
		bb := locations[slot]
		if bb.buf == nil {
			p.attrs.Disable(slot)
			continue
		}
		p.attrs.Enable(slot)
		p.attrs.SetBuffer(slot, bb.buf)
		divisor := 0
		if bb.buf.Layout.Instanced {
			divisor = 1
			p.instanced = true
		}
		p.attrs.SetDivisor(slot, divisor)
		p.filledLocations[bb.name] = true
	}

	if element.buf != nil {
		element.buf.Bind()
		p.indexed = true
		p.indexType = element.buf.Layout.IndexType
		if p.indexType == 0 {
			p.indexType = gl.UNSIGNED_SHORT
		}
	}

	if !opts.SkipCheck {
		for _, ai := range p.attributeInfo {
			if !p.filledLocations[ai.Name] {
				p.warnOnce(ai.Name, "glprog.Program SetBuffers: attribute has no buffer supplied",
					"attribute", ai.Name, "slot", ai.Location)
			}
		}
	}
	if Debug {
		slog.Debug("glprog.Program SetBuffers", "program", p.ID, "buffers", len(buffers),
			"indexed", p.indexed, "instanced", p.instanced)
	}
	return nil
}

// UnsetBuffers disables every attribute slot from 1 upward and unbinds
// the element-buffer target, leaving a clean binding state between
// unrelated draws. Slot 0 is never disabled.
func (p *Program) UnsetBuffers() error {
	if err := p.Link(); err != nil {
		return err
	}
	count := p.AttributeCount()
	for slot := 1; slot < count; slot++ {
		p.attrs.Disable(slot)
	}
	p.ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gl.Buffer{})
	return nil
}

// SetUniforms pushes named values to the program's uniforms. Names
// with no matching active uniform are ignored without any native
// call: shaders commonly declare a superset of what a caller sets.
//
// A [TextureBinder] value for a sampler uniform is bound to the
// sampler's texture unit, assigned from the program's monotonic unit
// counter on first use and stable for the program's lifetime. An int
// value for a sampler sets the unit directly. Value shapes that do
// not match the uniform's introspected type fail with
// [*TypeMismatchError].
func (p *Program) SetUniforms(uniforms map[string]any) error {
	if err := p.Use(); err != nil {
		return err
	}
	for _, name := range sortedKeys(uniforms) {
		us, ok := p.uniformSetters[name]
		if !ok {
			continue
		}
		v := uniforms[name]
		if us.sampler {
			if err := p.setSampler(us, v); err != nil {
				return errors.Log(err)
			}
			continue
		}
		if err := us.set(v); err != nil {
			return errors.Log(err)
		}
	}
	return nil
}

// setSampler binds a texture value to the sampler's unit and points
// the sampler at it. The unit is assigned once, first write wins.
func (p *Program) setSampler(us *uniformSetter, v any) error {
	switch tex := v.(type) {
	case TextureBinder:
		if us.textureUnit < 0 {
			us.textureUnit = p.textureUnitCounter
			p.textureUnitCounter++
		}
		tex.Bind(us.textureUnit)
		return us.set(us.textureUnit)
	case int:
		return us.set(tex)
	default:
		return us.mismatch(v, 0, 0)
	}
}

// AttributeCount returns the number of active attributes.
func (p *Program) AttributeCount() int {
	if errors.Log(p.Link()) != nil {
		return 0
	}
	return len(p.attributeInfo)
}

// ActiveAttrib returns the introspected attribute at the given index
// in [0, AttributeCount).
func (p *Program) ActiveAttrib(index int) (ActiveInfo, error) {
	if err := p.Link(); err != nil {
		return ActiveInfo{}, err
	}
	if index < 0 || index >= len(p.attributeInfo) {
		return ActiveInfo{}, fmt.Errorf("glprog: program %q: attribute index %d out of range [0, %d)",
			p.ID, index, len(p.attributeInfo))
	}
	return p.attributeInfo[index], nil
}

// AttributeLocation returns the slot of a named active attribute.
func (p *Program) AttributeLocation(name string) (int, bool) {
	if errors.Log(p.Link()) != nil {
		return 0, false
	}
	loc, ok := p.attributeLocations[name]
	return loc, ok
}

// AttributeLocations returns a copy of the attribute name to slot
// mapping. The mapping itself is immutable after linking.
func (p *Program) AttributeLocations() map[string]int {
	if errors.Log(p.Link()) != nil {
		return nil
	}
	return maps.Clone(p.attributeLocations)
}

// UniformCount returns the number of active uniforms.
func (p *Program) UniformCount() int {
	if errors.Log(p.Link()) != nil {
		return 0
	}
	return len(p.uniformInfo)
}

// ActiveUniform returns the introspected uniform at the given index
// in [0, UniformCount).
func (p *Program) ActiveUniform(index int) (ActiveInfo, error) {
	if err := p.Link(); err != nil {
		return ActiveInfo{}, err
	}
	if index < 0 || index >= len(p.uniformInfo) {
		return ActiveInfo{}, fmt.Errorf("glprog: program %q: uniform index %d out of range [0, %d)",
			p.ID, index, len(p.uniformInfo))
	}
	return p.uniformInfo[index], nil
}

// UniformLocation returns the location of a named active uniform, or
// an invalid location if there is none.
func (p *Program) UniformLocation(name string) gl.Uniform {
	if errors.Log(p.Link()) != nil {
		return gl.Uniform{V: -1}
	}
	if us, ok := p.uniformSetters[name]; ok {
		return us.location
	}
	return gl.Uniform{V: -1}
}

// ReadUniformfv reads back the current float value(s) of a named
// uniform into dst.
func (p *Program) ReadUniformfv(name string, dst []float32) error {
	if err := p.Link(); err != nil {
		return err
	}
	us, ok := p.uniformSetters[name]
	if !ok {
		return fmt.Errorf("glprog: program %q has no active uniform %q", p.ID, name)
	}
	p.ctx.GetUniformfv(p.handle, us.location, dst)
	return nil
}

// ReadUniformiv reads back the current integer value(s) of a named
// uniform into dst.
func (p *Program) ReadUniformiv(name string, dst []int32) error {
	if err := p.Link(); err != nil {
		return err
	}
	us, ok := p.uniformSetters[name]
	if !ok {
		return fmt.Errorf("glprog: program %q has no active uniform %q", p.ID, name)
	}
	p.ctx.GetUniformiv(p.handle, us.location, dst)
	return nil
}

// Parameter returns a linked-program parameter such as LINK_STATUS or
// ACTIVE_ATTRIBUTES. Parameters belonging to API features the context
// does not have return documented defaults instead of erroring, so
// feature detection keeps working on older tiers:
// ACTIVE_UNIFORM_BLOCKS and TRANSFORM_FEEDBACK_VARYINGS return 0, and
// TRANSFORM_FEEDBACK_BUFFER_MODE returns SEPARATE_ATTRIBS.
func (p *Program) Parameter(pname gl.Enum) int {
	if errors.Log(p.Link()) != nil {
		return 0
	}
	feats := p.ctx.Caps().Features
	switch pname {
	case gl.ACTIVE_UNIFORM_BLOCKS:
		if !feats.Has(gl.FeatureUniformBlocks) {
			return 0
		}
	case gl.TRANSFORM_FEEDBACK_VARYINGS:
		if !feats.Has(gl.FeatureTransformFeedback) {
			return 0
		}
	case gl.TRANSFORM_FEEDBACK_BUFFER_MODE:
		if !feats.Has(gl.FeatureTransformFeedback) {
			return int(gl.SEPARATE_ATTRIBS)
		}
	}
	return p.ctx.GetProgrami(p.handle, pname)
}

// warnOnce logs an advisory warning the first time it fires for a
// given name on this program.
func (p *Program) warnOnce(name, msg string, kv ...any) {
	if p.warnedNames[name] {
		return
	}
	p.warnedNames[name] = true
	slog.Warn(msg, append([]any{"program", p.ID}, kv...)...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
