// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glprog

import "github.com/gogpu/glprog/gl"

// resource is the lifecycle state shared by every handle-backed GPU
// object in this package: the context the native handle lives on,
// lazy one-shot creation, and release-exactly-once. The lifecycle is
// uninitialized, then created (successfully or not, exactly once),
// then released.
type resource struct {
	ctx      gl.Context
	created  bool
	released bool

	// err is the creation error, if any. It is sticky: once creation
	// fails, every later ensure returns the same error rather than
	// retrying against the context.
	err error
}

func (rs *resource) init(ctx gl.Context) {
	rs.ctx = ctx
}

// Context returns the graphics context this object issues commands to.
func (rs *resource) Context() gl.Context {
	return rs.ctx
}

// ensure runs create the first time a native handle is needed.
// Creation runs at most once; its error return is remembered and
// returned by all subsequent calls.
func (rs *resource) ensure(create func() error) error {
	if rs.released {
		return ErrReleased
	}
	if rs.created {
		return rs.err
	}
	rs.created = true
	rs.err = create()
	return rs.err
}

// releaseOnce runs del the first time it is called and never again.
func (rs *resource) releaseOnce(del func()) {
	if rs.released {
		return
	}
	rs.released = true
	del()
}
