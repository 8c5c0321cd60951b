// Copyright (c) 2025, The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package opengl

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/glprog/base/errors"
)

// note: this file contains the glfw dependencies, for desktop platform builds.
// other platforms (mobile, web) need to provide their own context setup.

// Init initializes glfw for window and GL context creation.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts glfw down. Call as the last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// GLFWCreateWindow is a helper function intended only for use in simple
// examples. It creates a window with a 4.1 core profile GL context,
// makes the context current on the calling thread, and returns the
// [Context] for it. swapAndPoll presents the frame and pumps events,
// returning false once the window should close.
func GLFWCreateWindow(size image.Point, title string, resize *func(size image.Point)) (ctx *Context, terminate func(), swapAndPoll func() bool, actualSize image.Point, err error) {
	if err = Init(); err != nil {
		return
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	ctx, err = New()
	if err != nil {
		window.Destroy()
		Terminate()
		return
	}
	terminate = func() {
		ctx.Release()
		window.Destroy()
		Terminate()
	}
	swapAndPoll = func() bool {
		if window.ShouldClose() {
			return false
		}
		window.SwapBuffers()
		glfw.PollEvents()
		return true
	}
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if resize != nil {
			(*resize)(image.Point{width, height})
		}
	})
	fbw, fbh := window.GetFramebufferSize()
	actualSize = image.Point{fbw, fbh}
	return
}
