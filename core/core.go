// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core manages offscreen GPU surfaces: it allocates pbuffer
// drawables on a display connection, exposes them to OpenGL as bindable
// textures and keeps the two resource lifetimes ordered. A texture never
// outlives the surface it is bound to, a surface is never destroyed while
// a texture still references it.
package core

import "github.com/devblok/offscreen/egl"

// Connection describes the display connection the surface manager runs
// against. The production implementation wraps libEGL, tests inject a
// mock. Implementations must allow DestroySurface to be called from any
// thread; all other calls happen on the caller's thread.
type Connection interface {
	// GetDisplay returns the default display handle.
	GetDisplay() (egl.Display, error)

	// Initialize prepares the display for use. Called once per display,
	// before any other operation on it.
	Initialize(d egl.Display) error

	// ChooseConfig picks at most one buffer configuration matching the
	// attribute list and reports how many configurations matched.
	ChooseConfig(d egl.Display, attribs []int32) (egl.Config, int, error)

	// CreatePbufferSurface allocates an offscreen drawable with the
	// given configuration. Returns egl.NoSurface on failure.
	CreatePbufferSurface(d egl.Display, cfg egl.Config, attribs []int32) egl.Surface

	// DestroySurface releases a drawable's native storage.
	DestroySurface(d egl.Display, s egl.Surface)

	// BindTexImage attaches the drawable's pixel storage to the texture
	// currently bound on the caller's context. Reports success.
	BindTexImage(d egl.Display, s egl.Surface, buffer int32) bool

	// ReleaseTexImage detaches the drawable's pixel storage again.
	ReleaseTexImage(d egl.Display, s egl.Surface, buffer int32)
}

// GL describes the texture operations consumed from the graphics API.
// All calls are bound to the thread owning the current GL context.
type GL interface {
	// GenTexture allocates one texture object. Returns 0 on failure.
	GenTexture() uint32

	// BindTexture makes the texture current on the given target.
	BindTexture(target, texture uint32)

	// TexParameteri sets an integer parameter on the bound texture.
	TexParameteri(target, pname uint32, param int32)

	// DeleteTexture frees a texture object. Deleting 0 is a no-op.
	DeleteTexture(texture uint32)

	// GetError returns and clears the API error state.
	GetError() uint32
}

// GL enumerants used by the texture binding protocol.
const (
	GLNoError          uint32 = 0
	GLTexture2D        uint32 = 0x0DE1
	GLTextureMagFilter uint32 = 0x2800
	GLTextureMinFilter uint32 = 0x2801
	GLTextureWrapS     uint32 = 0x2802
	GLTextureWrapT     uint32 = 0x2803

	GLNearest     int32 = 0x2600
	GLClampToEdge int32 = 0x812F
)
