// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"sync/atomic"

	"github.com/devblok/offscreen/egl"
)

// NewSurface allocates an offscreen pbuffer against the registry's
// display and wraps it in a Surface holding the initial reference.
// The size and format are fixed for the lifetime of the surface.
func NewSurface(reg *Registry, api APIType, version APIVersion, size Size, format Format) (Surface, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return Surface{}, ErrInvalidSize
	}

	config, err := ChooseConfiguration(reg, api, version, format)
	if err != nil {
		return Surface{}, err
	}

	textureFormat := int32(egl.TextureRGB)
	if format.HasAlpha() {
		textureFormat = egl.TextureRGBA
	}
	attribs := []int32{
		egl.Width, size.Width,
		egl.Height, size.Height,
		egl.TextureFormat, textureFormat,
		egl.TextureTarget, egl.Texture2D,
		egl.None,
	}

	handle := reg.Connection().CreatePbufferSurface(reg.Display(), config, attribs)
	if handle == egl.NoSurface {
		return Surface{}, ErrSurfaceAllocation
	}

	return Surface{
		shared:     &sharedSurface{registry: reg, handle: handle, refs: 1},
		config:     config,
		apiVersion: version,
		size:       size,
		format:     format,
	}, nil
}

// sharedSurface owns the native drawable. Destruction happens exactly
// once, when the last reference is released, from whichever thread
// that release runs on.
type sharedSurface struct {
	registry *Registry
	handle   egl.Surface
	refs     int32
}

// Surface is an offscreen pixel buffer allocated against the display.
// Values are cheap handles over a shared native drawable: Clone adds a
// reference, Release drops one. Surfaces may move between threads.
type Surface struct {
	shared     *sharedSurface
	config     egl.Config
	apiVersion APIVersion
	size       Size
	format     Format
}

// Clone returns a second handle over the same native drawable without
// duplicating GPU memory.
func (s Surface) Clone() Surface {
	atomic.AddInt32(&s.shared.refs, 1)
	return s
}

// Release drops this handle's reference. The native drawable is
// destroyed once the last reference is gone. Using the Surface after
// Release is a caller bug.
func (s Surface) Release() {
	if atomic.AddInt32(&s.shared.refs, -1) == 0 {
		reg := s.shared.registry
		reg.Connection().DestroySurface(reg.Display(), s.shared.handle)
	}
}

// Size returns the drawable dimensions the surface was created with.
func (s Surface) Size() Size {
	return s.size
}

// Format returns the pixel format the surface was created with.
func (s Surface) Format() Format {
	return s.format
}

// APIVersion returns the client API version used to create the surface.
func (s Surface) APIVersion() APIVersion {
	return s.apiVersion
}

// Config returns the buffer configuration the surface was allocated
// with. Some drivers need it again when binding the texture, so it is
// carried for the surface's whole lifetime.
func (s Surface) Config() egl.Config {
	return s.config
}

// ID returns a stable identifier derived from the native handle. Useful
// for logging and equality, not guaranteed unique across display
// connections.
func (s Surface) ID() uint32 {
	return uint32(s.shared.handle)
}

func (s Surface) String() string {
	return fmt.Sprintf("surface %#x %dx%d %s", s.ID(), s.size.Width, s.size.Height, s.format)
}
