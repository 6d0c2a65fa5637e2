// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "errors"

// Allocation failures surface as typed errors to the immediate caller.
// There is no internal retry: only the caller knows whether to shrink
// the request, free other resources or give up.
var (
	// ErrNoCompatibleConfig means the display offered no buffer
	// configuration matching the requested attributes.
	ErrNoCompatibleConfig = errors.New("core: no compatible buffer configuration found")

	// ErrInvalidSize means a surface was requested with a non-positive
	// width or height.
	ErrInvalidSize = errors.New("core: surface size must be positive in both dimensions")

	// ErrSurfaceAllocation means the display reported no valid surface.
	// Exhausted GPU memory and rejected attributes are indistinguishable
	// at this level.
	ErrSurfaceAllocation = errors.New("core: pbuffer surface allocation failed")

	// ErrTextureAllocation means the graphics API returned a zero
	// texture object.
	ErrTextureAllocation = errors.New("core: texture object allocation failed")

	// ErrImageBind means the display refused to attach the surface's
	// pixel storage to the texture. The texture object is already
	// deleted when this error is returned.
	ErrImageBind = errors.New("core: binding surface pixel storage to texture failed")
)
