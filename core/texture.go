// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "github.com/devblok/offscreen/egl"

// BindSurfaceTexture couples a surface to a freshly allocated 2D
// texture object so it can be sampled during rendering. The binding
// takes ownership of the surface until Unbind hands it back.
//
// GL binding state is implicitly tied to the thread owning the current
// context: the caller must confine the returned binding to that thread.
// The 2D binding point is restored to zero before returning, no
// implicit global state is left behind.
func BindSurfaceTexture(gl GL, surface Surface) (*SurfaceTexture, error) {
	texture := gl.GenTexture()
	if texture == 0 {
		return nil, ErrTextureAllocation
	}

	gl.BindTexture(GLTexture2D, texture)

	reg := surface.shared.registry
	if !reg.Connection().BindTexImage(reg.Display(), surface.shared.handle, egl.BackBuffer) {
		gl.BindTexture(GLTexture2D, 0)
		gl.DeleteTexture(texture)
		return nil, ErrImageBind
	}

	// The bound pixel storage has no mipmap chain and must not be
	// sampled outside its bounds.
	gl.TexParameteri(GLTexture2D, GLTextureMagFilter, GLNearest)
	gl.TexParameteri(GLTexture2D, GLTextureMinFilter, GLNearest)
	gl.TexParameteri(GLTexture2D, GLTextureWrapS, GLClampToEdge)
	gl.TexParameteri(GLTexture2D, GLTextureWrapT, GLClampToEdge)

	gl.BindTexture(GLTexture2D, 0)

	return &SurfaceTexture{surface: surface, texture: texture}, nil
}

// SurfaceTexture is a single-use binding between a surface and a GL
// texture object. Once unbound it is consumed; bind again by creating
// a fresh one. A zero texture id marks the consumed state.
type SurfaceTexture struct {
	surface Surface
	texture uint32
}

// Surface borrows the bound surface. Valid only while bound.
func (t *SurfaceTexture) Surface() Surface {
	return t.surface
}

// Texture returns the texture object id. Valid only while bound.
func (t *SurfaceTexture) Texture() uint32 {
	return t.texture
}

// TextureTarget returns the target the texture is bound on.
func (t *SurfaceTexture) TextureTarget() uint32 {
	return GLTexture2D
}

// Unbind releases the image binding, deletes the texture object and
// returns ownership of the surface to the caller. Calling Unbind twice
// is a caller bug; the texture object is deleted at most once
// regardless.
func (t *SurfaceTexture) Unbind(gl GL) Surface {
	if t.texture != 0 {
		reg := t.surface.shared.registry
		reg.Connection().ReleaseTexImage(reg.Display(), t.surface.shared.handle, egl.BackBuffer)
		gl.DeleteTexture(t.texture)
		t.texture = 0
	}
	return t.surface
}
