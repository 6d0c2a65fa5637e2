// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build linux
// +build linux

package device

/*
#cgo LDFLAGS: -lEGL -lGLESv2
#include <EGL/egl.h>
#include <GLES2/gl2.h>
*/
import "C"

import (
	"errors"
	"strings"
	"unsafe"

	"github.com/devblok/offscreen/core"
	"github.com/devblok/offscreen/egl"
)

// NewEGLConnection creates a display connection backed by libEGL.
func NewEGLConnection() core.Connection {
	return &EGLConnection{}
}

// EGLConnection implements core.Connection over libEGL. It is
// stateless; the display handle travels through every call.
type EGLConnection struct{}

// GetDisplay implements interface
func (EGLConnection) GetDisplay() (egl.Display, error) {
	display := C.eglGetDisplay(C.EGLNativeDisplayType(unsafe.Pointer(nil)))
	if display == nil {
		return egl.NoDisplay, errors.New("no default display available")
	}
	return egl.Display(uintptr(unsafe.Pointer(display))), nil
}

// Initialize implements interface
func (EGLConnection) Initialize(d egl.Display) error {
	if C.eglInitialize(cDisplay(d), nil, nil) != C.EGL_TRUE {
		return errors.New("display initialization failed")
	}
	return nil
}

// ChooseConfig implements interface
func (EGLConnection) ChooseConfig(d egl.Display, attribs []int32) (egl.Config, int, error) {
	var (
		config C.EGLConfig
		found  C.EGLint
	)
	if C.eglChooseConfig(cDisplay(d), (*C.EGLint)(unsafe.Pointer(&attribs[0])), &config, 1, &found) != C.EGL_TRUE {
		return 0, 0, errors.New("attribute list rejected")
	}
	return egl.Config(uintptr(unsafe.Pointer(config))), int(found), nil
}

// CreatePbufferSurface implements interface
func (EGLConnection) CreatePbufferSurface(d egl.Display, cfg egl.Config, attribs []int32) egl.Surface {
	surface := C.eglCreatePbufferSurface(cDisplay(d), cConfig(cfg), (*C.EGLint)(unsafe.Pointer(&attribs[0])))
	return egl.Surface(uintptr(unsafe.Pointer(surface)))
}

// DestroySurface implements interface
func (EGLConnection) DestroySurface(d egl.Display, s egl.Surface) {
	C.eglDestroySurface(cDisplay(d), cSurface(s))
}

// BindTexImage implements interface
func (EGLConnection) BindTexImage(d egl.Display, s egl.Surface, buffer int32) bool {
	return C.eglBindTexImage(cDisplay(d), cSurface(s), C.EGLint(buffer)) == C.EGL_TRUE
}

// ReleaseTexImage implements interface
func (EGLConnection) ReleaseTexImage(d egl.Display, s egl.Surface, buffer int32) {
	C.eglReleaseTexImage(cDisplay(d), cSurface(s), C.EGLint(buffer))
}

// Info queries vendor strings from an initialized display.
func (EGLConnection) Info(d egl.Display) DisplayInfo {
	query := func(name C.EGLint) string {
		return C.GoString(C.eglQueryString(cDisplay(d), name))
	}
	return DisplayInfo{
		Vendor:     query(C.EGL_VENDOR),
		Version:    query(C.EGL_VERSION),
		ClientAPIs: query(C.EGL_CLIENT_APIS),
		Extensions: strings.Fields(query(C.EGL_EXTENSIONS)),
	}
}

func cDisplay(d egl.Display) C.EGLDisplay {
	return C.EGLDisplay(unsafe.Pointer(uintptr(d)))
}

func cConfig(c egl.Config) C.EGLConfig {
	return C.EGLConfig(unsafe.Pointer(uintptr(c)))
}

func cSurface(s egl.Surface) C.EGLSurface {
	return C.EGLSurface(unsafe.Pointer(uintptr(s)))
}

// NewGLES creates the GL texture operations backed by libGLESv2. The
// caller must hold a current GL context on the calling thread.
func NewGLES() core.GL {
	return &GLES{}
}

// GLES implements core.GL over libGLESv2.
type GLES struct{}

// GenTexture implements interface
func (GLES) GenTexture() uint32 {
	var texture C.GLuint
	C.glGenTextures(1, &texture)
	return uint32(texture)
}

// BindTexture implements interface
func (GLES) BindTexture(target, texture uint32) {
	C.glBindTexture(C.GLenum(target), C.GLuint(texture))
}

// TexParameteri implements interface
func (GLES) TexParameteri(target, pname uint32, param int32) {
	C.glTexParameteri(C.GLenum(target), C.GLenum(pname), C.GLint(param))
}

// DeleteTexture implements interface
func (GLES) DeleteTexture(texture uint32) {
	tex := C.GLuint(texture)
	C.glDeleteTextures(1, &tex)
}

// GetError implements interface
func (GLES) GetError() uint32 {
	return uint32(C.glGetError())
}
