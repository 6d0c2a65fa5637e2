// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"

	"github.com/devblok/offscreen/egl"
)

// RenderableType derives the renderable-type capability bits used to
// pick a buffer configuration compatible with the given client API.
// Pure policy, no display involved.
func RenderableType(api APIType, version APIVersion) (int32, error) {
	switch {
	case api == OpenGL:
		return egl.OpenGLBit, nil
	case api == OpenGLES && version.Major < 2:
		return egl.OpenGLESBit, nil
	case api == OpenGLES && version.Major == 2:
		return egl.OpenGLES2Bit, nil
	case api == OpenGLES:
		return egl.OpenGLES3Bit, nil
	}
	return 0, ErrNoCompatibleConfig
}

// configAttributes builds the configuration request for a pbuffer that
// can later be bound as a texture. The texture-bindable flag and the
// alpha depth follow the requested pixel format.
func configAttributes(renderable int32, format Format) []int32 {
	bindable := int32(egl.BindToTextureRGB)
	alpha := int32(0)
	if format.HasAlpha() {
		bindable = egl.BindToTextureRGBA
		alpha = 8
	}
	return []int32{
		egl.SurfaceType, egl.PbufferBit,
		egl.RenderableType, renderable,
		bindable, 1,
		egl.RedSize, 8,
		egl.GreenSize, 8,
		egl.BlueSize, 8,
		egl.AlphaSize, alpha,
		egl.None,
	}
}

// ChooseConfiguration asks the display for exactly one buffer
// configuration able to back a texture-bindable pbuffer for the given
// client API and pixel format.
func ChooseConfiguration(reg *Registry, api APIType, version APIVersion, format Format) (egl.Config, error) {
	renderable, err := RenderableType(api, version)
	if err != nil {
		return 0, err
	}

	config, found, err := reg.Connection().ChooseConfig(reg.Display(), configAttributes(renderable, format))
	if err != nil {
		return 0, errors.New("egl.ChooseConfig(): " + err.Error())
	}
	if found == 0 {
		return 0, ErrNoCompatibleConfig
	}
	return config, nil
}
