// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/devblok/offscreen/core"
	"github.com/devblok/offscreen/egl"
)

func TestRenderableTypeTable(t *testing.T) {
	cases := []struct {
		api   core.APIType
		major int
		want  int32
	}{
		{core.OpenGL, 1, egl.OpenGLBit},
		{core.OpenGL, 4, egl.OpenGLBit},
		{core.OpenGLES, 1, egl.OpenGLESBit},
		{core.OpenGLES, 2, egl.OpenGLES2Bit},
		{core.OpenGLES, 3, egl.OpenGLES3Bit},
		{core.OpenGLES, 4, egl.OpenGLES3Bit},
	}

	for _, c := range cases {
		got, err := core.RenderableType(c.api, core.APIVersion{Major: c.major})
		if err != nil {
			t.Errorf("api %d major %d: %s", c.api, c.major, err)
			continue
		}
		if got != c.want {
			t.Errorf("api %d major %d: got %#x, want %#x", c.api, c.major, got, c.want)
		}
	}
}

func TestRenderableTypeUnknownAPI(t *testing.T) {
	if _, err := core.RenderableType(core.APIType(42), core.APIVersion{Major: 2}); err != core.ErrNoCompatibleConfig {
		t.Errorf("got %v, want ErrNoCompatibleConfig", err)
	}
}

func TestChooseConfigurationAttributes(t *testing.T) {
	conn := newMockConnection()
	registry := core.NewRegistry(conn)

	config, err := core.ChooseConfiguration(registry, core.OpenGLES, core.APIVersion{Major: 3}, core.FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}
	if config != conn.config {
		t.Errorf("got config %#x, want %#x", config, conn.config)
	}

	wanted := []struct {
		name int32
		want int32
	}{
		{egl.SurfaceType, egl.PbufferBit},
		{egl.RenderableType, egl.OpenGLES3Bit},
		{egl.BindToTextureRGBA, 1},
		{egl.RedSize, 8},
		{egl.GreenSize, 8},
		{egl.BlueSize, 8},
		{egl.AlphaSize, 8},
	}
	for _, w := range wanted {
		got, ok := attribValue(conn.chooseAttribs, w.name)
		if !ok {
			t.Errorf("attribute %#x missing from configuration request", w.name)
			continue
		}
		if got != w.want {
			t.Errorf("attribute %#x: got %d, want %d", w.name, got, w.want)
		}
	}
	if last := conn.chooseAttribs[len(conn.chooseAttribs)-1]; last != egl.None {
		t.Errorf("attribute list ends with %#x, want sentinel", last)
	}
}

func TestChooseConfigurationOpaqueFormat(t *testing.T) {
	conn := newMockConnection()
	registry := core.NewRegistry(conn)

	if _, err := core.ChooseConfiguration(registry, core.OpenGLES, core.APIVersion{Major: 2}, core.FormatRGB8); err != nil {
		t.Fatal(err)
	}

	if got, ok := attribValue(conn.chooseAttribs, egl.BindToTextureRGB); !ok || got != 1 {
		t.Error("opaque format did not request an RGB texture-bindable configuration")
	}
	if _, ok := attribValue(conn.chooseAttribs, egl.BindToTextureRGBA); ok {
		t.Error("opaque format requested an RGBA texture-bindable configuration")
	}
	if got, _ := attribValue(conn.chooseAttribs, egl.AlphaSize); got != 0 {
		t.Errorf("opaque format requested %d alpha bits, want 0", got)
	}
}

func TestChooseConfigurationNoMatch(t *testing.T) {
	conn := newMockConnection()
	conn.configsFound = 0
	registry := core.NewRegistry(conn)

	if _, err := core.ChooseConfiguration(registry, core.OpenGLES, core.APIVersion{Major: 2}, core.FormatRGBA8); err != core.ErrNoCompatibleConfig {
		t.Errorf("got %v, want ErrNoCompatibleConfig", err)
	}
}
