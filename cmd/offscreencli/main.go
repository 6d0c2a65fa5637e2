// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command offscreencli allocates one offscreen surface, binds it to a
// texture and prints a JSON report of what the driver handed back.
// SDL only bootstraps the hidden window and the GL context; everything
// after that goes through the offscreen core.
package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/offscreen/core"
	"github.com/devblok/offscreen/device"
)

func init() {
	runtime.LockOSThread()
}

type report struct {
	Display       device.DisplayInfo `json:"display"`
	SurfaceID     uint32             `json:"surfaceId"`
	Width         int32              `json:"width"`
	Height        int32              `json:"height"`
	Format        string             `json:"format"`
	Texture       uint32             `json:"texture"`
	TextureTarget uint32             `json:"textureTarget"`
}

func loadConfiguration() core.Configuration {
	godotenv.Load()

	cfg := core.Configuration{
		Surface: core.SurfaceConfiguration{
			Width:      envInt32("OFFSCREEN_WIDTH", "64"),
			Height:     envInt32("OFFSCREEN_HEIGHT", "64"),
			Format:     core.FormatRGBA8,
			API:        core.OpenGLES,
			APIVersion: core.APIVersion{Major: int(envInt32("OFFSCREEN_API_MAJOR", "3"))},
		},
	}

	if envy.Get("OFFSCREEN_FORMAT", "rgba8") == "rgb8" {
		cfg.Surface.Format = core.FormatRGB8
	}
	if envy.Get("OFFSCREEN_API", "gles") == "gl" {
		cfg.Surface.API = core.OpenGL
	}
	return cfg
}

func envInt32(name, fallback string) int32 {
	value, err := strconv.ParseInt(envy.Get(name, fallback), 10, 32)
	if err != nil {
		log.Fatalf("%s: %s", name, err)
	}
	return int32(value)
}

func newHiddenContext(cfg core.SurfaceConfiguration) (*sdl.Window, sdl.GLContext) {
	if cfg.API == core.OpenGLES {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_ES)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, cfg.APIVersion.Major)
	}

	window, err := sdl.CreateWindow("offscreen",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		1, 1,
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		log.Fatal("sdl.CreateWindow(): " + err.Error())
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		log.Fatal("sdl.GLCreateContext(): " + err.Error())
	}
	return window, glContext
}

func main() {
	configuration := loadConfiguration()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatal("sdl.Init(): " + err.Error())
	}
	defer sdl.Quit()

	window, glContext := newHiddenContext(configuration.Surface)
	defer window.Destroy()
	defer sdl.GLDeleteContext(glContext)

	connection := device.NewEGLConnection()
	registry := core.NewRegistry(connection)

	surface, err := core.NewSurface(registry,
		configuration.Surface.API,
		configuration.Surface.APIVersion,
		core.Size{Width: configuration.Surface.Width, Height: configuration.Surface.Height},
		configuration.Surface.Format)
	if err != nil {
		log.Fatal("core.NewSurface(): " + err.Error())
	}

	gles := device.NewGLES()
	binding, err := core.BindSurfaceTexture(gles, surface)
	if err != nil {
		surface.Release()
		log.Fatal("core.BindSurfaceTexture(): " + err.Error())
	}

	out := report{
		SurfaceID:     binding.Surface().ID(),
		Width:         binding.Surface().Size().Width,
		Height:        binding.Surface().Size().Height,
		Format:        binding.Surface().Format().String(),
		Texture:       binding.Texture(),
		TextureTarget: binding.TextureTarget(),
	}
	if eglConnection, ok := connection.(*device.EGLConnection); ok {
		out.Display = eglConnection.Info(registry.Display())
	}

	binding.Unbind(gles).Release()

	if bytes, err := json.Marshal(out); err == nil {
		fmt.Printf("%s", bytes)
	} else {
		log.Fatal(err)
	}
}
