// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package egl holds the handle types and enumerants of the EGL display
// connection that the rest of the module speaks in. It deliberately
// contains no calls: concrete connections live in the device package,
// mocks live next to the tests.
package egl

// Handle types of the display connection. All three are opaque driver
// pointers on the wire, carried as uintptr so they can cross package
// boundaries without cgo.
type (
	// Display identifies the process's connection to the GPU display
	// subsystem.
	Display uintptr

	// Config is an opaque reference to a buffer configuration chosen
	// by the display connection.
	Config uintptr

	// Surface identifies a native drawable allocated on the display
	// connection.
	Surface uintptr
)

// Null handle values reported by the connection on failure.
const (
	NoDisplay Display = 0
	NoSurface Surface = 0
)

// Attribute names, EGL 1.4 enumerant space.
const (
	AlphaSize         = 0x3021
	BlueSize          = 0x3022
	GreenSize         = 0x3023
	RedSize           = 0x3024
	SurfaceType       = 0x3033
	None              = 0x3038
	BindToTextureRGB  = 0x3039
	BindToTextureRGBA = 0x303A
	RenderableType    = 0x3040
	Height            = 0x3056
	Width             = 0x3057
	TextureFormat     = 0x3080
	TextureTarget     = 0x3081
)

// Attribute values.
const (
	TextureRGB  = 0x305D
	TextureRGBA = 0x305E
	Texture2D   = 0x305F
	BackBuffer  = 0x3084

	PbufferBit   = 0x0001
	OpenGLESBit  = 0x0001
	OpenGLES2Bit = 0x0004
	OpenGLBit    = 0x0008
	OpenGLES3Bit = 0x0040
)
