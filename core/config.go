// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// APIType identifies the client rendering API a surface targets.
type APIType int

// Client APIs a buffer configuration can be selected for.
const (
	OpenGL APIType = iota
	OpenGLES
)

// APIVersion is the already negotiated client API version. Negotiation
// itself happens outside this package.
type APIVersion struct {
	Major int
	Minor int
}

// Size describes drawable dimensions in pixels.
type Size struct {
	Width  int32
	Height int32
}

// Format identifies the pixel format of a surface.
type Format int

// Supported pixel formats.
const (
	FormatRGBA8 Format = iota
	FormatRGB8
)

// HasAlpha reports whether the format carries an alpha channel.
func (f Format) HasAlpha() bool {
	return f == FormatRGBA8
}

func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "rgba8"
	case FormatRGB8:
		return "rgb8"
	default:
		return "unknown"
	}
}

// Configuration defines a global surface manager configuration
type Configuration struct {
	Surface SurfaceConfiguration
}

// SurfaceConfiguration is used to configure offscreen surface allocation
type SurfaceConfiguration struct {
	Width  int32
	Height int32
	Format Format

	API        APIType
	APIVersion APIVersion
}
