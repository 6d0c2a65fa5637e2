// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device provides the production display connection and GL
// implementations behind the core interfaces, backed by libEGL and
// libGLESv2.
package device

// DisplayInfo describes an initialized display connection.
type DisplayInfo struct {
	Vendor     string   `json:"vendor"`
	Version    string   `json:"version"`
	ClientAPIs string   `json:"clientApis"`
	Extensions []string `json:"extensions"`
}
