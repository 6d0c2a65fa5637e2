// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"sync"

	"github.com/devblok/offscreen/egl"
)

func newMockConnection() *mockConnection {
	return &mockConnection{
		display:      egl.Display(0x11),
		config:       egl.Config(0x77),
		configsFound: 1,
		nextSurface:  0x1000,
	}
}

// mockConnection records every display call so tests can assert on the
// attribute lists and on how often native resources were touched.
type mockConnection struct {
	mu sync.Mutex

	display      egl.Display
	config       egl.Config
	configsFound int
	nextSurface  uintptr
	bindFails    bool

	getDisplayCalls int
	initializeCalls int
	chooseAttribs   []int32
	surfaceAttribs  []int32
	created         []egl.Surface
	destroyed       []egl.Surface
	bound           []egl.Surface
	released        []egl.Surface
}

func (m *mockConnection) GetDisplay() (egl.Display, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getDisplayCalls++
	return m.display, nil
}

func (m *mockConnection) Initialize(d egl.Display) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initializeCalls++
	return nil
}

func (m *mockConnection) ChooseConfig(d egl.Display, attribs []int32) (egl.Config, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chooseAttribs = append([]int32(nil), attribs...)
	return m.config, m.configsFound, nil
}

func (m *mockConnection) CreatePbufferSurface(d egl.Display, cfg egl.Config, attribs []int32) egl.Surface {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.surfaceAttribs = append([]int32(nil), attribs...)
	if m.nextSurface == 0 {
		return egl.NoSurface
	}
	surface := egl.Surface(m.nextSurface)
	m.nextSurface++
	m.created = append(m.created, surface)
	return surface
}

func (m *mockConnection) DestroySurface(d egl.Display, s egl.Surface) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroyed = append(m.destroyed, s)
}

func (m *mockConnection) BindTexImage(d egl.Display, s egl.Surface, buffer int32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bindFails {
		return false
	}
	m.bound = append(m.bound, s)
	return true
}

func (m *mockConnection) ReleaseTexImage(d egl.Display, s egl.Surface, buffer int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.released = append(m.released, s)
}

func newMockGL() *mockGL {
	return &mockGL{
		nextTexture: 1,
		params:      make(map[[2]uint32]int32),
	}
}

// mockGL records texture operations; params is keyed by target and
// parameter name.
type mockGL struct {
	nextTexture uint32
	genFails    bool
	errState    uint32

	bindings []uint32
	params   map[[2]uint32]int32
	deleted  []uint32
}

func (g *mockGL) GenTexture() uint32 {
	if g.genFails {
		return 0
	}
	texture := g.nextTexture
	g.nextTexture++
	return texture
}

func (g *mockGL) BindTexture(target, texture uint32) {
	g.bindings = append(g.bindings, texture)
}

func (g *mockGL) TexParameteri(target, pname uint32, param int32) {
	g.params[[2]uint32{target, pname}] = param
}

func (g *mockGL) DeleteTexture(texture uint32) {
	if texture != 0 {
		g.deleted = append(g.deleted, texture)
	}
}

func (g *mockGL) GetError() uint32 {
	return g.errState
}

// attribValue looks a name up in an attribute list, stopping at the
// terminating sentinel.
func attribValue(attribs []int32, name int32) (int32, bool) {
	for i := 0; i+1 < len(attribs); i += 2 {
		if attribs[i] == egl.None {
			break
		}
		if attribs[i] == name {
			return attribs[i+1], true
		}
	}
	return 0, false
}
