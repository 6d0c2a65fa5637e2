// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/offscreen/egl"
)

// NewRegistry creates a display registry over the given connection.
// The display itself is acquired lazily, on first use.
func NewRegistry(conn Connection) *Registry {
	return &Registry{conn: conn}
}

// Registry owns the process-wide display handle. The handle is acquired
// and initialized exactly once, on the first Display call from any
// thread, and is never released; process teardown reclaims it. That
// fixed lifetime is what keeps display destruction from ever racing
// surface or texture destruction.
type Registry struct {
	conn    Connection
	once    sync.Once
	display egl.Display
}

// Display returns the initialized display handle. Safe to call from
// multiple goroutines; all callers observe the same handle. A display
// that cannot be opened or initialized is fatal, no surface operation
// can proceed without one.
func (r *Registry) Display() egl.Display {
	r.once.Do(func() {
		display, err := r.conn.GetDisplay()
		if err != nil {
			log.Fatal("egl.GetDisplay(): " + err.Error())
		}
		if err := r.conn.Initialize(display); err != nil {
			log.Fatal("egl.Initialize(): " + err.Error())
		}
		r.display = display
	})
	return r.display
}

// Connection returns the connection the registry was built over.
func (r *Registry) Connection() Connection {
	return r.conn
}
