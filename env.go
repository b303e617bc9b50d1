// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cond

import (
	"runtime"
	"strconv"
	"sync"
)

// The dynamic environment is per goroutine: handler frames, restart frames,
// and the stack of conditions currently being dispatched. Frames established
// on one goroutine are invisible to every other goroutine. Only the owning
// goroutine pushes and pops its own environment, so no locking is needed
// beyond the map lookup itself.

// handlerFrame is one Handlers scope: bindings in registration order.
type handlerFrame struct {
	bindings []Handler
}

// restartFrame is one Restarts scope. The frame pointer doubles as the
// scope-identity token for non-local transfer: a transfer panic carries the
// target frame, and only the scope that pushed that exact frame recovers it.
type restartFrame struct {
	bindings []Restart
}

// lookup returns the restart registered under name within this frame.
func (f *restartFrame) lookup(name string) (Restart, bool) {
	for _, r := range f.bindings {
		if r.name == name {
			return r, true
		}
	}
	return Restart{}, false
}

// transfer is the panic payload of a non-local transfer to a restart scope.
// It unwinds every frame pushed after the target, then the target scope
// routes value into its box and resumes normally.
type transfer struct {
	target *restartFrame
	value  any
}

// env is the dynamic environment of one goroutine.
type env struct {
	handlers  []*handlerFrame
	restarts  []*restartFrame
	signaling []Condition // conditions being dispatched, innermost last
}

func (e *env) empty() bool {
	return len(e.handlers) == 0 && len(e.restarts) == 0 && len(e.signaling) == 0
}

// envs maps goroutine id to its environment. Entries exist only while the
// goroutine has at least one active frame or in-flight dispatch.
var envs sync.Map // uint64 -> *env

// current returns this goroutine's environment, creating it if needed.
func current() *env {
	id := goid()
	if v, ok := envs.Load(id); ok {
		return v.(*env)
	}
	e := &env{}
	envs.Store(id, e)
	return e
}

// live returns this goroutine's environment without creating one.
// Signal paths use it so that signaling with no frames allocates nothing.
func live() (*env, bool) {
	v, ok := envs.Load(goid())
	if !ok {
		return nil, false
	}
	return v.(*env), true
}

// release drops the map entry once every stack is empty, so goroutines that
// stopped using the package do not leak environment records.
func (e *env) release() {
	if e.empty() {
		envs.Delete(goid())
	}
}

func (e *env) pushHandlers(f *handlerFrame) {
	e.handlers = append(e.handlers, f)
}

// popHandlers removes exactly the given frame, which must be on top.
// Scope discipline (defer on every exit path) guarantees LIFO order even
// when the exit is a fault or a non-local transfer.
func (e *env) popHandlers(f *handlerFrame) {
	n := len(e.handlers)
	if n == 0 || e.handlers[n-1] != f {
		panic("cond: internal error: handler stack out of balance")
	}
	e.handlers[n-1] = nil
	e.handlers = e.handlers[:n-1]
	e.release()
}

func (e *env) pushRestarts(f *restartFrame) {
	e.restarts = append(e.restarts, f)
}

func (e *env) popRestarts(f *restartFrame) {
	n := len(e.restarts)
	if n == 0 || e.restarts[n-1] != f {
		panic("cond: internal error: restart stack out of balance")
	}
	e.restarts[n-1] = nil
	e.restarts = e.restarts[:n-1]
	e.release()
}

// stackBufPool holds buffers for reading the runtime.Stack header.
// The header line "goroutine N [status]:" fits comfortably in 64 bytes.
var stackBufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 64)
		return &buf
	},
}

// goid returns the current goroutine's id, parsed from the runtime.Stack
// header. There is no public runtime API for this; the header format is
// stable across Go releases.
func goid() uint64 {
	bp := stackBufPool.Get().(*[]byte)
	defer stackBufPool.Put(bp)

	b := (*bp)[:runtime.Stack(*bp, false)]
	const prefix = "goroutine "
	if len(b) <= len(prefix) {
		panic("cond: internal error: short runtime.Stack header")
	}
	b = b[len(prefix):]
	i := 0
	for i < len(b) && b[i] != ' ' {
		i++
	}
	id, err := strconv.ParseUint(string(b[:i]), 10, 64)
	if err != nil {
		panic("cond: internal error: unparsable goroutine id: " + err.Error())
	}
	return id
}
