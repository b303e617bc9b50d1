// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cond

import "fmt"

// Restart binds a name to a recovery function.
// Build values with [Named]; the zero Restart is invalid.
type Restart struct {
	name string
	call func(args []any) any
}

// Name returns the restart's registered name.
func (r Restart) Name() string { return r.name }

// Named builds a restart binding for use with [Restarts].
//
// Accepted signatures for fn, normalized once at registration:
//
//	func()                func() any
//	func(any)             func(any) any
//	func(any, any)        func(any, any) any
//	func(...any)          func(...any) any
//
// The recovery function receives the arguments passed to [Invoke]. Calling
// a fixed-argument recovery with the wrong number of arguments is a
// programming error, reported at invoke time. Void forms recover with nil.
// Any other signature panics with a [*CallableError] at registration.
func Named(name string, fn any) Restart {
	return Restart{name: name, call: normalizeRecovery(name, fn)}
}

func normalizeRecovery(name string, fn any) func([]any) any {
	want := func(n, got int) {
		panic(&CallableError{
			Reason: fmt.Sprintf("restart %q takes %d argument(s), invoked with %d", name, n, got),
		})
	}
	switch f := fn.(type) {
	case func():
		return func(args []any) any {
			if len(args) != 0 {
				want(0, len(args))
			}
			f()
			return nil
		}
	case func() any:
		return func(args []any) any {
			if len(args) != 0 {
				want(0, len(args))
			}
			return f()
		}
	case func(any):
		return func(args []any) any {
			if len(args) != 1 {
				want(1, len(args))
			}
			f(args[0])
			return nil
		}
	case func(any) any:
		return func(args []any) any {
			if len(args) != 1 {
				want(1, len(args))
			}
			return f(args[0])
		}
	case func(any, any):
		return func(args []any) any {
			if len(args) != 2 {
				want(2, len(args))
			}
			f(args[0], args[1])
			return nil
		}
	case func(any, any) any:
		return func(args []any) any {
			if len(args) != 2 {
				want(2, len(args))
			}
			return f(args[0], args[1])
		}
	case func(...any):
		return func(args []any) any {
			f(args...)
			return nil
		}
	case func(...any) any:
		return func(args []any) any {
			return f(args...)
		}
	}
	panic(&CallableError{
		Reason: fmt.Sprintf("unsupported recovery signature for restart %q (want func with 0-2 any arguments, variadic, optionally returning any)", name),
	})
}

// Restarts establishes the given restart bindings for the dynamic extent of
// body and returns the scope's box.
//
// If body completes normally, its value is written into the box. If, at any
// depth inside body, a handler invokes a restart registered in this frame,
// control transfers directly back here: the frames pushed after this one
// (handler and restart frames alike) are popped, the recovery value is
// written into the box, and execution resumes after the Restarts call. The
// call stack between the signal site and this scope is discarded; nothing
// there resumes.
//
// Registering the same name twice within one call is a client error and
// panics with a [*DuplicateRestartError] before body runs. The same name in
// distinct nested frames is fine; the innermost wins.
//
// The recovery value is asserted to T on arrival; a recovery returning a
// value of the wrong dynamic type panics with a [*CallableError].
func Restarts[T any](body func() T, bindings ...Restart) (box *Box[T]) {
	for i, r := range bindings {
		if r.call == nil {
			panic(&CallableError{Reason: "zero Restart binding (use Named)"})
		}
		for _, prev := range bindings[:i] {
			if prev.name == r.name {
				panic(&DuplicateRestartError{Name: r.name})
			}
		}
	}

	e := current()
	frame := &restartFrame{bindings: bindings}
	e.pushRestarts(frame)
	box = NewBox[T]()
	defer func() {
		e.popRestarts(frame)
		r := recover()
		if r == nil {
			return
		}
		tr, ok := r.(*transfer)
		if !ok || tr.target != frame {
			panic(r)
		}
		v, ok := tr.value.(T)
		if !ok && tr.value != nil {
			panic(&CallableError{
				Reason: fmt.Sprintf("recovery value %T does not fit restart scope of %T", tr.value, v),
			})
		}
		box.Set(v)
	}()
	box.Set(body())
	return box
}
