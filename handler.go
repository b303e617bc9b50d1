// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cond

// Handler binds a condition type to a handler function.
// Build values with [On]; the zero Handler matches nothing.
type Handler struct {
	match func(Condition) bool
	call  func(Condition) any
}

// On binds fn as a handler for conditions whose dynamic type is assignable
// to C. When C is an interface, every implementing condition matches
// (supertype matching); when C is a concrete type, only that exact type
// matches. On[Condition] matches everything.
//
// Accepted signatures for fn, normalized once at registration:
//
//	func()           func() any
//	func(C)          func(C) any
//	func(Condition)  func(Condition) any
//
// The zero-argument forms are for handlers that do not inspect the
// condition; the type-erased forms let premade handlers such as [Invoker]
// bind to any condition type. A return value is surfaced by [Signal] and attached to the
// diagnostic record by [Warn]; it never affects dispatch. Any other
// signature panics with a [*CallableError].
//
// A handler runs at the signal site with the entire dynamic environment
// still active: it may call [Invoke] to transfer control to a restart, or
// return normally to decline.
//
// To bind one function to several condition types, register it under
// several bindings in the same frame:
//
//	cond.Handlers(body,
//	    cond.On[*DiskFull](report),
//	    cond.On[*QuotaHit](report),
//	)
func On[C any](fn any) Handler {
	return Handler{
		match: func(c Condition) bool {
			_, ok := c.(C)
			return ok
		},
		call: normalizeHandler[C](fn),
	}
}

// normalizeHandler is the registration-time capability check: it resolves
// the calling convention once and stores a uniform adapter, instead of
// inspecting arity on every dispatch.
func normalizeHandler[C any](fn any) func(Condition) any {
	switch f := fn.(type) {
	case func():
		return func(Condition) any {
			f()
			return nil
		}
	case func() any:
		return func(Condition) any {
			return f()
		}
	case func(C):
		return func(c Condition) any {
			f(c.(C))
			return nil
		}
	case func(C) any:
		return func(c Condition) any {
			return f(c.(C))
		}
	// Type-erased forms, so ready-made handlers like Invoker compose with
	// any C. When C is any these duplicate the cases above; the first
	// matching case wins.
	case func(Condition):
		return func(c Condition) any {
			f(c)
			return nil
		}
	case func(Condition) any:
		return func(c Condition) any {
			return f(c)
		}
	}
	panic(&CallableError{Reason: "unsupported handler signature (want func(), func(C), or func(Condition), optionally returning any)"})
}

// Handlers establishes the given handler bindings for the dynamic extent of
// body. The bindings form one frame on this goroutine's handler stack;
// nested calls stack rather than replace, and dispatch always consults the
// innermost frame first. Within a frame, bindings are tried in registration
// order.
//
// The frame is popped when body exits, whether normally, by a fault, or by
// a non-local transfer passing through this scope.
func Handlers(body func(), bindings ...Handler) {
	e := current()
	frame := &handlerFrame{bindings: bindings}
	e.pushHandlers(frame)
	defer e.popHandlers(frame)
	body()
}
