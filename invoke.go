// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cond

// Invoke selects the innermost restart registered under name, calls its
// recovery function with args, and transfers control to the [Restarts]
// scope that registered it. Invoke never returns to its caller: the call
// stack between the caller and the target scope, including any handler and
// restart frames entered in between, is discarded.
//
// The recovery function runs before the transfer, at the invoke site, with
// the full dynamic environment still active.
//
// Invoking a name no active frame offers is a programming error: Invoke
// panics with an [*UnboundRestartError] listing the restarts that were
// available.
func Invoke(name string, args ...any) {
	if e, ok := live(); ok {
		for i := len(e.restarts) - 1; i >= 0; i-- {
			frame := e.restarts[i]
			if r, ok := frame.lookup(name); ok {
				panic(&transfer{target: frame, value: r.call(args)})
			}
		}
	}
	panic(&UnboundRestartError{Name: name, Available: AvailableRestarts()})
}

// FindRestart reports whether a restart named name is currently
// established on this goroutine.
func FindRestart(name string) bool {
	e, ok := live()
	if !ok {
		return false
	}
	for i := len(e.restarts) - 1; i >= 0; i-- {
		if _, ok := e.restarts[i].lookup(name); ok {
			return true
		}
	}
	return false
}

// AvailableRestarts returns the names of every established restart,
// innermost frame first, in registration order within a frame. Shadowed
// duplicates are included.
func AvailableRestarts() []string {
	e, ok := live()
	if !ok {
		return nil
	}
	var names []string
	for i := len(e.restarts) - 1; i >= 0; i-- {
		for _, r := range e.restarts[i].bindings {
			names = append(names, r.name)
		}
	}
	return names
}

// Invoker returns a handler function that invokes the named restart with
// the given arguments, ignoring the condition. Convenient as the whole body
// of a handler:
//
//	cond.Handlers(body, cond.On[*DiskFull](cond.Invoker("retry")))
func Invoker(name string, args ...any) func(Condition) {
	return func(Condition) {
		Invoke(name, args...)
	}
}

// UseValue invokes the conventional [UseValueRestart] restart with the
// given arguments. Call sites that can substitute a replacement value
// register it:
//
//	cond.Restarts(body, cond.Named(cond.UseValueRestart, func(v any) any { return v }))
func UseValue(args ...any) {
	Invoke(UseValueRestart, args...)
}

// Proceed invokes the implicit [ContinueRestart] restart established by
// [Cerror], resuming its caller.
func Proceed() {
	Invoke(ContinueRestart)
}

// Muffle invokes the implicit [MuffleRestart] restart established by
// [Warn], suppressing the warning.
func Muffle() {
	Invoke(MuffleRestart)
}
