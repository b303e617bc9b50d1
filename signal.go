// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cond

// Conventional restart names established implicitly by the signaling
// protocols. [Cerror] offers ContinueRestart; [Warn] offers MuffleRestart;
// UseValueRestart is the conventional name consumed by [UseValue].
const (
	ContinueRestart = "continue"
	MuffleRestart   = "muffle"
	UseValueRestart = "use_value"
)

// Signal raises c for the innermost matching handler to observe, without
// unwinding the stack.
//
// The handler stack is scanned innermost frame first; within a frame,
// bindings are tried in registration order. The first matching handler is
// invoked with the full dynamic environment of the signal site still
// active. If it returns normally, Signal returns its return value to the
// caller and the condition stays live for a subsequent signal; no further
// handlers are consulted. With no matching handler, Signal is a no-op and
// returns nil.
func Signal(c Condition) any {
	e, ok := live()
	if !ok {
		return nil
	}
	ret, _ := e.dispatch(c, true)
	return ret
}

// Error raises c and never returns normally: either some handler transfers
// control away via [Invoke], or the condition escalates as a panic carrying
// a [*ControlError] whose cause is c.
//
// Matching handlers are tried innermost first; a handler that returns
// normally declines, and the search continues outward. With every handler
// declined (or none present), Error escalates.
func Error(c Condition) {
	escalate(c, "error")
}

// Cerror raises c like [Error], but wraps the dispatch in an implicit
// restart named [ContinueRestart], so any handler may resume the caller by
// invoking it (see [Proceed]) even though the call site established no
// restart frame of its own. If the continue restart is invoked, Cerror
// returns normally; otherwise it escalates exactly like Error.
func Cerror(c Condition) {
	Restarts(func() any {
		escalate(c, "cerror")
		return nil // unreachable
	}, Named(ContinueRestart, func() any { return nil }))
}

// Warn raises c with an implicit restart named [MuffleRestart]. The
// innermost matching handler, if any, runs first; it may invoke the muffle
// restart (see [Muffle]) to suppress the warning. Unless muffled, the
// condition is reported to the warning sink (see [SetWarnOutput]), with the
// handler's return value attached to the record when non-nil.
//
// Warn never escalates; with no handlers it degrades to plain diagnostics.
func Warn(c Condition) {
	Restarts(func() any {
		var ret any
		if e, ok := live(); ok {
			ret, _ = e.dispatch(c, true)
		}
		reportWarning(c, ret)
		return nil
	}, Named(MuffleRestart, func() any { return nil }))
}

// escalate dispatches c in decline mode and raises the escalation fault
// when no handler transfers control away.
func escalate(c Condition, op string) {
	if e, ok := live(); ok {
		e.dispatch(c, false)
	}
	panic(&ControlError{Op: op, Condition: c})
}

// dispatch walks matching handlers innermost-first. With firstOnly set, the
// first match ends the dispatch and its return value is surfaced; otherwise
// every normal return declines and the search continues outward.
//
// While the dispatch runs, c is on the in-flight stack: a condition
// implementing [Chained] that is signaled from inside a handler has c
// attached as its cause.
func (e *env) dispatch(c Condition, firstOnly bool) (any, bool) {
	if ch, ok := c.(Chained); ok && len(e.signaling) > 0 && ch.Cause() == nil {
		ch.SetCause(e.signaling[len(e.signaling)-1])
	}
	e.signaling = append(e.signaling, c)
	defer func() {
		e.signaling[len(e.signaling)-1] = nil
		e.signaling = e.signaling[:len(e.signaling)-1]
		e.release()
	}()

	// Snapshot the frames: handlers may enter fresh scopes while running,
	// and those must not join this dispatch.
	frames := append([]*handlerFrame(nil), e.handlers...)
	for i := len(frames) - 1; i >= 0; i-- {
		for _, h := range frames[i].bindings {
			if h.match == nil || !h.match(c) {
				continue
			}
			ret := h.call(c)
			if firstOnly {
				return ret, true
			}
		}
	}
	return nil, false
}
