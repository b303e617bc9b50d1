// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cond provides Common-Lisp-style resumable conditions for Go:
// signaled situations are observed by dynamically scoped handlers, which
// recover by transferring control to named restarts established by the
// signaling side — without default stack unwinding.
//
// The protocol separates three roles that exception handling conflates:
// the code that detects a situation ([Signal], [Error], [Cerror], [Warn]),
// the code that decides what to do about it ([Handlers], [On]), and the
// code that knows how to do it ([Restarts], [Named], [Invoke]).
//
// # Design Philosophy
//
// cond provides:
//   - A dynamic-extent handler/restart stack per goroutine, with guaranteed
//     frame pop on every exit path
//   - Registration-time normalization of handler and recovery calling
//     conventions (no per-dispatch arity inspection)
//   - Single-shot non-local transfer to a restart scope, implemented as a
//     scope-identity token unwind, not a resumable continuation
//
// # Conditions
//
// A condition is any value; handler matching is by dynamic type:
//
//   - [Condition]: alias for any
//   - [Cond]: ready-made base condition with message and cause
//   - [Chained]: implemented by conditions carrying a causal parent
//
// A condition signaled while another is being dispatched has the in-flight
// condition attached as its cause when it implements [Chained].
//
// # Handlers
//
// [Handlers] establishes one frame of bindings for the dynamic extent of
// its body. Frames nest; lookup is innermost frame first, registration
// order within a frame. [On] builds a binding: an interface type parameter
// catches every implementing condition (supertype matching), a concrete
// type catches exactly itself.
//
//   - [Handler]: one condition-type-to-function binding
//   - [On]: build a binding; accepts func(), func(C), or func(Condition)
//     forms, each optionally returning any
//   - [Handlers]: establish bindings for the extent of a body
//
// A handler runs at the signal site with the whole dynamic environment
// still active. It may invoke a restart to transfer control, or return
// normally to leave the choice to the protocol (see Signal Protocols).
//
// # Restarts and Non-Local Transfer
//
// [Restarts] establishes named recovery strategies and yields a [Box]:
//
//	box := cond.Restarts(func() int {
//	    return parse(input) // may Error(...) deep inside
//	},
//	    cond.Named("use_value", func(v any) any { return v }),
//	    cond.Named("drop", func() any { return 0 }),
//	)
//
// If the body completes normally its value lands in the box. If a handler
// invokes a restart registered here, the recovery value lands in the box
// instead and execution resumes after the Restarts call; the stack between
// the signal site and this scope, including every intervening handler and
// restart frame, is discarded. The transfer is a single-shot escape to an
// enclosing dynamic scope, analogous to a labeled non-local exit.
//
//   - [Restart], [Named]: one named recovery binding
//   - [Restarts]: establish bindings, run a protected body, yield a [Box]
//   - [Box]: single-slot value channel out of a restart scope
//   - [Invoke]: select a restart by name and transfer control (never returns)
//   - [FindRestart], [AvailableRestarts]: introspection
//   - [Invoker], [UseValue], [Proceed], [Muffle]: ready-made invocations
//
// # Signal Protocols
//
//   - [Signal]: invoke the innermost matching handler; its normal return
//     value becomes Signal's result; no handler means a no-op
//   - [Error]: never returns normally; handlers that return normally
//     decline and the search continues outward; exhausted, the condition
//     escalates as a panic carrying [*ControlError] with the original
//     condition as cause
//   - [Cerror]: like Error, plus an implicit "continue" restart so any
//     handler can resume the caller without a restart frame at the call site
//   - [Warn]: like Signal, plus an implicit "muffle" restart; unmuffled
//     warnings go to the warning sink
//
// # Faults
//
// Protocol violations are programming errors delivered by panic, never by
// return value:
//
//   - [ControlError]: unhandled Error/Cerror escalation
//   - [UnboundRestartError]: Invoke of a name no frame offers
//   - [DuplicateRestartError]: same name twice within one frame (caught at
//     scope entry)
//   - [CallableError]: unsupported handler/recovery signature at
//     registration, or argument mismatch at invoke time
//
// # Goroutine Isolation
//
// Each goroutine owns an independent handler/restart stack. Conditions
// signaled on one goroutine are invisible to frames established on another;
// no cross-goroutine locking exists or is needed. Frames must therefore be
// established on the goroutine that signals.
//
// # Warning Diagnostics
//
// Unmuffled warnings are reported through a structured logger (text on
// stderr by default):
//
//   - [SetWarnLogger]: replace the logger
//   - [SetWarnOutput]: route records to one or more slog handlers
//   - [SetWarnLevel]: adjust the default sink's level
package cond
