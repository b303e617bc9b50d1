// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cond

import (
	"fmt"
	"strconv"
)

// Condition represents a signalable situation. Any value is legal as a
// condition; handler matching is by dynamic type (see [On]). Conditions
// conventionally implement error, but nothing in the protocol requires it.
type Condition = any

// Chained is implemented by conditions that record a causal parent.
// When a condition implementing Chained is signaled while another condition
// is being dispatched, the in-flight condition is attached as its cause,
// unless a cause was already set.
type Chained interface {
	Cause() Condition
	SetCause(Condition)
}

// Cond is a basic concrete condition: a message plus an optional cause.
// It implements error and [Chained], so handlers registered for either
// interface match it. Custom condition types usually embed Cond:
//
//	type TooLarge struct {
//	    cond.Cond
//	    Value int
//	}
//
// Note that embedding provides interface matching only; a handler
// registered for the concrete type *Cond does not match *TooLarge.
type Cond struct {
	Message string
	cause   Condition
}

// NewCond creates a condition with the given message and no cause.
func NewCond(message string) *Cond {
	return &Cond{Message: message}
}

// Error implements error. The cause, when present, is appended.
func (c *Cond) Error() string {
	if c.cause == nil {
		return c.Message
	}
	return c.Message + ": " + describe(c.cause)
}

// Cause returns the condition that was being handled when this one was
// signaled, or nil.
func (c *Cond) Cause() Condition { return c.cause }

// SetCause records the causal parent of this condition.
func (c *Cond) SetCause(cause Condition) { c.cause = cause }

// describe renders a condition for diagnostics, preferring its error text.
func describe(c Condition) string {
	if err, ok := c.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(c)
}

// ControlError is the escalation fault: an [Error] or [Cerror] call found
// no handler that transferred control away, so the condition is re-raised
// as an ordinary stack-unwinding panic with the original condition
// preserved as the cause.
type ControlError struct {
	// Op is the operation that escalated: "error" or "cerror".
	Op string

	// Condition is the unhandled condition.
	Condition Condition
}

func (e *ControlError) Error() string {
	return "cond: unhandled " + e.Op + ": " + describe(e.Condition)
}

// Cause returns the unhandled condition.
func (e *ControlError) Cause() Condition { return e.Condition }

// Unwrap exposes the condition to errors.Is/As when it is an error.
func (e *ControlError) Unwrap() error {
	if err, ok := e.Condition.(error); ok {
		return err
	}
	return nil
}

// UnboundRestartError reports an [Invoke] of a restart name that no active
// restart frame offers. This is a programming error: the handler requested
// a recovery strategy the call site never established.
type UnboundRestartError struct {
	// Name is the restart name that was requested.
	Name string

	// Available lists the restart names that were established at the time
	// of the call, innermost first.
	Available []string
}

func (e *UnboundRestartError) Error() string {
	s := "cond: unbound restart " + strconv.Quote(e.Name)
	if len(e.Available) == 0 {
		return s + " (no restarts established)"
	}
	s += " (available:"
	for _, name := range e.Available {
		s += " " + strconv.Quote(name)
	}
	return s + ")"
}

// DuplicateRestartError reports two restarts registered under the same name
// within a single [Restarts] frame. Detected at scope entry, before the
// protected body runs.
type DuplicateRestartError struct {
	Name string
}

func (e *DuplicateRestartError) Error() string {
	return "cond: duplicate restart " + strconv.Quote(e.Name) + " within one frame"
}

// CallableError reports a handler or recovery function that does not fit
// the calling convention: an unsupported signature at registration time,
// or an argument mismatch at call time.
type CallableError struct {
	Reason string
}

func (e *CallableError) Error() string {
	return "cond: " + e.Reason
}
