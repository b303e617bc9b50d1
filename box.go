// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cond

// Box is a single-slot mutable container: the channel that carries a value
// out of a [Restarts] scope that may have been exited non-locally. The slot
// holds either the protected body's normal result or the invoked restart's
// recovery value. A box is owned by exactly one scope and is never shared
// between scopes.
type Box[T any] struct {
	value T
	full  bool
}

// NewBox creates an empty box.
func NewBox[T any]() *Box[T] {
	return &Box[T]{}
}

// Set stores v in the box.
func (b *Box[T]) Set(v T) {
	b.value = v
	b.full = true
}

// Get returns the stored value. Reading an empty box is a programming
// error and panics.
func (b *Box[T]) Get() T {
	if !b.full {
		panic("cond: Get on empty Box")
	}
	return b.value
}

// Empty reports whether the box has never been set.
func (b *Box[T]) Empty() bool { return !b.full }
