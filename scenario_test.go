// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cond_test

import (
	"testing"

	"code.hybscloud.com/cond"
)

// End-to-end scenario: a low-level routine that rejects oversized inputs, a
// mid-level loop offering recovery strategies per element, and high-level
// supervisors choosing a strategy without touching either layer.

const dropped = -1

type tooLarge struct {
	cond.Cond
	Value int
}

func checkLimit(k int) int {
	if k > 9000 {
		cond.Error(&tooLarge{Cond: cond.Cond{Message: "too large"}, Value: k})
	}
	return k
}

func processAll(xs []int) []int {
	out := make([]int, 0, len(xs))
	for _, k := range xs {
		out = append(out, cond.Restarts(func() int {
			return checkLimit(k)
		},
			cond.Named("use_value", func(v any) any { return v }),
			cond.Named("halve", func(v any) any { return v.(int) / 2 }),
			cond.Named("drop", func() any { return dropped }),
		).Get())
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestHalvingSupervisor(t *testing.T) {
	var got []int
	cond.Handlers(func() {
		got = processAll([]int{17, 10000, 23, 42})
	}, cond.On[*tooLarge](func(c *tooLarge) {
		cond.Invoke("halve", c.Value)
	}))
	if want := []int{17, 5000, 23, 42}; !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDroppingSupervisor(t *testing.T) {
	var got []int
	cond.Handlers(func() {
		got = processAll([]int{17, 10000, 23, 42})
	}, cond.On[*tooLarge](cond.Invoker("drop")))
	if want := []int{17, dropped, 23, 42}; !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSubstitutingSupervisor(t *testing.T) {
	var got []int
	cond.Handlers(func() {
		got = processAll([]int{17, 10000, 23, 42})
	}, cond.On[*tooLarge](func() {
		cond.UseValue(9000)
	}))
	if want := []int{17, 9000, 23, 42}; !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnsupervisedEscalates(t *testing.T) {
	defer func() {
		ce, ok := recover().(*cond.ControlError)
		if !ok {
			t.Fatal("want *cond.ControlError escalation")
		}
		tl, ok := ce.Cause().(*tooLarge)
		if !ok || tl.Value != 10000 {
			t.Fatalf("cause = %v, want the oversized condition", ce.Cause())
		}
	}()
	processAll([]int{17, 10000, 23, 42})
}

func TestSupervisorPerElementScoping(t *testing.T) {
	// Each loop iteration gets fresh restart frames; a transfer for one
	// element must not disturb the processing of the next.
	var got []int
	cond.Handlers(func() {
		got = processAll([]int{9001, 9002, 3})
	}, cond.On[*tooLarge](cond.Invoker("drop")))
	if want := []int{dropped, dropped, 3}; !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRetryByReenteringScope(t *testing.T) {
	// Retry policy lives in the client: re-enter the restart scope in a
	// loop, halving until the value passes the check.
	k := 72000
	var got int
	cond.Handlers(func() {
		for {
			box := cond.Restarts(func() any {
				return checkLimit(k)
			}, cond.Named("retry_smaller", func(v any) any {
				k = v.(int)
				return nil
			}))
			if v := box.Get(); v != nil {
				got = v.(int)
				return
			}
		}
	}, cond.On[*tooLarge](func(c *tooLarge) {
		cond.Invoke("retry_smaller", c.Value/2)
	}))
	if got != 9000 {
		t.Fatalf("got %d, want 9000", got)
	}
}
