// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cond_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/cond"
)

// Randomized nesting: a chain of restart scopes level_0..level_{depth-1},
// a signal at the bottom, and a handler that transfers to a random level.
// Invariants checked per trial:
//   - the recovery value surfaces through every scope above the target
//   - scopes below the target never resume
//   - the stacks are balanced afterwards
func TestRandomDepthTransfers(t *testing.T) {
	for trial := 0; trial < 200; trial++ {
		depth := rand.IntN(8) + 1
		target := rand.IntN(depth)
		payload := trial * 10
		resumed := make([]bool, depth)

		var nest func(level int) any
		nest = func(level int) any {
			if level == depth {
				cond.Error(newHelpMe(trial))
				t.Fatal("Error returned normally")
			}
			box := cond.Restarts(func() any {
				return nest(level + 1)
			}, cond.Named(fmt.Sprintf("level_%d", level), func(v any) any { return v }))
			resumed[level] = true
			return box.Get()
		}

		var got any
		cond.Handlers(func() {
			got = nest(0)
		}, cond.On[*helpMe](func() {
			cond.Invoke(fmt.Sprintf("level_%d", target), payload)
		}))

		if got != payload {
			t.Fatalf("trial %d: got %v, want %d (depth %d, target %d)",
				trial, got, payload, depth, target)
		}
		for level := 0; level < depth; level++ {
			if want := level <= target; resumed[level] != want {
				t.Fatalf("trial %d: level %d resumed=%v, want %v (target %d)",
					trial, level, resumed[level], want, target)
			}
		}
		if names := cond.AvailableRestarts(); names != nil {
			t.Fatalf("trial %d: stacks unbalanced: %v", trial, names)
		}
	}
}

// Randomized handler frames: overlapping registrations at random depths;
// the innermost matching frame must always win.
func TestRandomHandlerNesting(t *testing.T) {
	for trial := 0; trial < 200; trial++ {
		depth := rand.IntN(6) + 1

		var nest func(level int)
		nest = func(level int) {
			if level == depth {
				want := fmt.Sprintf("frame_%d", depth-1)
				if got := cond.Signal(newHelpMe(trial)); got != want {
					t.Fatalf("trial %d: got %v, want %q", trial, got, want)
				}
				return
			}
			cond.Handlers(func() {
				nest(level + 1)
			}, cond.On[*helpMe](func() any {
				return fmt.Sprintf("frame_%d", level)
			}))
		}
		nest(0)

		if got := cond.Signal(newHelpMe(trial)); got != nil {
			t.Fatalf("trial %d: handler frames leaked: %v", trial, got)
		}
	}
}
