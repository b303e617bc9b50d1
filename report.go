// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cond

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"

	slogmulti "github.com/samber/slog-multi"
)

// Warning diagnostics. Unmuffled [Warn] conditions are reported through a
// structured logger; the default writes text records to stderr. The sink is
// process-wide, unlike the handler and restart stacks.

var warnLevel = new(slog.LevelVar)

var warnLogger atomic.Pointer[slog.Logger]

func init() {
	warnLogger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: warnLevel,
	})))
}

// SetWarnLevel adjusts the minimum level of the default warning sink.
// Records are emitted at [slog.LevelWarn]; raising the level above that
// silences the default sink entirely.
func SetWarnLevel(l slog.Level) {
	warnLevel.Set(l)
}

// SetWarnLogger replaces the logger used to report unmuffled warnings.
// A nil logger discards warnings.
func SetWarnLogger(l *slog.Logger) {
	warnLogger.Store(l)
}

// SetWarnOutput routes unmuffled warnings to the given slog handlers,
// fanning records out to all of them when more than one is given.
func SetWarnOutput(handlers ...slog.Handler) {
	warnLogger.Store(slog.New(slogmulti.Fanout(handlers...)))
}

// reportWarning emits the diagnostic record for an unmuffled warning.
// handlerRet is the value returned by the handler that observed the
// condition, attached when non-nil.
func reportWarning(c Condition, handlerRet any) {
	l := warnLogger.Load()
	if l == nil {
		return
	}
	attrs := []slog.Attr{slog.Any("condition", c)}
	if handlerRet != nil {
		attrs = append(attrs, slog.Any("handler", handlerRet))
	}
	l.LogAttrs(context.Background(), slog.LevelWarn, describe(c), attrs...)
}
