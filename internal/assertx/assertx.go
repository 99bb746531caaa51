// Package assertx implements assertion-style precondition checks. Violations
// are programmer errors (out-of-range angle, type index, map bounds, ...) and
// are fatal by default, matching the taxonomy in the design notes: precondition
// violations unwind to the process boundary rather than being reported as
// ordinary errors.
package assertx

import (
	"context"
	"sync/atomic"

	"github.com/seekerror/logw"
)

var disabled atomic.Bool

// Disable turns Require into a no-op. Used by callers that prefer to run
// with checks compiled out, e.g. performance-sensitive batch scenario runs
// that have already been validated once.
func Disable() {
	disabled.Store(true)
}

// Enable restores default (enabled) behavior. Primarily useful in tests.
func Enable() {
	disabled.Store(false)
}

// Require fails fatally if cond is false, unless checks have been disabled.
func Require(ctx context.Context, cond bool, format string, args ...any) {
	if cond || disabled.Load() {
		return
	}
	logw.Exitf(ctx, format, args...)
}
