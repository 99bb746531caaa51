package assertx_test

import (
	"context"
	"testing"

	"github.com/herohde/kinolattice/internal/assertx"
	"github.com/stretchr/testify/assert"
)

// Require must not fail the process when its condition holds, regardless of
// the disabled toggle -- only a false condition (not exercised here, since it
// is fatal by design) takes the logw.Exitf branch.
func TestRequirePassesWhenConditionHolds(t *testing.T) {
	ctx := context.Background()
	assert.NotPanics(t, func() {
		assertx.Require(ctx, true, "unreachable: %d", 42)
	})
}

// Disable/Enable toggle Require into a no-op and back; a false condition
// under Disable must not be fatal.
func TestDisableSuppressesFailingRequire(t *testing.T) {
	ctx := context.Background()
	assertx.Disable()
	defer assertx.Enable()

	assert.NotPanics(t, func() {
		assertx.Require(ctx, false, "would be fatal if enabled")
	})
}
