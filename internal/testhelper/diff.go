// Package testhelper collects small test-only utilities shared across the
// repo's _test.go files.
package testhelper

import (
	"strings"

	"github.com/kr/pretty"
)

// Diff renders the field-level differences between two values for a
// failed assertion message, rather than relying on %+v's single-line dump.
func Diff(want, got any) string {
	d := pretty.Diff(want, got)
	if len(d) == 0 {
		return ""
	}
	return strings.Join(d, "\n")
}
