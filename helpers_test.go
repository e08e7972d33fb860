package bignum

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func init() {
	spew.Config.Indent = "    "
	spew.Config.DisableMethods = true
}

// requireEqual fails t with a full structural dump of got and want
// (sign and limb slices) when they differ, useful for tracking down
// exactly which limb a multiplication or division test disagrees on.
func requireEqual(t *testing.T, got, want Integer, msg string) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("%s\ngot:  %s\nwant: %s", msg, spew.Sdump(got), spew.Sdump(want))
	}
}
