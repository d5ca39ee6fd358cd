package a

import (
	"unsafe"

	"github.com/LerianStudio/lib-buildcheck/buildcheck/staticassert"
)

const (
	headerSize = 16
	slotSize   = 8
)

type header struct {
	magic   uint32
	version uint32
	length  uint64
}

// File-scope declaration form, passing and failing.
var _ = staticassert.Expr(headerSize == 16, "header is 16 bytes")
var _ = staticassert.Expr(unsafe.Sizeof(header{}) == headerSize, "struct matches wire size")
var _ = staticassert.Expr(headerSize == 17, "header drifted") // want `static assertion failed: header drifted`

var notConst = "runtime message"

func statements(n int) {
	staticassert.That(1 == 1, "one is one")
	staticassert.That(1 == 2, "one is not two") // want `static assertion failed: one is not two`
	staticassert.That(1 == 2, "")               // want `static assertion failed`
	staticassert.That(n > 0, "positive input")  // want `condition is not a compile-time constant`
	staticassert.That(true, notConst)           // want `assertion message must be a compile-time constant string`
}

func expressions() []staticassert.Checked {
	// Expression position inside a composite literal.
	return []staticassert.Checked{
		staticassert.Expr(slotSize*2 == headerSize, "two slots per header"),
		staticassert.Expr(slotSize*3 == headerSize, "three slots per header"), // want `static assertion failed: three slots per header`
	}
}

func sameLine() {
	staticassert.That(true, "left"); staticassert.That(false, "right") // want `static assertion failed: right`
}
