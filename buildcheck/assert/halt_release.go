//go:build !debug

package assert

// Enabled is true when the binary was compiled with the debug tag.
// Guard expensive assertion conditions with it so release builds compile
// them to nothing.
const Enabled = false

// halt stops the process at the assertion site. Without the debug tag there
// is no breakpoint; the panic alone carries the failure.
func halt(entry *AssertionError) {
	panic(entry)
}
