//go:build debug

package assert

import goruntime "runtime"

// Enabled is true when the binary was compiled with the debug tag.
// Guard expensive assertion conditions with it so release builds compile
// them to nothing.
const Enabled = true

// halt stops the process at the assertion site. The breakpoint fires first
// so an attached debugger lands on the failing frame; the panic carries the
// failure for fault handlers and process exit.
func halt(entry *AssertionError) {
	goruntime.Breakpoint()
	panic(entry)
}
