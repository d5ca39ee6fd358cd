// Package staticassert declares assertions that are checked while the
// program is being built, not while it runs.
//
// A static assertion that holds compiles to nothing: the markers below are
// empty functions the compiler inlines away, and a generated fallback
// declaration is an inert, never-referenced package-level value. A static
// assertion that is violated prevents a runnable program from being
// produced.
//
// # Native tier: the staticassert analyzer
//
// When the build runs `go vet` with the bundled analyzer (or the
// cmd/staticassert binary), marker conditions are constant-folded with full
// type information and failures carry the message verbatim:
//
//	const headerSize = unsafe.Sizeof(header{})
//
//	func decode(buf []byte) {
//		staticassert.That(headerSize == 16, "header layout is wire format, do not grow it")
//		...
//	}
//
// That is legal wherever a statement is legal; Expr is legal wherever an
// expression is legal and evaluates to the zero-size Checked value:
//
//	var _ = staticassert.Expr(maxSlots < 1<<16, "slot index fits uint16")
//
// A condition the analyzer cannot fold to a constant is itself a failure:
// a value known only at run time belongs in the assert package, not here.
//
// # Fallback tier: generated declarations
//
// Workflows that never run vet can generate declarations whose mere
// compilation is the check; see the gen subpackage and cmd/staticassert-gen.
// The generated construct is a map literal with a duplicate key exactly when
// the condition is false.
//
// The same constructs are usable by hand without any tooling:
//
//	// fails to compile unless cond is a constant true
//	var _ = map[bool]struct{}{false: {}, cond: {}}
//
//	// fails to compile unless *Logger satisfies log.Logger
//	var _ log.Logger = (*Logger)(nil)
package staticassert
