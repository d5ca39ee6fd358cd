// Package runtime holds the build-configuration state lib-buildcheck resolves
// its runtime failure action against.
//
// Diagnostics mode selects between the trap and unreachable failure actions
// of the assert package. It is resolved in priority order: an explicit
// SetDiagnosticsFunc predicate, an explicit SetDiagnosticsMode value, the
// debug build tag, and finally the BUILDCHECK_DEBUG / DEBUG environment
// variables.
package runtime
