// Package assert provides runtime assertions with a configurable failure
// action.
//
// Assertions are for catching bugs, not for handling user input:
//
//   - Use assertions for conditions that should NEVER be false if the code
//     is correct.
//   - Use error returns for conditions that CAN legitimately fail (I/O,
//     user input, remote calls).
//
// # Failure actions
//
// A failed assertion performs one of two actions:
//
//   - ActionTrap: the failure is reported (structured log, span event,
//     failure counter) and the process halts at the assertion site via
//     runtime.Breakpoint followed by a panic carrying *AssertionError. The
//     stop is observable by an attached debugger before any further code
//     runs.
//   - ActionUnreachable: the failure is ignored and execution continues.
//     This is the release-build trade: the check costs a single branch and
//     a violated assertion has no safe halt.
//
// The action is resolved once per call in priority order: a per-call forced
// variant (ThatTrap, ThatUnreachable), the process-wide override
// (SetFailureAction), and finally the diagnostics predicate in
// buildcheck/runtime (debug build tag, BUILDCHECK_DEBUG / DEBUG environment
// variables, or an explicit override).
//
// # Stripping checks entirely
//
// Guard expensive condition computations with the Enabled constant, which is
// true only under the debug build tag:
//
//	if assert.Enabled {
//		assert.That(ctx, tree.balanced(), "index tree must stay balanced")
//	}
//
// The guarded block compiles to nothing in release builds.
package assert
