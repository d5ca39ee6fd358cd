package runtime

import (
	"os"
	"strings"
	"sync"
)

// diagnosticsState is the process-wide diagnostics-mode registry.
// The explicit mode and the detection predicate are independent overrides:
// a custom predicate wins over everything, an explicit mode wins over
// build-tag and environment detection.
var (
	diagnosticsMode    bool
	diagnosticsModeSet bool
	diagnosticsFunc    func() bool
	diagnosticsMu      sync.RWMutex
)

// SetDiagnosticsMode explicitly enables or disables diagnostics mode,
// overriding build-tag and environment detection.
func SetDiagnosticsMode(enabled bool) {
	diagnosticsMu.Lock()
	defer diagnosticsMu.Unlock()

	diagnosticsMode = enabled
	diagnosticsModeSet = true
}

// ResetDiagnosticsMode restores build-tag and environment detection.
func ResetDiagnosticsMode() {
	diagnosticsMu.Lock()
	defer diagnosticsMu.Unlock()

	diagnosticsMode = false
	diagnosticsModeSet = false
}

// SetDiagnosticsFunc replaces the diagnostics detection predicate itself.
// The predicate wins over SetDiagnosticsMode and the built-in detection.
// Pass nil to restore the default resolution order.
//
// The predicate must be safe for concurrent use; it may be called from any
// goroutine that evaluates an assertion.
func SetDiagnosticsFunc(fn func() bool) {
	diagnosticsMu.Lock()
	defer diagnosticsMu.Unlock()

	diagnosticsFunc = fn
}

// IsDiagnosticsEnabled reports whether diagnostics mode is active.
func IsDiagnosticsEnabled() bool {
	diagnosticsMu.RLock()
	fn := diagnosticsFunc
	explicit, explicitSet := diagnosticsMode, diagnosticsModeSet
	diagnosticsMu.RUnlock()

	if fn != nil {
		return fn()
	}

	if explicitSet {
		return explicit
	}

	if debugBuild {
		return true
	}

	return envEnabled("BUILDCHECK_DEBUG") || envEnabled("DEBUG")
}

// envEnabled interprets an environment variable as a boolean switch.
// Unset, empty, "0" and "false" all mean disabled.
func envEnabled(name string) bool {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return false
	}

	return value != "0" && !strings.EqualFold(value, "false")
}
