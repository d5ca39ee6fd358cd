package assert

import (
	"sync"

	"github.com/LerianStudio/lib-buildcheck/buildcheck/runtime"
)

// Action selects the behavior executed when an assertion fails.
type Action uint8

const (
	// ActionTrap reports the failure and halts the process at the
	// assertion site, observable by an attached debugger.
	ActionTrap Action = iota
	// ActionUnreachable ignores the failure and continues execution.
	ActionUnreachable
)

// String returns the string representation of an Action.
func (a Action) String() string {
	switch a {
	case ActionTrap:
		return "trap"
	case ActionUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// The process-wide failure-action override. When set it wins over the
// diagnostics predicate for every assertion that is not per-call forced.
var (
	actionOverride    Action
	actionOverrideSet bool
	actionMu          sync.RWMutex
)

// SetFailureAction forces the failure action for all subsequent assertions,
// regardless of diagnostics mode.
func SetFailureAction(a Action) {
	actionMu.Lock()
	defer actionMu.Unlock()

	actionOverride = a
	actionOverrideSet = true
}

// ResetFailureAction restores diagnostics-based resolution.
func ResetFailureAction() {
	actionMu.Lock()
	defer actionMu.Unlock()

	actionOverride = ActionTrap
	actionOverrideSet = false
}

// resolveAction picks the failure action for one assertion failure.
func resolveAction() Action {
	actionMu.RLock()
	override, overrideSet := actionOverride, actionOverrideSet
	actionMu.RUnlock()

	if overrideSet {
		return override
	}

	if runtime.IsDiagnosticsEnabled() {
		return ActionTrap
	}

	return ActionUnreachable
}
