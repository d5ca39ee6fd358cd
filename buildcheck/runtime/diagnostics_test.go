//go:build unit

package runtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetState restores the registry after a test mutates it.
func resetState(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetDiagnosticsFunc(nil)
		ResetDiagnosticsMode()
	})
}

func TestDefaultDetectionFollowsEnv(t *testing.T) {
	resetState(t)
	t.Setenv("BUILDCHECK_DEBUG", "")
	t.Setenv("DEBUG", "")

	// Unit tests build without the debug tag, so only env applies.
	assert.False(t, IsDiagnosticsEnabled())

	t.Setenv("BUILDCHECK_DEBUG", "1")
	assert.True(t, IsDiagnosticsEnabled())

	t.Setenv("BUILDCHECK_DEBUG", "false")
	assert.False(t, IsDiagnosticsEnabled())

	t.Setenv("DEBUG", "true")
	assert.True(t, IsDiagnosticsEnabled())

	t.Setenv("DEBUG", "0")
	assert.False(t, IsDiagnosticsEnabled())
}

func TestExplicitModeOverridesEnv(t *testing.T) {
	resetState(t)
	t.Setenv("BUILDCHECK_DEBUG", "1")

	SetDiagnosticsMode(false)
	assert.False(t, IsDiagnosticsEnabled())

	SetDiagnosticsMode(true)
	assert.True(t, IsDiagnosticsEnabled())

	ResetDiagnosticsMode()
	assert.True(t, IsDiagnosticsEnabled(), "env detection restored after reset")
}

func TestPredicateOverridesEverything(t *testing.T) {
	resetState(t)
	t.Setenv("BUILDCHECK_DEBUG", "1")

	SetDiagnosticsMode(true)
	SetDiagnosticsFunc(func() bool { return false })
	assert.False(t, IsDiagnosticsEnabled())

	SetDiagnosticsFunc(func() bool { return true })
	assert.True(t, IsDiagnosticsEnabled())

	SetDiagnosticsFunc(nil)
	assert.True(t, IsDiagnosticsEnabled(), "explicit mode applies once predicate removed")
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	resetState(t)

	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(2)

		go func(enabled bool) {
			defer wg.Done()
			SetDiagnosticsMode(enabled)
		}(i%2 == 0)

		go func() {
			defer wg.Done()
			_ = IsDiagnosticsEnabled()
		}()
	}

	wg.Wait()
}
