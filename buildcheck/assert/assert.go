package assert

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/LerianStudio/lib-buildcheck/buildcheck/log"
)

// ErrAssertionFailed is the sentinel error for failed assertions.
var ErrAssertionFailed = errors.New("assertion failed")

// AssertionError represents a failed assertion with rich context.
// It is carried by the panic raised under ActionTrap.
type AssertionError struct {
	Assertion string
	Message   string
	Component string
	Operation string
	Details   string
}

// Error returns the formatted assertion failure message.
func (entry *AssertionError) Error() string {
	if entry == nil {
		return ErrAssertionFailed.Error()
	}

	if entry.Details == "" {
		return "assertion failed: " + entry.Message
	}

	return "assertion failed: " + entry.Message + "\n" + entry.Details
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (entry *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// Checker evaluates runtime assertions and emits telemetry on failure.
// component and operation label logs, span events and the failure counter.
type Checker struct {
	logger    log.Logger
	component string
	operation string
}

// New creates a Checker with logging and telemetry labels.
// A nil logger falls back to the package logger (see SetLogger).
func New(logger log.Logger, component, operation string) *Checker {
	return &Checker{
		logger:    logger,
		component: component,
		operation: operation,
	}
}

// That checks a condition with the resolved failure action.
//
// Example:
//
//	checker.That(ctx, len(items) > 0, "processItems called with empty slice", "count", len(items))
func (c *Checker) That(ctx context.Context, cond bool, msg string, kv ...any) {
	if cond {
		return
	}

	c.fail(ctx, resolveAction(), "That", msg, kv...)
}

// Thatf checks a condition with the resolved failure action and a formatted message.
func (c *Checker) Thatf(ctx context.Context, cond bool, format string, args ...any) {
	if cond {
		return
	}

	c.fail(ctx, resolveAction(), "Thatf", fmt.Sprintf(format, args...))
}

// ThatTrap checks a condition and traps on failure regardless of
// diagnostics mode or the process-wide override.
func (c *Checker) ThatTrap(ctx context.Context, cond bool, msg string, kv ...any) {
	if cond {
		return
	}

	c.fail(ctx, ActionTrap, "ThatTrap", msg, kv...)
}

// ThatUnreachable checks a condition and ignores failure regardless of
// diagnostics mode or the process-wide override. The check costs a branch
// and nothing else.
func (c *Checker) ThatUnreachable(ctx context.Context, cond bool, msg string, kv ...any) {
	if cond {
		return
	}

	c.fail(ctx, ActionUnreachable, "ThatUnreachable", msg, kv...)
}

// Never marks a code path that must not be reached. Reaching it is a
// failure with the resolved action.
//
// Example:
//
//	default:
//		assert.Never(ctx, "unhandled status", "status", status)
func (c *Checker) Never(ctx context.Context, msg string, kv ...any) {
	c.fail(ctx, resolveAction(), "Never", msg, kv...)
}

// fail reports and executes the failure action. It returns only when the
// action is ActionUnreachable.
func (c *Checker) fail(ctx context.Context, action Action, assertion, msg string, kv ...any) {
	if action == ActionUnreachable {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	component, operation := "", ""
	logger := packageLogger()

	if c != nil {
		component, operation = c.component, c.operation
		if c.logger != nil {
			logger = c.logger
		}
	}

	entry := &AssertionError{
		Assertion: assertion,
		Message:   msg,
		Component: component,
		Operation: operation,
		Details:   formatKeyValueLines(withContextPairs(assertion, component, operation, kv)),
	}

	report(ctx, logger, entry)
	halt(entry)
}

// Package-level checker used by the top-level assertion functions.
var defaultChecker = &Checker{}

// That checks a condition with the resolved failure action.
func That(ctx context.Context, cond bool, msg string, kv ...any) {
	if cond {
		return
	}

	defaultChecker.fail(ctx, resolveAction(), "That", msg, kv...)
}

// Thatf checks a condition with the resolved failure action and a formatted message.
func Thatf(ctx context.Context, cond bool, format string, args ...any) {
	if cond {
		return
	}

	defaultChecker.fail(ctx, resolveAction(), "Thatf", fmt.Sprintf(format, args...))
}

// ThatTrap checks a condition and traps on failure regardless of configuration.
func ThatTrap(ctx context.Context, cond bool, msg string, kv ...any) {
	if cond {
		return
	}

	defaultChecker.fail(ctx, ActionTrap, "ThatTrap", msg, kv...)
}

// ThatUnreachable checks a condition and ignores failure regardless of configuration.
func ThatUnreachable(ctx context.Context, cond bool, msg string, kv ...any) {
	if cond {
		return
	}

	defaultChecker.fail(ctx, ActionUnreachable, "ThatUnreachable", msg, kv...)
}

// Never marks a code path that must not be reached.
func Never(ctx context.Context, msg string, kv ...any) {
	defaultChecker.fail(ctx, resolveAction(), "Never", msg, kv...)
}

// The package logger receives failures from the top-level functions and from
// Checkers constructed without a logger. Defaults to stderr (see report.go).
var (
	loggerInstance log.Logger
	loggerMu       sync.RWMutex
)

// SetLogger configures the package logger for assertion failures.
// Pass nil to restore the stderr fallback.
func SetLogger(logger log.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	loggerInstance = logger
}

func packageLogger() log.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()

	return loggerInstance
}
