// Package log defines the logging interface and typed logging fields used by
// lib-buildcheck.
//
// The library itself never configures a backend: assertion failures are
// reported through whatever Logger the host application injects. Adapters
// (such as the zap package) implement Logger so applications can keep
// logging calls consistent across backends.
package log
