// Package metrics provides a fluent factory for OpenTelemetry metric instruments.
//
// MetricsFactory caches instruments and exposes a builder-style API for
// counters with low-overhead attribute composition. The assert package uses
// it to count assertion failures; host applications may reuse it for their
// own instruments.
package metrics
