// Package zap adapts go.uber.org/zap to the lib-buildcheck log.Logger
// interface.
//
// When the context passed to Log carries an active OpenTelemetry span, the
// adapter appends trace_id and span_id fields so assertion failures correlate
// with distributed traces.
package zap
