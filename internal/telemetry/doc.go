// Package telemetry installs the global OpenTelemetry tracer and meter
// providers used by the relaxation engine.
//
// Exporters are "stdout" (JSON lines to Config.Writer) or "none". With
// "none" the otel no-op providers stay in place and instrumentation costs
// nothing.
package telemetry
