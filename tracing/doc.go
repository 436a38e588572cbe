// Package tracing is a thin wrapper around OpenTelemetry tracing. All
// instrumentation is kept in a separate package so that applications which
// do not require tracing can exclude it from their build, and so that the
// rest of the code-base can start and end spans without importing the
// upstream packages directly.
package tracing
