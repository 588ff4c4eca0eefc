// Package metrics centralizes Prometheus metric definitions and recording
// helpers so instrumented packages share one registry and naming scheme.
package metrics
